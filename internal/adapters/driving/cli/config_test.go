package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInitCmd_CreatesFile(t *testing.T) {
	b := &mockBuilder{initCreated: true}
	defer setupTestServices(b)()

	out, err := execute("config", "init", "--config", "/tmp/staffscout/config.toml")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/staffscout/config.toml", b.configPath)
	assert.Contains(t, out, "Wrote default settings to /tmp/staffscout/config.toml")
}

func TestConfigInitCmd_ExistingFile(t *testing.T) {
	b := &mockBuilder{}
	defer setupTestServices(b)()

	out, err := execute("config", "init")

	require.NoError(t, err)
	assert.Empty(t, b.configPath)
	assert.Contains(t, out, "Settings file already exists at /home/test/.staffscout/config.toml")
}

func TestConfigInitCmd_Error(t *testing.T) {
	b := &mockBuilder{initErr: errors.New("permission denied")}
	defer setupTestServices(b)()

	_, err := execute("config", "init")

	assert.EqualError(t, err, "permission denied")
}

func TestConfigInitCmd_RejectsArgs(t *testing.T) {
	defer setupTestServices(&mockBuilder{})()

	_, err := execute("config", "init", "extra")

	assert.Error(t, err)
}
