package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/staffscout/internal/core/domain"
)

func TestMCPServeCmd_HasPortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_RequiresTitleService(t *testing.T) {
	old := titleService
	titleService = nil
	defer func() { titleService = old }()

	_, err := execute("mcp", "serve")

	assert.EqualError(t, err, "title service not configured")
}

func TestReloadingDiscovery_ReloadsBeforeEachRun(t *testing.T) {
	b := &mockBuilder{}
	inner := &mockDiscoveryService{report: &domain.RunReport{RunID: "run-1"}}
	d := &reloadingDiscovery{DiscoveryService: inner, reload: b.ReloadPrompts}

	report, err := d.Run(context.Background(), domain.RunOptions{MaxOrganizations: 3})
	require.NoError(t, err)
	assert.Equal(t, "run-1", report.RunID)

	_, err = d.Run(context.Background(), domain.RunOptions{MaxOrganizations: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, b.reloads)
	require.Len(t, inner.opts, 2)
	assert.Equal(t, 1, inner.opts[1].MaxOrganizations)
}
