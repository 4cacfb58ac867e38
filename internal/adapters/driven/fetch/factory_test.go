package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/staffscout/internal/core/domain"
)

func TestNew(t *testing.T) {
	f, err := New(domain.FetcherSettings{Provider: domain.FetchProviderScrapfly, APIKey: "k"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &ScrapflyFetcher{}, f)

	f, err = New(domain.FetcherSettings{Provider: domain.FetchProviderDirect}, nil)
	require.NoError(t, err)
	assert.IsType(t, &DirectFetcher{}, f)

	f, err = New(domain.FetcherSettings{Provider: domain.FetchProviderScrapfly}, nil)
	assert.Nil(t, f)
	assert.ErrorIs(t, err, domain.ErrFetcherUnavailable)

	_, err = New(domain.FetcherSettings{Provider: "curl"}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
