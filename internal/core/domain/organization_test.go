package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainFromWebsite(t *testing.T) {
	tests := []struct {
		website string
		want    string
	}{
		{"https://www.example.edu/about", "example.edu"},
		{"http://example.org", "example.org"},
		{"https://WWW.Riverside.edu", "riverside.edu"},
		{"  https://www.hotchkiss.org/  ", "hotchkiss.org"},
		{"https://portal.www.school.org", "portal.www.school.org"},
	}

	for _, tc := range tests {
		t.Run(tc.website, func(t *testing.T) {
			got, err := DomainFromWebsite(tc.website)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDomainFromWebsite_Invalid(t *testing.T) {
	for _, website := range []string{"", "www.example.edu", "://bad"} {
		t.Run(website, func(t *testing.T) {
			_, err := DomainFromWebsite(website)
			assert.ErrorIs(t, err, ErrInvalidWebsite)
		})
	}
}

func TestStateFromAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{"city and zip", "11 Interlaken Rd, Lakeville, CT 06039", "CT"},
		{"no zip", "Lakeville, CT", "CT"},
		{"no space after comma", "Boston,MA02115", "MA"},
		{"first uppercase pair after a comma wins", "1 Main St, LAKEVILLE, CT 06039", "LA"},
		{"no comma", "Lakeville CT 06039", ""},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StateFromAddress(tc.address))
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "The Hotchkiss School", CollapseWhitespace("\n  The   Hotchkiss\tSchool \n"))
	assert.Equal(t, "", CollapseWhitespace("   "))
}

func TestOrganizationProfile_HasWebsite(t *testing.T) {
	assert.True(t, OrganizationProfile{Website: "https://a.edu"}.HasWebsite())
	assert.False(t, OrganizationProfile{Website: "  "}.HasWebsite())
	assert.False(t, OrganizationProfile{}.HasWebsite())
}
