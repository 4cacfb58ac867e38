package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// DirectoryEntry is one organization profile link found on a directory listing.
type DirectoryEntry struct {
	// URL is the absolute profile URL. Unique within a run.
	URL string
}

// OrganizationProfile is the structured form of an organization's directory profile.
type OrganizationProfile struct {
	// ProfileURL is the directory page the profile was resolved from.
	ProfileURL string

	// Name is the organization name with whitespace collapsed.
	Name string

	// Address is the address block text with whitespace collapsed.
	Address string

	// State is the two-letter state code parsed from Address, or empty.
	State string

	// Phone is the listed telephone number, or empty.
	Phone string

	// Website is the official website URL, or empty when none is listed.
	Website string
}

// HasWebsite reports whether the profile lists an official website.
func (p OrganizationProfile) HasWebsite() bool {
	return strings.TrimSpace(p.Website) != ""
}

// stateCodePattern matches the state code after the last locality comma, e.g. "LAKEVILLE, CT 06039".
var stateCodePattern = regexp.MustCompile(`,\s*([A-Z]{2})\s*\d*`)

// StateFromAddress returns the first two-letter uppercase code that follows a comma
// in the address, or an empty string.
func StateFromAddress(address string) string {
	m := stateCodePattern.FindStringSubmatch(address)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// DomainFromWebsite derives the organization domain from its website URL:
// the hostname with a leading "www." removed.
func DomainFromWebsite(website string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(website))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidWebsite, err)
	}
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("%w: %q has no hostname", ErrInvalidWebsite, website)
	}
	return strings.TrimPrefix(strings.ToLower(host), "www."), nil
}

// CollapseWhitespace replaces every run of whitespace with a single space and trims the result.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
