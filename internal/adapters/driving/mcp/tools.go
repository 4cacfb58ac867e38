package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/custodia-labs/staffscout/internal/core/domain"
)

// StandardiseTitleInput is the input schema for the standardise_title tool.
type StandardiseTitleInput struct {
	Title string `json:"title" jsonschema:"the job title as written on a website"`
}

// StandardiseTitleOutput is the output schema for the standardise_title tool.
type StandardiseTitleOutput struct {
	Matched   bool   `json:"matched"`
	Canonical string `json:"canonical,omitempty"`
}

// DiscoverContactsInput is the input schema for the discover_contacts tool.
type DiscoverContactsInput struct {
	SearchURL        string `json:"search_url,omitempty" jsonschema:"directory search page to start from (default: configured search URL)"`
	MaxOrganizations int    `json:"max_organizations,omitempty" jsonschema:"maximum number of organizations to process (default: configured limit)"`
}

// DiscoverContactsOutput is the output schema for the discover_contacts tool.
type DiscoverContactsOutput struct {
	RunID                  string          `json:"run_id"`
	OrganizationsFound     int             `json:"organizations_found"`
	OrganizationsProcessed int             `json:"organizations_processed"`
	OrganizationsSkipped   int             `json:"organizations_skipped"`
	OrganizationsFailed    int             `json:"organizations_failed"`
	Contacts               []ContactOutput `json:"contacts"`
	Count                  int             `json:"count"`
}

// ContactOutput is one enriched contact.
type ContactOutput struct {
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	JobTitle           string `json:"job_title"`
	Email              string `json:"email"`
	Phone              string `json:"phone,omitempty"`
	OrganizationName   string `json:"organization_name"`
	OrganizationDomain string `json:"organization_domain"`
	OrganizationPhone  string `json:"organization_phone,omitempty"`
	OrganizationState  string `json:"organization_state,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "standardise_title",
		Description: "Match a raw job title against the controlled title vocabulary",
	}, s.handleStandardiseTitle)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "discover_contacts",
		Description: "Crawl a school directory and extract leadership contacts from each school website",
	}, s.handleDiscoverContacts)
}

// handleStandardiseTitle handles the standardise_title tool invocation.
func (s *Server) handleStandardiseTitle(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input StandardiseTitleInput,
) (*mcp.CallToolResult, StandardiseTitleOutput, error) {
	canonical, ok := s.ports.Titles.Standardise(input.Title)
	return nil, StandardiseTitleOutput{Matched: ok, Canonical: canonical}, nil
}

// handleDiscoverContacts handles the discover_contacts tool invocation.
func (s *Server) handleDiscoverContacts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DiscoverContactsInput,
) (*mcp.CallToolResult, DiscoverContactsOutput, error) {
	if s.ports.Discovery == nil {
		return nil, DiscoverContactsOutput{}, ErrDiscoveryUnavailable
	}

	opts := s.ports.Defaults
	if url := strings.TrimSpace(input.SearchURL); url != "" {
		opts.SearchURL = url
	}
	if input.MaxOrganizations > 0 {
		opts.MaxOrganizations = input.MaxOrganizations
	}

	s.log.Info("discover_contacts requested",
		zap.String("search_url", opts.SearchURL),
		zap.Int("max_organizations", opts.MaxOrganizations))

	report, err := s.ports.Discovery.Run(ctx, opts)
	if err != nil {
		s.log.Warn("discover_contacts failed", zap.Error(err))
		return nil, DiscoverContactsOutput{}, err
	}
	s.log.Info("discover_contacts finished",
		zap.String("run_id", report.RunID),
		zap.Int("contacts", len(report.Contacts)))

	output := DiscoverContactsOutput{
		RunID:                  report.RunID,
		OrganizationsFound:     report.OrganizationsFound,
		OrganizationsProcessed: report.OrganizationsProcessed,
		OrganizationsSkipped:   report.OrganizationsSkipped,
		OrganizationsFailed:    report.OrganizationsFailed,
		Contacts:               make([]ContactOutput, len(report.Contacts)),
		Count:                  len(report.Contacts),
	}
	for i := range report.Contacts {
		c := &report.Contacts[i]
		output.Contacts[i] = ContactOutput{
			FirstName:          c.FirstName,
			LastName:           c.LastName,
			JobTitle:           c.JobTitle,
			Email:              c.Email,
			Phone:              domain.ValueOrEmpty(c.Phone),
			OrganizationName:   c.OrganizationName,
			OrganizationDomain: c.OrganizationDomain,
			OrganizationPhone:  domain.ValueOrEmpty(c.OrganizationPhone),
			OrganizationState:  domain.ValueOrEmpty(c.OrganizationState),
		}
	}

	return nil, output, nil
}
