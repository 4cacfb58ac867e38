// Package mcp provides an MCP (Model Context Protocol) server adapter for staffscout.
// It lets AI assistants standardise job titles and run contact discovery.
package mcp

import "errors"

var (
	// ErrMissingTitleService is returned when the title service is not provided.
	ErrMissingTitleService = errors.New("mcp: title service is required")

	// ErrDiscoveryUnavailable is returned by discover_contacts when no discovery service is wired.
	ErrDiscoveryUnavailable = errors.New("mcp: discovery is not configured")
)
