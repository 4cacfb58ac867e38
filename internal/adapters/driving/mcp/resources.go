package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for staffscout resources.
	uriScheme = "staffscout://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "titles",
		Name:        "titles",
		Description: "Controlled job-title vocabulary in match precedence order",
		MIMEType:    "application/json",
	}, s.handleTitlesResource)
}

// handleTitlesResource returns the controlled vocabulary.
func (s *Server) handleTitlesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(s.ports.Titles.Vocabulary(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling titles: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
