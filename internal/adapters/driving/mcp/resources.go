package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for nbassist resources.
	uriScheme = "nbassist://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the evidence source registry.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sources",
		Name:        "sources",
		Description: "The approved evidence source registry: the only organisations the assistants may cite",
		MIMEType:    "application/json",
	}, s.handleSourcesResource)

	// Static resource for the preference document.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "preferences",
		Name:        "preferences",
		Description: "The stored user preference document",
		MIMEType:    "application/json",
	}, s.handlePreferencesResource)
}

// handleSourcesResource returns the evidence source registry.
func (s *Server) handleSourcesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Registry == nil {
		return jsonResource(req.Params.URI, []byte("[]"))
	}

	// Build a simplified source list.
	type sourceInfo struct {
		ID      string   `json:"id"`
		Name    string   `json:"name"`
		Tier    string   `json:"tier"`
		Domains []string `json:"domains,omitempty"`
		BaseURL string   `json:"base_url,omitempty"`
	}

	sources := s.ports.Registry.AllSources()
	infos := make([]sourceInfo, len(sources))
	for i, src := range sources {
		infos[i] = sourceInfo{
			ID:      src.ID,
			Name:    src.Name,
			Tier:    src.Tier.String(),
			Domains: src.Domains,
			BaseURL: src.BaseURL,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling sources: %w", err)
	}
	return jsonResource(req.Params.URI, data)
}

// handlePreferencesResource returns the stored preference document.
func (s *Server) handlePreferencesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Preference == nil {
		return jsonResource(req.Params.URI, []byte("{}"))
	}

	data, err := json.MarshalIndent(s.ports.Preference.Load(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling preferences: %w", err)
	}
	return jsonResource(req.Params.URI, data)
}

func jsonResource(uri string, data []byte) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
