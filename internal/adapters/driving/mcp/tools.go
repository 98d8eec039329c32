package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/neurobreath/nbassist/internal/core/domain"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Query        string `json:"query" jsonschema:"the question to ask"`
	Role         string `json:"role,omitempty" jsonschema:"assistant role: buddy, coach, blog or narrator"`
	Jurisdiction string `json:"jurisdiction,omitempty" jsonschema:"jurisdiction for signposting and sources: UK, US or EU"`
	PagePath     string `json:"page_path,omitempty" jsonschema:"path of the page the assistant is embedded in"`
	PageName     string `json:"page_name,omitempty" jsonschema:"display name of the current page"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer      string           `json:"answer"`
	QueryType   string           `json:"query_type"`
	SafetyLevel string           `json:"safety_level"`
	Escalated   bool             `json:"escalated"`
	Degraded    bool             `json:"degraded"`
	Citations   []CitationOutput `json:"citations,omitempty"`
	Warnings    []string         `json:"warnings,omitempty"`
}

// RouteInput is the input schema for the route_query tool.
type RouteInput struct {
	Query        string `json:"query" jsonschema:"the query to route"`
	Jurisdiction string `json:"jurisdiction,omitempty" jsonschema:"jurisdiction: UK, US or EU"`
}

// RouteOutput is the output schema for the route_query tool.
type RouteOutput struct {
	QueryType        string   `json:"query_type"`
	SafetyLevel      string   `json:"safety_level"`
	Action           string   `json:"action"`
	Topic            string   `json:"topic,omitempty"`
	RequiresEvidence bool     `json:"requires_evidence"`
	SuggestedSources []string `json:"suggested_sources,omitempty"`
	Priority         string   `json:"priority"`
	NeedsGeneration  bool     `json:"needs_generation"`
	Signposting      string   `json:"signposting,omitempty"`
}

// CreateCitationInput is the input schema for the create_citation tool.
type CreateCitationInput struct {
	SourceID string `json:"source_id" jsonschema:"registry key of the evidence source, e.g. nhs, nice, pubmed"`
	Title    string `json:"title,omitempty" jsonschema:"citation title"`
	URL      string `json:"url" jsonschema:"the URL to cite"`
	Excerpt  string `json:"excerpt,omitempty" jsonschema:"short quotation from the source"`
}

// CreateCitationOutput is the output schema for the create_citation tool.
type CreateCitationOutput struct {
	Valid    bool            `json:"valid"`
	Citation *CitationOutput `json:"citation,omitempty"`
	Reason   string          `json:"reason,omitempty"`
}

// CitationOutput represents a single validated citation.
type CitationOutput struct {
	SourceID  string `json:"source_id"`
	Label     string `json:"label"`
	Title     string `json:"title,omitempty"`
	URL       string `json:"url"`
	Formatted string `json:"formatted"`
}

// UpdatePreferencesInput is the input schema for the update_preferences tool.
type UpdatePreferencesInput struct {
	Section string         `json:"section" jsonschema:"preference section: tts, accessibility, regional or ai"`
	Patch   map[string]any `json:"patch" jsonschema:"fields to change within the section"`
}

// GetPreferencesInput is the (empty) input schema for the get_preferences tool.
type GetPreferencesInput struct{}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Ask the health and wellbeing assistant a question. Crisis queries receive signposting, never generated content.",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "route_query",
		Description: "Run the safety gate and classifier on a query without generating an answer",
	}, s.handleRouteQuery)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_citation",
		Description: "Validate a URL against an approved evidence source and build a citation",
	}, s.handleCreateCitation)

	if s.ports.Preference != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_preferences",
			Description: "Read the stored user preference document",
		}, s.handleGetPreferences)

		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "update_preferences",
			Description: "Apply a partial update to one section of the user preference document",
		}, s.handleUpdatePreferences)
	}
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	if s.ports.Assistant == nil {
		return nil, AskOutput{}, errors.New("assistant backend not configured")
	}

	qctx := domain.QueryContext{
		PagePath:     input.PagePath,
		PageName:     input.PageName,
		Jurisdiction: domain.Jurisdiction(input.Jurisdiction),
		Role:         domain.AssistantRole(input.Role),
	}

	resp, err := s.ports.Assistant.Ask(ctx, input.Query, qctx, nil)
	if err != nil {
		if errors.Is(err, domain.ErrResponseBlocked) {
			return nil, AskOutput{
				Answer:      "The generated answer failed safety checks and was withheld.",
				QueryType:   "blocked",
				SafetyLevel: domain.SafetyNone.String(),
			}, nil
		}
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Answer:      resp.Answer,
		QueryType:   resp.Routing.QueryType.String(),
		SafetyLevel: resp.Routing.SafetyCheck.Level.String(),
		Escalated:   resp.Routing.SafetyCheck.Action == domain.ActionEscalateOnly,
		Degraded:    resp.Degraded,
		Warnings:    resp.Warnings,
	}

	for _, c := range collectGroup(resp.Citations) {
		output.Citations = append(output.Citations, s.citationOutput(c))
	}

	return nil, output, nil
}

// handleRouteQuery handles the route_query tool invocation.
func (s *Server) handleRouteQuery(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RouteInput,
) (*mcp.CallToolResult, RouteOutput, error) {
	qctx := domain.QueryContext{
		Jurisdiction: domain.Jurisdiction(input.Jurisdiction),
	}
	decision := s.ports.Router.Route(input.Query, qctx)

	output := RouteOutput{
		QueryType:        decision.QueryType.String(),
		SafetyLevel:      decision.SafetyCheck.Level.String(),
		Action:           decision.SafetyCheck.Action.String(),
		Topic:            decision.Topic.String(),
		RequiresEvidence: decision.RequiresEvidence,
		SuggestedSources: decision.SuggestedSources,
		Priority:         decision.Priority.String(),
		NeedsGeneration:  s.ports.Router.NeedsLLM(decision),
		Signposting:      decision.SafetyCheck.Signposting,
	}

	return nil, output, nil
}

// handleCreateCitation handles the create_citation tool invocation.
func (s *Server) handleCreateCitation(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CreateCitationInput,
) (*mcp.CallToolResult, CreateCitationOutput, error) {
	citation := s.ports.Citations.Create(input.SourceID, input.Title, input.URL, input.Excerpt)
	if citation == nil {
		return nil, CreateCitationOutput{
			Valid:  false,
			Reason: fmt.Sprintf("%s is not a valid URL for source %q", input.URL, input.SourceID),
		}, nil
	}

	out := s.citationOutput(*citation)
	return nil, CreateCitationOutput{Valid: true, Citation: &out}, nil
}

// handleGetPreferences handles the get_preferences tool invocation.
func (s *Server) handleGetPreferences(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ GetPreferencesInput,
) (*mcp.CallToolResult, domain.UserPreferences, error) {
	return nil, s.ports.Preference.Load(), nil
}

// handleUpdatePreferences handles the update_preferences tool invocation.
func (s *Server) handleUpdatePreferences(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input UpdatePreferencesInput,
) (*mcp.CallToolResult, domain.UserPreferences, error) {
	prefs, err := s.ports.Preference.Update(domain.PreferenceSection(input.Section), input.Patch)
	if err != nil {
		return nil, domain.UserPreferences{}, err
	}
	return nil, prefs, nil
}

func (s *Server) citationOutput(c domain.Citation) CitationOutput {
	return CitationOutput{
		SourceID:  c.SourceID,
		Label:     c.SourceLabel,
		Title:     c.Title,
		URL:       c.URL,
		Formatted: s.ports.Citations.Format(c),
	}
}

// collectGroup flattens a citation group in display order.
func collectGroup(g domain.CitationGroup) []domain.Citation {
	out := make([]domain.Citation, 0, g.Total())
	out = append(out, g.Clinical...)
	out = append(out, g.Research...)
	out = append(out, g.Support...)
	return out
}
