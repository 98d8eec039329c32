// Package mcp provides an MCP (Model Context Protocol) server adapter
// for nbassist. It lets MCP clients route queries through the safety
// gate, ask gated questions, build allowlisted citations and manage
// user preferences.
package mcp

import "errors"

// ErrMissingRouterService is returned when the router service is not provided.
var ErrMissingRouterService = errors.New("mcp: router service is required")

// ErrMissingCitationService is returned when the citation service is not provided.
var ErrMissingCitationService = errors.New("mcp: citation service is required")
