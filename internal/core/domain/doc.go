// Package domain defines the core business entities for the NeuroBreath
// assistant gate.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Query: A single incoming user question with caller context
//   - SafetyCheckResult: Outcome of the safeguarding gate
//   - RoutingDecision: How a query should be handled downstream
//   - Citation / EvidenceSource: Validated evidentiary references
//   - UserPreferences: The versioned, persisted preference document
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
