// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - SourceRegistry: Evidence source lookup and URL allowlisting
//   - KeywordMatcher: Safety concern detection and crisis signposting
//   - KVStore: Preference document persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Generator: Language model text generation. Without it, routed
//     queries return routing metadata and signposting only.
//   - TemplateStore: Prompt template overrides. Without it, composers
//     use built-in templates.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
