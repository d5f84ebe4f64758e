// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Normaliser: Turns a text file into ordered chapters
//   - DocumentStore: Prompter document persistence (one JSON file per GUID)
//   - LibraryStore: Registration in the shared Camera Hub settings file
//   - ConfigStore: Tool configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
