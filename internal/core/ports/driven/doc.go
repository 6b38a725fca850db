// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ChallengeService: issues CAPTCHA challenges bound to a session
//   - QueryService: resolves case queries against a session
//   - Presenter: the user-facing surface the workflow drives
//   - ConfigStore: application configuration
//
// # Optional Interfaces
//
//   - LinkOpener: hands document links to the operating system. Without
//     it, result actions report that they are unavailable.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
