// Package domain defines the core business entities for casefetch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Challenge: a CAPTCHA image bound to a server session token
//   - CaseQuery: the case identifiers plus the user's CAPTCHA answer
//   - CaseResult: the case metadata and document links returned for a query
//   - Settings: client configuration (server, rate limits, form options)
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
