// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The central service is WorkflowController, which sequences the CAPTCHA
// challenge and case query calls and keeps the single live session token.
package services
