// Package api provides the HTTP adapter for the case lookup server.
//
// It implements driven.ChallengeService against GET /api/captcha and
// driven.QueryService against POST /api/case-data. Requests are throttled
// by a token bucket and tagged with an X-Request-ID; they are never retried.
package api
