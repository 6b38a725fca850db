package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/casefetch/internal/core/domain"
	"github.com/custodia-labs/casefetch/internal/core/ports/driven"
	"github.com/custodia-labs/casefetch/internal/logger"
)

// Ensure Client implements the interfaces.
var (
	_ driven.ChallengeService = (*Client)(nil)
	_ driven.QueryService     = (*Client)(nil)
)

// Endpoint paths.
const (
	CaptchaPath  = "/api/captcha"
	CaseDataPath = "/api/case-data"
)

// Default configuration values.
const (
	DefaultTimeout   = 60 * time.Second
	DefaultUserAgent = "casefetch"

	// maxBodySize caps how much of a response is read.
	maxBodySize = 8 << 20
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// Config holds configuration for the API client.
type Config struct {
	// BaseURL is the server root, e.g. http://localhost:8000.
	BaseURL string

	// Timeout is the per-request timeout (default: 60s).
	Timeout time.Duration

	// RateLimit paces outgoing requests.
	RateLimit RateLimitConfig

	// UserAgent is sent with every request (default: casefetch).
	UserAgent string

	// HTTPClient overrides the underlying client. Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client talks to the case lookup server.
type Client struct {
	client    *http.Client
	baseURL   string
	limiter   *RateLimiter
	userAgent string
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: invalid base url %q", domain.ErrInvalidInput, cfg.BaseURL)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		client:    httpClient,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		limiter:   NewRateLimiter(cfg.RateLimit),
		userAgent: cfg.UserAgent,
	}, nil
}

// BaseURL returns the server root used for requests.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// IssueChallenge requests a new CAPTCHA challenge.
func (c *Client) IssueChallenge(ctx context.Context) (domain.ChallengeEnvelope, error) {
	const op = "GET " + CaptchaPath

	status, body, err := c.do(ctx, http.MethodGet, CaptchaPath, nil)
	if err != nil {
		return domain.ChallengeEnvelope{}, &domain.TransportError{Op: op, Err: err}
	}

	if !isSuccess(status) {
		return domain.ChallengeEnvelope{}, &domain.RejectionError{
			Op:         op,
			StatusCode: status,
			Detail:     parseDetail(body),
			Kind:       domain.ErrChallengeRejected,
		}
	}

	var resp captchaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		logger.Warn("%s: undecodable body: %v", op, err)
		return domain.ChallengeEnvelope{}, &domain.RejectionError{Op: op, Kind: domain.ErrChallengeRejected}
	}
	if resp.SessionID == "" || resp.CaptchaImage == "" {
		logger.Warn("%s: response is missing session_id or captcha_image", op)
		return domain.ChallengeEnvelope{}, &domain.RejectionError{Op: op, Kind: domain.ErrChallengeRejected}
	}

	return domain.ChallengeEnvelope{
		SessionID: domain.SessionToken(resp.SessionID),
		ImageData: resp.CaptchaImage,
	}, nil
}

// LookupCase submits a case query.
func (c *Client) LookupCase(ctx context.Context, query domain.CaseQuery) (*domain.CaseResult, error) {
	const op = "POST " + CaseDataPath

	req := caseDataRequest{
		CaseType:    query.CaseType,
		CaseNumber:  query.CaseNumber,
		CaseYear:    query.CaseYear,
		CaptchaText: query.CaptchaText,
	}
	if query.SessionID != nil {
		sid := query.SessionID.String()
		req.SessionID = &sid
	}

	status, body, err := c.do(ctx, http.MethodPost, CaseDataPath, req)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: err}
	}

	if !isSuccess(status) {
		return nil, &domain.RejectionError{
			Op:         op,
			StatusCode: status,
			Detail:     parseDetail(body),
			Kind:       domain.ErrQueryRejected,
		}
	}

	var resp caseDataResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		logger.Warn("%s: undecodable body: %v", op, err)
		return nil, &domain.RejectionError{Op: op, Kind: domain.ErrQueryRejected}
	}

	links := resp.PDFLinks
	if links == nil {
		links = []string{}
	}
	return &domain.CaseResult{
		Parties:         resp.Parties,
		FilingDate:      resp.FilingDate,
		NextHearingDate: resp.NextHearingDate,
		PDFLinks:        links,
	}, nil
}

// do sends one request and reads the whole response body. A returned
// error means no usable response was received.
func (c *Client) do(ctx context.Context, method, path string, payload any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	logger.Debug("%s %s [%s]", method, path, requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Debug("%s %s [%s] failed: %v", method, path, requestID, err)
		return 0, nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}

	logger.Debug("%s %s [%s] -> %d in %s", method, path, requestID, resp.StatusCode, time.Since(start).Round(time.Millisecond))
	return resp.StatusCode, body, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
