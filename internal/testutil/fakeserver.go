// Package testutil provides shared test fixtures, chiefly an in-process
// fake of the case lookup server.
package testutil

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// CaseRequest is a decoded POST /api/case-data body as the server saw it.
type CaseRequest struct {
	SessionID   *string `json:"session_id"`
	CaseType    string  `json:"case_type"`
	CaseNumber  string  `json:"case_number"`
	CaseYear    int     `json:"case_year"`
	CaptchaText string  `json:"captcha_text"`

	// Raw is the undecoded body.
	Raw map[string]any `json:"-"`
}

// CaseResponse is a canned POST /api/case-data reply.
type CaseResponse struct {
	Status int
	Body   any
}

// FakeCourtServer mimics the lookup server. By default every challenge
// gets a fresh "sess-N" token and every query whose answer matches
// Answer for a live session succeeds with Result.
type FakeCourtServer struct {
	*httptest.Server

	mu             sync.Mutex
	next           int
	live           map[string]bool
	captchaCalls   int
	caseRequests   []CaseRequest
	CaptchaStatus  int
	CaptchaBody    any
	CaseOverride   *CaseResponse
	Answer         string
	Result         map[string]any
	lastRequestIDs []string
}

// NewFakeCourtServer starts a fake server; it is closed when t finishes.
func NewFakeCourtServer(t testing.TB) *FakeCourtServer {
	t.Helper()

	f := &FakeCourtServer{
		next:   123,
		live:   make(map[string]bool),
		Answer: "AB12",
		Result: map[string]any{
			"parties":           "A vs B",
			"filing_date":       "2020-01-10",
			"next_hearing_date": "2024-05-01",
			"pdf_links":         []string{"/f1.pdf", "/f2.pdf"},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/captcha", f.handleCaptcha)
	mux.HandleFunc("POST /api/case-data", f.handleCaseData)
	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)
	return f
}

func (f *FakeCourtServer) handleCaptcha(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.captchaCalls++
	f.lastRequestIDs = append(f.lastRequestIDs, r.Header.Get("X-Request-ID"))

	if f.CaptchaStatus != 0 || f.CaptchaBody != nil {
		status := f.CaptchaStatus
		if status == 0 {
			status = http.StatusOK
		}
		writeJSON(w, status, f.CaptchaBody)
		return
	}

	id := fmt.Sprintf("sess-%d", f.next)
	f.next++
	f.live[id] = true
	writeJSON(w, http.StatusOK, map[string]any{
		"captcha_image": CaptchaPNGBase64,
		"session_id":    id,
	})
}

func (f *FakeCourtServer) handleCaseData(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r.Body)

	var req CaseRequest
	if err := json.Unmarshal(buf.Bytes(), &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []map[string]any{{"loc": []string{"body"}, "msg": "invalid json", "type": "value_error"}},
		})
		return
	}
	_ = json.Unmarshal(buf.Bytes(), &req.Raw)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.caseRequests = append(f.caseRequests, req)
	f.lastRequestIDs = append(f.lastRequestIDs, r.Header.Get("X-Request-ID"))

	if f.CaseOverride != nil {
		writeJSON(w, f.CaseOverride.Status, f.CaseOverride.Body)
		return
	}

	if req.SessionID == nil || !f.live[*req.SessionID] {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "Invalid or expired session."})
		return
	}
	// A session is consumed by its first query, as on the real server.
	delete(f.live, *req.SessionID)

	if req.CaptchaText != f.Answer {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "Invalid CAPTCHA. Please try again."})
		return
	}
	writeJSON(w, http.StatusOK, f.Result)
}

// CaptchaCalls returns how many challenges were requested.
func (f *FakeCourtServer) CaptchaCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.captchaCalls
}

// CaseRequests returns the case queries received so far.
func (f *FakeCourtServer) CaseRequests() []CaseRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]CaseRequest(nil), f.caseRequests...)
}

// RequestIDs returns the X-Request-ID header of every request, in order.
func (f *FakeCourtServer) RequestIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.lastRequestIDs...)
}

// SetCaptchaReply makes every challenge request answer with status and body.
func (f *FakeCourtServer) SetCaptchaReply(status int, body any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CaptchaStatus, f.CaptchaBody = status, body
}

// SetCaseReply makes every query answer with status and body.
func (f *FakeCourtServer) SetCaseReply(status int, body any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CaseOverride = &CaseResponse{Status: status, Body: body}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if raw, ok := body.(string); ok {
		_, _ = w.Write([]byte(raw))
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}

// CaptchaPNG is a small two-tone PNG used as the fake challenge image.
var CaptchaPNG = mustCaptchaPNG()

// CaptchaPNGBase64 is CaptchaPNG in its wire encoding.
var CaptchaPNGBase64 = base64.StdEncoding.EncodeToString(CaptchaPNG)

func mustCaptchaPNG() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 12, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 12; x++ {
			c := color.RGBA{R: 255, G: 255, B: 255, A: 255}
			if (x/3+y)%2 == 0 {
				c = color.RGBA{R: 20, G: 20, B: 120, A: 255}
			}
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
