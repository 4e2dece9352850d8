package testhelpers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Fixture bodies served by FakeBackend unless overridden.
var defaultFixtures = map[string]string{
	"GET /company-info":        `{"name":"ZignEx","tagline":"Converging and Evolving...","motto":"Imagine","headquarters":"The Woodlands, TX, USA","description":"Logistics software.","vision":"Data-driven fleets.","technologies":["AI","Analytics"]}`,
	"GET /services":            `{"roll-off":{"title":"Roll-Off Container Services","description":"Containers on demand.","image":"/img/rolloff.jpg","features":["Same-day delivery"]},"commercial":{"title":"Commercial Waste Collection","description":"Scheduled pickups.","image":"","features":["Route density"]}}`,
	"GET /planning-services":   `{"strategic":{"title":"Strategic Planning Solutions","description":"Long-range planning.","image":"","capabilities":["Demand forecasting"]}}`,
	"GET /testimonials":        `[{"id":1,"company":"Acme Hauling","quote":"Cut our miles by a fifth.","author":"Dana Reyes","rating":5}]`,
	"GET /leadership":          `{"ceo":{"name":"Dr. Sam Rao","title":"Founder & CEO","image":"","bio":"Operations researcher.","credentials":"PhD"}}`,
	"GET /stats":               `[{"label":"Routes Optimized","value":"10,000+"},{"label":"Cost Reduction","value":"25%"}]`,
	"POST /contact":            `{"success":true,"message":"Thank you for contacting us!","id":"sub-1"}`,
	"GET /contact-submissions": `[{"id":"sub-2","name":"Priya","email":"priya@example.com","company":"Acme","phone":"","service":"Custom Enterprise Solution","message":"Hello","created_at":"2026-03-02T10:30:00.000000","status":"new"}]`,
}

type fakeResponse struct {
	status int
	body   string
}

// FakeBackend is an httptest content API. Routes answer with fixtures
// until overridden with Respond or Fail.
type FakeBackend struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]fakeResponse
	hits      map[string]int
	posted    []json.RawMessage

	// gate, when set, holds POST /contact until it is closed.
	gate chan struct{}
}

// NewFakeBackend starts a backend serving the default fixtures. It is
// closed when the test finishes.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()

	fb := &FakeBackend{
		responses: make(map[string]fakeResponse, len(defaultFixtures)),
		hits:      make(map[string]int),
	}
	for route, body := range defaultFixtures {
		fb.responses[route] = fakeResponse{status: http.StatusOK, body: body}
	}
	fb.Server = httptest.NewServer(http.HandlerFunc(fb.serve))
	t.Cleanup(fb.Close)
	return fb
}

func (fb *FakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	route := r.Method + " " + r.URL.Path

	fb.mu.Lock()
	fb.hits[route]++
	resp, ok := fb.responses[route]
	gate := fb.gate
	if r.Method == http.MethodPost {
		body, _ := io.ReadAll(r.Body)
		fb.posted = append(fb.posted, json.RawMessage(body))
	}
	fb.mu.Unlock()

	if r.Method == http.MethodPost && gate != nil {
		<-gate
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	io.WriteString(w, resp.body)
}

// Respond replaces the answer for "METHOD /path".
func (fb *FakeBackend) Respond(route string, status int, body string) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.responses[route] = fakeResponse{status: status, body: body}
}

// Fail makes route answer with a 500.
func (fb *FakeBackend) Fail(route string) {
	fb.Respond(route, http.StatusInternalServerError, `{"detail":"boom"}`)
}

// Hits reports how many times route was requested.
func (fb *FakeBackend) Hits(route string) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.hits[route]
}

// Posted returns the raw bodies of every POST received, in order.
func (fb *FakeBackend) Posted() []json.RawMessage {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	out := make([]json.RawMessage, len(fb.posted))
	copy(out, fb.posted)
	return out
}

// HoldSubmissions makes POST /contact block until the returned release
// function is called.
func (fb *FakeBackend) HoldSubmissions() (release func()) {
	gate := make(chan struct{})
	fb.mu.Lock()
	fb.gate = gate
	fb.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			fb.mu.Lock()
			fb.gate = nil
			fb.mu.Unlock()
			close(gate)
		})
	}
}
