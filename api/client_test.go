package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"zignexweb/metrics"
	"zignexweb/models"
)

func newBackend(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api", srv.Client())
}

func TestClient_GetDecodesBody(t *testing.T) {
	var gotPath, gotCT string
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCT = r.Header.Get("Content-Type")
		w.Write([]byte(`[{"label":"Years of Experience","value":"30+"}]`))
	})

	stats, err := c.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if gotPath != "/api/stats" {
		t.Errorf("path = %q, want /api/stats", gotPath)
	}
	if gotCT != "application/json" {
		t.Errorf("Content-Type = %q", gotCT)
	}
	if len(stats) != 1 || stats[0] != (models.Stat{Label: "Years of Experience", Value: "30+"}) {
		t.Errorf("stats = %+v", stats)
	}
}

func TestClient_StatValuesPassVerbatim(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"label":"Cost Reduction","value":"25%"},{"label":"Routes Optimized","value":"10,000+"}]`))
	})

	stats, err := c.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats[0].Value != "25%" || stats[1].Value != "10,000+" {
		t.Errorf("values = %q, %q", stats[0].Value, stats[1].Value)
	}
}

func TestClient_NonSuccessIsRequestError(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusMultipleChoices} {
		c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"detail":"Company information not found"}`))
		})

		_, err := c.CompanyInfo(context.Background())
		var re *RequestError
		if !errors.As(err, &re) {
			t.Fatalf("status %d: error = %v, want *RequestError", status, err)
		}
		if re.Status != status || re.Path != PathCompanyInfo {
			t.Errorf("RequestError = %+v", re)
		}
		if StatusOf(err) != status {
			t.Errorf("StatusOf() = %d", StatusOf(err))
		}
	}
}

func TestClient_UnreachableIsTransportError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	c := NewClient("http://"+addr+"/api", nil)
	_, err = c.Testimonials(context.Background())

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("error = %v, want *TransportError", err)
	}
	if StatusOf(err) != 0 {
		t.Error("transport errors carry no status")
	}
}

func TestClient_MalformedBodyIsTransportError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"truncated object", `{"name": "ZignEx",`},
		{"trailing markup", `{"name": "ZignEx"}<html>oops`},
		{"second value", `{"name": "ZignEx"} {"name": "Other"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			_, err := c.CompanyInfo(context.Background())
			var te *TransportError
			if !errors.As(err, &te) {
				t.Fatalf("error = %v, want *TransportError", err)
			}
		})
	}
}

func TestClient_TrailingDataAfterArray(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"label":"Years","value":"30+"}]<html>oops`))
	})

	stats, err := c.Stats(context.Background())
	if err == nil {
		t.Fatalf("expected an error, got stats %v", stats)
	}
	if stats != nil {
		t.Errorf("stats = %v, want nil on failure", stats)
	}
}

func TestClient_MissingResource(t *testing.T) {
	for _, body := range []string{"null", "", "  null\n"} {
		c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})

		_, err := c.Services(context.Background())
		if !errors.Is(err, ErrResourceMissing) {
			t.Errorf("body %q: error = %v, want ErrResourceMissing", body, err)
		}
		var te *TransportError
		if !errors.As(err, &te) {
			t.Errorf("body %q: expected *TransportError", body)
		}
	}
}

func TestClient_MissingResourceCountsAsTransportError(t *testing.T) {
	ok := metrics.BackendRequests.WithLabelValues(http.MethodGet, PathTestimonials, "ok")
	failed := metrics.BackendRequests.WithLabelValues(http.MethodGet, PathTestimonials, "transport_error")
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	})
	if _, err := c.Testimonials(context.Background()); !errors.Is(err, ErrResourceMissing) {
		t.Fatalf("error = %v, want ErrResourceMissing", err)
	}

	if got := testutil.ToFloat64(ok) - okBefore; got != 0 {
		t.Errorf("ok outcome grew by %v, want 0", got)
	}
	if got := testutil.ToFloat64(failed) - failedBefore; got != 1 {
		t.Errorf("transport_error outcome grew by %v, want 1", got)
	}
}

func TestClient_SubmitPostsJSON(t *testing.T) {
	var got models.ContactSubmission
	var method, ct string
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		ct = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"success":true,"message":"Contact form submitted successfully","id":"65f0"}`))
	})

	sub := models.ContactSubmission{Name: "Jane", Email: "jane@example.com", Message: "Hello"}
	ack, err := c.SubmitContact(context.Background(), sub)
	if err != nil {
		t.Fatalf("SubmitContact() error = %v", err)
	}
	if method != http.MethodPost || ct != "application/json" {
		t.Errorf("method=%s content-type=%s", method, ct)
	}
	if got != sub {
		t.Errorf("backend received %+v, want %+v", got, sub)
	}
	if !ack.Success || ack.ID != "65f0" {
		t.Errorf("ack = %+v", ack)
	}
}

func TestClient_SubmitFailure(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Failed to submit contact form"}`, http.StatusInternalServerError)
	})

	_, err := c.SubmitContact(context.Background(), models.ContactSubmission{Name: "x", Email: "y", Message: "z"})
	if StatusOf(err) != http.StatusInternalServerError {
		t.Errorf("error = %v, want 500 RequestError", err)
	}
}

func TestClient_SubmitUnencodablePayload(t *testing.T) {
	var hits atomic.Int32
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) { hits.Add(1) })

	err := c.Submit(context.Background(), "/contact", map[string]any{"bad": make(chan int)}, nil)
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("error = %v, want *TransportError", err)
	}
	if hits.Load() != 0 {
		t.Error("nothing should be sent when encoding fails")
	}
}

func TestClient_NoRetry(t *testing.T) {
	var hits atomic.Int32
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	c.Leadership(context.Background())
	if hits.Load() != 1 {
		t.Errorf("hits = %d, want exactly 1", hits.Load())
	}
}

func TestClient_ContextCancelled(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Stats(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestClient_BaseTrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.WriteString(w, `{"ceo":{"name":"A"}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/", srv.Client())
	l, err := c.Leadership(context.Background())
	if err != nil {
		t.Fatalf("Leadership() error = %v", err)
	}
	if gotPath != "/api/leadership" {
		t.Errorf("path = %q", gotPath)
	}
	if l.CEO.Name != "A" {
		t.Errorf("leadership = %+v", l)
	}
}

func TestRequestError_Message(t *testing.T) {
	err := &RequestError{Method: "GET", Path: "/stats", Status: 502}
	if !strings.Contains(err.Error(), "502 Bad Gateway") {
		t.Errorf("Error() = %q", err.Error())
	}
}
