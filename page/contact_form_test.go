package page

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"zignexweb/models"
)

type fakeSubmitter struct {
	mu    sync.Mutex
	calls []models.ContactSubmission
	err   error

	// gate, when set, blocks SubmitContact until closed.
	gate    chan struct{}
	entered chan struct{}
}

func (s *fakeSubmitter) SubmitContact(ctx context.Context, sub models.ContactSubmission) (models.ContactAck, error) {
	s.mu.Lock()
	s.calls = append(s.calls, sub)
	gate, entered, err := s.gate, s.entered, s.err
	s.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
	if err != nil {
		return models.ContactAck{}, err
	}
	return models.ContactAck{Success: true, ID: "abc123"}, nil
}

func (s *fakeSubmitter) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// manualClock captures scheduled callbacks so tests decide when they fire.
type manualClock struct {
	mu      sync.Mutex
	pending []func()
	delays  []time.Duration
}

func (c *manualClock) schedule(d time.Duration, f func()) func() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := len(c.pending)
	c.pending = append(c.pending, f)
	c.delays = append(c.delays, d)
	return func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		stopped := c.pending[idx] != nil
		c.pending[idx] = nil
		return stopped
	}
}

func (c *manualClock) fire() int {
	c.mu.Lock()
	fns := c.pending
	c.pending = make([]func(), len(fns))
	c.mu.Unlock()
	n := 0
	for _, f := range fns {
		if f != nil {
			f()
			n++
		}
	}
	return n
}

func newTestForm(s Submitter) (*ContactForm, *manualClock) {
	clock := &manualClock{}
	f := NewContactForm(s, 3*time.Second)
	f.schedule = clock.schedule
	return f, clock
}

func fill(t *testing.T, f *ContactForm, values map[string]string) {
	t.Helper()
	for k, v := range values {
		if err := f.Set(k, v); err != nil {
			t.Fatalf("Set(%q) error = %v", k, err)
		}
	}
}

var validFields = map[string]string{
	"name":    "Jane Doe",
	"email":   "jane@example.com",
	"company": "Acme Hauling",
	"phone":   "",
	"service": "Route Planning & Optimization",
	"message": "We run 40 trucks.",
}

func TestContactForm_MissingRequiredFieldNeverCallsBackend(t *testing.T) {
	for _, field := range []string{"name", "email", "message"} {
		t.Run(field, func(t *testing.T) {
			sub := &fakeSubmitter{}
			f, _ := newTestForm(sub)
			fill(t, f, validFields)
			if err := f.Set(field, ""); err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			err := f.Submit(context.Background())
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Submit() error = %v, want *ValidationError", err)
			}
			if _, ok := verr.Fields[field]; !ok {
				t.Errorf("expected %q in validation errors, got %v", field, verr.Fields)
			}
			if sub.count() != 0 {
				t.Errorf("backend called %d times, want 0", sub.count())
			}
			if f.State() != Editing {
				t.Errorf("state = %v, want editing", f.State())
			}
			if _, ok := f.Snapshot().Errors[field]; !ok {
				t.Error("snapshot should carry the field error")
			}
		})
	}
}

func TestContactForm_SuccessThenTimedResetOnce(t *testing.T) {
	sub := &fakeSubmitter{}
	f, clock := newTestForm(sub)
	fill(t, f, validFields)

	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if f.State() != Submitted {
		t.Fatalf("state = %v, want submitted", f.State())
	}
	if len(clock.delays) != 1 || clock.delays[0] != 3*time.Second {
		t.Fatalf("scheduled delays = %v, want one 3s reset", clock.delays)
	}
	if snap := f.Snapshot(); snap.Fields.Name != "Jane Doe" || snap.Ack.ID != "abc123" {
		t.Errorf("confirmation snapshot = %+v", snap)
	}
	if err := f.Set("name", "edit"); !errors.Is(err, ErrFormLocked) {
		t.Errorf("Set() while submitted error = %v, want ErrFormLocked", err)
	}

	if fired := clock.fire(); fired != 1 {
		t.Fatalf("fired %d callbacks, want 1", fired)
	}
	snap := f.Snapshot()
	if snap.State != Editing {
		t.Errorf("state after reset = %v, want editing", snap.State)
	}
	if snap.Fields != (models.ContactSubmission{}) {
		t.Errorf("fields after reset = %+v, want empty", snap.Fields)
	}
	if snap.Resets != 1 {
		t.Errorf("resets = %d, want 1", snap.Resets)
	}
	if clock.fire() != 0 {
		t.Error("reset must happen exactly once")
	}
	if sub.count() != 1 {
		t.Errorf("backend calls = %d, want 1", sub.count())
	}
}

func TestContactForm_SubmittedPayloadPassesOptionalFieldsThrough(t *testing.T) {
	sub := &fakeSubmitter{}
	f, _ := newTestForm(sub)
	fill(t, f, validFields)

	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	got := sub.calls[0]
	if got.Phone != "" || got.Company != "Acme Hauling" || got.Service != "Route Planning & Optimization" {
		t.Errorf("payload = %+v", got)
	}
}

func TestContactForm_FailureReturnsToEditingWithFields(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("backend 500")}
	f, clock := newTestForm(sub)
	fill(t, f, validFields)
	before := f.Snapshot().Fields

	if err := f.Submit(context.Background()); err == nil {
		t.Fatal("expected Submit() to fail")
	}
	snap := f.Snapshot()
	if snap.State != Editing {
		t.Errorf("state = %v, want editing", snap.State)
	}
	if snap.Fields != before {
		t.Errorf("fields changed after failure: %+v vs %+v", snap.Fields, before)
	}
	if snap.Notice != FailureNotice {
		t.Errorf("notice = %q", snap.Notice)
	}
	if len(clock.delays) != 0 {
		t.Error("no reset should be scheduled after a failure")
	}

	sub.mu.Lock()
	sub.err = nil
	sub.mu.Unlock()
	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("resubmit error = %v", err)
	}
	if f.Snapshot().Notice != "" {
		t.Error("notice should clear on a new attempt")
	}
}

func TestContactForm_SingleSubmissionInFlight(t *testing.T) {
	sub := &fakeSubmitter{gate: make(chan struct{}), entered: make(chan struct{}, 1)}
	f, _ := newTestForm(sub)
	fill(t, f, validFields)

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()

	select {
	case <-sub.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first submission never reached the backend")
	}
	if f.State() != Submitting {
		t.Fatalf("state = %v, want submitting", f.State())
	}
	if err := f.Set("message", "changed"); !errors.Is(err, ErrFormLocked) {
		t.Errorf("Set() while submitting error = %v, want ErrFormLocked", err)
	}
	if err := f.Submit(context.Background()); !errors.Is(err, ErrSubmissionInFlight) {
		t.Errorf("second Submit() error = %v, want ErrSubmissionInFlight", err)
	}

	close(sub.gate)
	if err := <-done; err != nil {
		t.Fatalf("first Submit() error = %v", err)
	}
	if sub.count() != 1 {
		t.Errorf("backend calls = %d, want 1", sub.count())
	}
}

func TestContactForm_CancelledContextDoesNotAbortSend(t *testing.T) {
	var got context.Context
	s := submitFunc(func(ctx context.Context, _ models.ContactSubmission) (models.ContactAck, error) {
		got = ctx
		return models.ContactAck{Success: true}, nil
	})
	f, _ := newTestForm(s)
	fill(t, f, validFields)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := f.Submit(ctx); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if got.Err() != nil {
		t.Errorf("submission context was cancelled: %v", got.Err())
	}
	if f.State() != Submitted {
		t.Errorf("state = %v, want submitted", f.State())
	}
}

func TestContactForm_CloseStopsPendingReset(t *testing.T) {
	f, clock := newTestForm(&fakeSubmitter{})
	fill(t, f, validFields)
	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	f.Close()
	if clock.fire() != 0 {
		t.Error("expected Close to cancel the reset")
	}
	if f.State() != Submitted {
		t.Errorf("state = %v, Close must not roll back a sent submission", f.State())
	}
}

func TestContactForm_RealTimerResets(t *testing.T) {
	f := NewContactForm(&fakeSubmitter{}, 20*time.Millisecond)
	fill(t, f, validFields)
	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for f.State() != Editing {
		if time.Now().After(deadline) {
			t.Fatal("form never reset")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if f.Snapshot().Fields != (models.ContactSubmission{}) {
		t.Error("fields not cleared")
	}
}

func TestContactForm_UnknownField(t *testing.T) {
	f, _ := newTestForm(&fakeSubmitter{})
	if err := f.Set("fax", "123"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Set() error = %v, want ErrUnknownField", err)
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"name": "Name is required", "email": "Email is required"}}
	want := "invalid contact form: email: Email is required; name: Name is required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

type submitFunc func(ctx context.Context, sub models.ContactSubmission) (models.ContactAck, error)

func (f submitFunc) SubmitContact(ctx context.Context, sub models.ContactSubmission) (models.ContactAck, error) {
	return f(ctx, sub)
}
