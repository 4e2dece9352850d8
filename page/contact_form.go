package page

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"zignexweb/models"
)

// FormState is a ContactForm's lifecycle position.
type FormState int

const (
	Editing FormState = iota
	Submitting
	Submitted
)

func (s FormState) String() string {
	switch s {
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	}
	return fmt.Sprintf("FormState(%d)", int(s))
}

// DefaultConfirmationInterval is how long a confirmation stays on screen
// before the form clears itself.
const DefaultConfirmationInterval = 3 * time.Second

// FailureNotice is shown inline when the backend rejects a submission.
const FailureNotice = "Failed to submit form. Please try again."

var (
	// ErrSubmissionInFlight rejects a second submit while one is pending.
	ErrSubmissionInFlight = errors.New("page: a submission is already in progress")
	// ErrFormLocked rejects edits outside the Editing state.
	ErrFormLocked = errors.New("page: form is not editable right now")
	// ErrUnknownField rejects edits to fields the form does not have.
	ErrUnknownField = errors.New("page: unknown form field")
)

// ValidationError lists missing or invalid fields, keyed by field name. It
// is raised before any network call is made.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid contact form: " + strings.Join(parts, "; ")
}

// Submitter sends a contact submission to the backend.
type Submitter interface {
	SubmitContact(ctx context.Context, sub models.ContactSubmission) (models.ContactAck, error)
}

// ContactForm is one visitor's contact form. It is safe for concurrent use.
type ContactForm struct {
	submitter Submitter
	interval  time.Duration

	// schedule runs f after d and returns a stop function.
	schedule func(d time.Duration, f func()) (stop func() bool)

	mu       sync.Mutex
	state    FormState
	fields   models.ContactSubmission
	invalid  map[string]string
	notice   string
	lastAck  models.ContactAck
	stopTick func() bool
	resets   int
}

// NewContactForm returns an empty form in the Editing state. A
// non-positive interval means DefaultConfirmationInterval.
func NewContactForm(s Submitter, interval time.Duration) *ContactForm {
	if interval <= 0 {
		interval = DefaultConfirmationInterval
	}
	return &ContactForm{
		submitter: s,
		interval:  interval,
		schedule: func(d time.Duration, f func()) func() bool {
			return time.AfterFunc(d, f).Stop
		},
	}
}

// Set updates one field by its form name. Only allowed while Editing.
func (f *ContactForm) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Editing {
		return ErrFormLocked
	}
	switch field {
	case "name":
		f.fields.Name = value
	case "email":
		f.fields.Email = value
	case "company":
		f.fields.Company = value
	case "phone":
		f.fields.Phone = value
	case "service":
		f.fields.Service = value
	case "message":
		f.fields.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	delete(f.invalid, field)
	return nil
}

// Submit validates the fields and, if they pass, sends them. The send is
// detached from ctx cancellation: once started it runs to completion so a
// submission that reached the backend is never reported as abandoned.
func (f *ContactForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	switch f.state {
	case Submitting:
		f.mu.Unlock()
		return ErrSubmissionInFlight
	case Submitted:
		f.mu.Unlock()
		return ErrFormLocked
	}

	if err := f.fields.Validate(); err != nil {
		verr := toValidationError(err)
		f.invalid = verr.Fields
		f.mu.Unlock()
		return verr
	}

	f.state = Submitting
	f.invalid = nil
	f.notice = ""
	payload := f.fields
	f.mu.Unlock()

	ack, err := f.submitter.SubmitContact(context.WithoutCancel(ctx), payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = Editing
		f.notice = FailureNotice
		return err
	}
	f.state = Submitted
	f.lastAck = ack
	f.stopTick = f.schedule(f.interval, f.reset)
	return nil
}

// reset clears the form after the confirmation interval.
func (f *ContactForm) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Submitted {
		return
	}
	f.state = Editing
	f.fields = models.ContactSubmission{}
	f.invalid = nil
	f.notice = ""
	f.lastAck = models.ContactAck{}
	f.stopTick = nil
	f.resets++
}

// Close stops a pending reset. The submission itself is never undone.
func (f *ContactForm) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopTick != nil {
		f.stopTick()
		f.stopTick = nil
	}
}

// Snapshot is a consistent copy of a form for rendering.
type Snapshot struct {
	State  FormState
	Fields models.ContactSubmission
	Errors map[string]string
	Notice string
	Ack    models.ContactAck
	Resets int
}

// Snapshot returns the form's current contents.
func (f *ContactForm) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	errs := make(map[string]string, len(f.invalid))
	for k, v := range f.invalid {
		errs[k] = v
	}
	return Snapshot{
		State:  f.state,
		Fields: f.fields,
		Errors: errs,
		Notice: f.notice,
		Ack:    f.lastAck,
		Resets: f.resets,
	}
}

// State reports the current lifecycle position.
func (f *ContactForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func toValidationError(err error) *ValidationError {
	out := &ValidationError{Fields: make(map[string]string)}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		for field, ferr := range verrs {
			out.Fields[field] = ferr.Error()
		}
		return out
	}
	out.Fields["form"] = err.Error()
	return out
}
