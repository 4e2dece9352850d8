package page

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sessions keeps one ContactForm per visitor. Forms idle for longer than
// the TTL are closed and dropped on the next lookup.
type Sessions struct {
	newForm func() *ContactForm
	ttl     time.Duration
	now     func() time.Time

	mu    sync.Mutex
	forms map[string]*session
}

type session struct {
	form     *ContactForm
	lastSeen time.Time
}

// NewSessions returns an empty registry. newForm builds the form for a
// visitor seen for the first time.
func NewSessions(ttl time.Duration, newForm func() *ContactForm) *Sessions {
	return &Sessions{
		newForm: newForm,
		ttl:     ttl,
		now:     time.Now,
		forms:   make(map[string]*session),
	}
}

// Form returns the visitor's form and its session id. An empty or unknown
// id starts a new session.
func (s *Sessions) Form(id string) (*ContactForm, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)

	if sess, ok := s.forms[id]; ok && id != "" {
		sess.lastSeen = now
		return sess.form, id
	}

	id = uuid.NewString()
	s.forms[id] = &session{form: s.newForm(), lastSeen: now}
	return s.forms[id].form, id
}

// Len reports the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.forms)
}

// Close closes every form.
func (s *Sessions) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.forms {
		sess.form.Close()
		delete(s.forms, id)
	}
}

func (s *Sessions) sweep(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, sess := range s.forms {
		if now.Sub(sess.lastSeen) > s.ttl && sess.form.State() != Submitting {
			sess.form.Close()
			delete(s.forms, id)
		}
	}
}
