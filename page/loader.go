package page

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// State is a Loader's lifecycle position.
type State int

const (
	Loading State = iota
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ErrNotFailed is returned by Retry on a loader that has not failed.
var ErrNotFailed = errors.New("page: retry is only allowed after a failed load")

// Resource is one named fetch in a page-load batch.
type Resource struct {
	Name  string
	Fetch func(ctx context.Context) (any, error)
}

// ResourceError names the resource whose fetch failed the batch.
type ResourceError struct {
	Resource string
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// Loader runs a page-load batch. It is safe for concurrent use.
type Loader struct {
	// Timeout bounds a whole batch when positive.
	Timeout time.Duration

	resources []Resource

	mu       sync.Mutex
	state    State
	running  bool
	data     map[string]any
	err      error
	attempts int
}

// NewLoader returns a Loader in the Loading state.
func NewLoader(resources ...Resource) *Loader {
	return &Loader{resources: resources}
}

// Load issues every fetch concurrently and settles the loader. It is a
// no-op on a loader that is already settled or already loading.
func (l *Loader) Load(ctx context.Context) State {
	l.mu.Lock()
	if l.state != Loading || l.running {
		s := l.state
		l.mu.Unlock()
		return s
	}
	l.running = true
	l.attempts++
	l.mu.Unlock()

	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}

	results := make([]any, len(l.resources))
	g, gctx := errgroup.WithContext(ctx)
	for i, r := range l.resources {
		g.Go(func() error {
			v, err := r.Fetch(gctx)
			if err != nil {
				err = &ResourceError{Resource: r.Name, Err: err}
				l.fail(err)
				return err
			}
			results[i] = v
			return nil
		})
	}
	err := g.Wait()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.running = false
	if err != nil {
		l.state = Failed
		if l.err == nil {
			l.err = err
		}
		return l.state
	}

	data := make(map[string]any, len(l.resources))
	for i, r := range l.resources {
		data[r.Name] = results[i]
	}
	l.data = data
	l.state = Ready
	return l.state
}

// fail moves the loader to Failed as soon as the first fetch fails, while
// the remaining fetches are still being cancelled.
func (l *Loader) fail(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == Loading && l.err == nil {
		l.state = Failed
		l.err = err
	}
}

// Retry restarts a failed loader from Loading and reissues every resource,
// not only the ones that failed.
func (l *Loader) Retry(ctx context.Context) (State, error) {
	l.mu.Lock()
	if l.state != Failed || l.running {
		s := l.state
		l.mu.Unlock()
		return s, ErrNotFailed
	}
	l.state = Loading
	l.err = nil
	l.data = nil
	l.mu.Unlock()

	return l.Load(ctx), nil
}

// State reports the current lifecycle position.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Err returns the failure that settled the loader, if any.
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Attempts counts how many batches have been issued.
func (l *Loader) Attempts() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.attempts
}

// Value returns the named result. Nothing is exposed unless the loader is
// Ready.
func (l *Loader) Value(name string) (any, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != Ready {
		return nil, false
	}
	v, ok := l.data[name]
	return v, ok
}

// Get is the typed form of Loader.Value.
func Get[T any](l *Loader, name string) (T, bool) {
	var zero T
	v, ok := l.Value(name)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
