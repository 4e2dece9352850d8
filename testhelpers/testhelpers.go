// Package testhelpers provides utilities for testing the site's handlers.
package testhelpers

import (
	"html"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// The site keeps no records of its own, so only the bootstrap is needed.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: t.TempDir(),
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	return app
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML not to contain %q\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLContainsText checks that body contains each text as it appears
// once HTML-escaped by the renderer.
func AssertHTMLContainsText(t *testing.T, body string, texts ...string) {
	t.Helper()

	for _, text := range texts {
		AssertHTMLContains(t, body, html.EscapeString(text))
	}
}

// AssertHTMLNotContainsText is the negated form of AssertHTMLContainsText.
func AssertHTMLNotContainsText(t *testing.T, body string, texts ...string) {
	t.Helper()

	for _, text := range texts {
		AssertHTMLNotContains(t, body, html.EscapeString(text))
	}
}

// AssertRedirect checks the Location header of a redirect response.
func AssertRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected redirect to %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
