package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
)

const flashCookie = "flash_toast"

type toast struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// SetToast asks the page to show a toast. HTMX requests get it through the
// HX-Trigger header, merged with any events already set; a short-lived
// flash cookie covers full-page redirects, where HX-Trigger is lost.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	t := toast{Message: message, Type: toastType}

	if err := addTrigger(e.Response.Header(), "showToast", t); err != nil {
		log.Printf("toast: %v", err)
		return
	}

	if cookieVal, err := json.Marshal(t); err == nil {
		http.SetCookie(e.Response, &http.Cookie{
			Name:     flashCookie,
			Value:    url.QueryEscape(string(cookieVal)),
			Path:     "/",
			MaxAge:   10,
			HttpOnly: false, // read by static/toast.js
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// addTrigger sets event in the HX-Trigger JSON object. A header that is not
// a JSON object is replaced.
func addTrigger(h http.Header, event string, payload any) error {
	triggers := map[string]any{}
	if existing := h.Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &triggers); err != nil {
			log.Printf("toast: existing HX-Trigger is not a JSON object, overwriting: %v", err)
			triggers = map[string]any{}
		}
	}
	triggers[event] = payload

	data, err := json.Marshal(triggers)
	if err != nil {
		return err
	}
	h.Set("HX-Trigger", string(data))
	return nil
}

// ErrorToast reports an error as a toast only. HX-Reswap: none keeps HTMX
// from swapping the plain-text body into the page.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, "error", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}
