package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"zignexweb/api"
	"zignexweb/metrics"
	"zignexweb/models"
	"zignexweb/page"
	"zignexweb/templates"
)

// FormCookie carries the visitor's form-session id.
const FormCookie = "contact_session"

var formFields = []string{"name", "email", "company", "phone", "service", "message"}

// ContactDeps groups what the contact handlers share.
type ContactDeps struct {
	Source   api.Source
	Sessions *page.Sessions

	// Interval is the confirmation interval, used as the poll delay.
	Interval    time.Duration
	PageTimeout time.Duration
	SessionTTL  time.Duration
}

// visitorForm returns the form bound to the request's session cookie,
// issuing a new cookie when the session is new or has expired.
func visitorForm(e *core.RequestEvent, deps ContactDeps) *page.ContactForm {
	var id string
	if c, err := e.Request.Cookie(FormCookie); err == nil {
		id = c.Value
	}
	form, sessionID := deps.Sessions.Form(id)
	if sessionID != id {
		cookie := &http.Cookie{
			Name:     FormCookie,
			Value:    sessionID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}
		if deps.SessionTTL > 0 {
			cookie.MaxAge = int(deps.SessionTTL / time.Second)
		}
		http.SetCookie(e.Response, cookie)
	}
	return form
}

func formData(form *page.ContactForm, deps ContactDeps) templates.ContactFormData {
	return templates.ContactFormData{Form: form.Snapshot(), PollAfter: deps.Interval}
}

// HandleContact renders the contact page with the visitor's form.
func HandleContact(deps ContactDeps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		batch := contactBatch(deps.Source)
		loader := loadBatch(e, batch, deps.PageTimeout)
		if loader.State() != page.Ready {
			return renderFailed(e, "Contact", batch)
		}

		company, _ := page.Get[models.CompanyInfo](loader, resCompany)
		form := visitorForm(e, deps)
		data := templates.ContactData{Company: company, Form: formData(form, deps)}
		header := GetHeaderData(e.Request)
		return renderPage(e, http.StatusOK, templates.ContactContent(data, header), templates.ContactPage(data, header))
	}
}

// HandleContactForm returns only the form fragment. The confirmation view
// polls it to pick up the automatic reset.
func HandleContactForm(deps ContactDeps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		form := visitorForm(e, deps)
		return templates.ContactFormFragment(formData(form, deps)).Render(e.Request.Context(), e.Response)
	}
}

// HandleContactSubmit copies the posted fields into the visitor's form and
// submits it. The request blocks until the backend answers.
func HandleContactSubmit(deps ContactDeps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		form := visitorForm(e, deps)
		for _, field := range formFields {
			if err := form.Set(field, e.Request.PostForm.Get(field)); err != nil {
				if errors.Is(err, page.ErrFormLocked) {
					break
				}
				log.Printf("contact_submit: set %s: %v", field, err)
			}
		}

		err := form.Submit(e.Request.Context())
		var verr *page.ValidationError
		switch {
		case err == nil:
			metrics.ContactSubmissions.WithLabelValues("accepted").Inc()
			SetToast(e, "success", "Message sent")
		case errors.Is(err, page.ErrSubmissionInFlight):
			metrics.ContactSubmissions.WithLabelValues("duplicate").Inc()
			return ErrorToast(e, http.StatusConflict, "Your message is already being sent.")
		case errors.Is(err, page.ErrFormLocked):
			// Already submitted and not yet reset; show the confirmation.
		case errors.As(err, &verr):
			metrics.ContactSubmissions.WithLabelValues("invalid").Inc()
		default:
			metrics.ContactSubmissions.WithLabelValues("failed").Inc()
			log.Printf("contact_submit: backend rejected submission: %v", err)
			SetToast(e, "error", page.FailureNotice)
		}

		if !isHTMX(e) {
			// Post/redirect/get; the form state lives in the session.
			return e.Redirect(http.StatusSeeOther, "/contact")
		}
		return templates.ContactFormFragment(formData(form, deps)).Render(e.Request.Context(), e.Response)
	}
}
