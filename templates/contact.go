package templates

import (
	"fmt"
	"time"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"zignexweb/models"
	"zignexweb/page"
)

const (
	formID       = "contact-form"
	formEndpoint = "/contact"
	formFragment = "/contact/form"

	// SubmittedMessage confirms a successful submission.
	SubmittedMessage = "Thank you for contacting us. We'll respond within 24 hours."
)

// ContactFormData is one visitor's form as it should be drawn.
type ContactFormData struct {
	Form page.Snapshot

	// PollAfter is how long the confirmation waits before asking for the
	// form again, normally the confirmation interval.
	PollAfter time.Duration
}

// ContactData is the contact page: company details plus the visitor's form.
type ContactData struct {
	Company models.CompanyInfo
	Form    ContactFormData
}

func contactView(data ContactData, header HeaderData) g.Node {
	return g.Group{
		h.Section(
			h.Class("page-hero"),
			h.H1(g.Text("Contact "+data.Company.Name)),
			h.P(g.Text(data.Company.Tagline)),
		),
		h.Div(
			h.Class("contact-grid"),
			h.Div(
				h.H2(g.Text("Send us a message")),
				contactFormView(data.Form),
			),
			h.Div(
				h.Class("contact-info"),
				h.H2(g.Text("Get in touch")),
				contactLines(header),
				h.H3(g.Text("USA Headquarters")),
				h.P(g.Text(data.Company.Headquarters)),
				h.P(g.Text("Primary operations & client services")),
				h.H3(g.Text("India Development Center")),
				h.P(g.Text("ZignEx India Private Limited - Indore, India")),
				h.P(g.Text("Software development & technical support")),
			),
		),
		h.Section(
			h.Class("faq"),
			h.H2(g.Text("Frequently Asked Questions")),
			faq("How quickly can we get started?", "Most implementations begin within 2-4 weeks of contract signing."),
			faq("Do you offer custom solutions?", "Yes, we specialize in tailored logistics solutions for your specific needs."),
			faq("What's the typical ROI timeline?", "Most clients see measurable cost savings within 3-6 months."),
		),
	}
}

func faq(q, a string) g.Node {
	return h.Div(h.Class("faq-item"), h.H3(g.Text(q)), h.P(g.Text(a)))
}

// contactFormView draws the form for its current state. Every variant
// carries the same id so HTMX can swap one for another.
func contactFormView(data ContactFormData) g.Node {
	snap := data.Form
	switch snap.State {
	case page.Submitted:
		// The confirmation replaces the form and asks for it again once
		// the confirmation interval has passed.
		return h.Div(
			h.ID(formID),
			h.Class("form-confirmation"),
			g.Attr("hx-get", formFragment),
			g.Attr("hx-trigger", fmt.Sprintf("load delay:%dms", pollMillis(data.PollAfter))),
			g.Attr("hx-swap", "outerHTML"),
			h.H3(g.Text("Message Sent!")),
			h.P(g.Text(SubmittedMessage)),
		)
	}

	submitting := snap.State == page.Submitting
	buttonLabel := "Send Message"
	if submitting {
		buttonLabel = "Sending..."
	}

	return g.El("form",
		h.ID(formID),
		h.Class("contact-form"),
		h.Method("post"),
		h.Action(formEndpoint),
		g.Attr("hx-post", formEndpoint),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-disabled-elt", "find button"),
		g.If(submitting, g.Group{
			g.Attr("hx-get", formFragment),
			g.Attr("hx-trigger", "every 1s"),
		}),
		g.If(snap.Notice != "", h.Div(h.Class("form-notice"), g.Attr("role", "alert"), g.Text(snap.Notice))),
		textField("name", "Full Name *", "text", snap.Fields.Name, snap.Errors, true),
		textField("email", "Email Address *", "email", snap.Fields.Email, snap.Errors, true),
		textField("company", "Company Name", "text", snap.Fields.Company, snap.Errors, false),
		textField("phone", "Phone Number", "tel", snap.Fields.Phone, snap.Errors, false),
		serviceField(snap.Fields.Service, snap.Errors),
		h.Div(
			h.Class("field"),
			g.El("label", g.Attr("for", "field-message"), g.Text("Message *")),
			h.Textarea(
				h.ID("field-message"),
				h.Name("message"),
				g.Attr("rows", "5"),
				g.Attr("required"),
				h.Placeholder("Tell us about your logistics needs..."),
				g.Text(snap.Fields.Message),
			),
			fieldError(snap.Errors["message"]),
		),
		h.Button(
			h.Type("submit"),
			h.Class("btn btn-primary"),
			g.If(submitting, g.Attr("disabled")),
			g.Text(buttonLabel),
		),
	)
}

func textField(name, label, kind, value string, errs map[string]string, required bool) g.Node {
	id := "field-" + name
	return h.Div(
		h.Class(classes("field", invalidClass(errs[name]))),
		g.El("label", g.Attr("for", id), g.Text(label)),
		h.Input(
			h.ID(id),
			h.Name(name),
			h.Type(kind),
			h.Value(value),
			g.If(required, g.Attr("required")),
		),
		fieldError(errs[name]),
	)
}

func serviceField(selected string, errs map[string]string) g.Node {
	return h.Div(
		h.Class(classes("field", invalidClass(errs["service"]))),
		g.El("label", g.Attr("for", "field-service"), g.Text("Service Interest")),
		h.Select(
			h.ID("field-service"),
			h.Name("service"),
			h.Option(h.Value(""), g.Text("Select a service...")),
			g.Map(models.ServiceInterests, func(s string) g.Node {
				return h.Option(h.Value(s), g.If(s == selected, g.Attr("selected")), g.Text(s))
			}),
		),
		fieldError(errs["service"]),
	)
}

func fieldError(msg string) g.Node {
	if msg == "" {
		return nil
	}
	return h.P(h.Class("field-error"), g.Text(msg))
}

func invalidClass(msg string) string {
	if msg != "" {
		return "invalid"
	}
	return ""
}

func pollMillis(d time.Duration) int64 {
	if d <= 0 {
		d = page.DefaultConfirmationInterval
	}
	return d.Milliseconds()
}

// ContactFormFragment renders only the form, for HTMX swaps.
func ContactFormFragment(data ContactFormData) templ.Component {
	return component(contactFormView(data))
}

// ContactContent is the fragment returned to HTMX page requests.
func ContactContent(data ContactData, header HeaderData) templ.Component {
	return component(contactView(data, header))
}

// ContactPage is the full-page variant.
func ContactPage(data ContactData, header HeaderData) templ.Component {
	return component(layout("Contact", header, contactView(data, header)))
}
