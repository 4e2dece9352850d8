package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ServiceInterests are the labels offered by the contact form's
// "Service Interest" select.
var ServiceInterests = []string{
	"Roll-Off Container Services",
	"Commercial Waste Collection",
	"Residential Collection Services",
	"Strategic Planning Solutions",
	"Route Planning & Optimization",
	"Route Execution & Monitoring",
	"Post Execution Analytics",
	"Custom Enterprise Solution",
}

// ContactSubmission is the payload of POST /contact. Optional fields are
// sent exactly as entered, empty strings included.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// Validate implements validation.Validatable. Errors are keyed by the JSON
// field name.
func (c ContactSubmission) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required.Error("Name is required")),
		validation.Field(&c.Email, validation.Required.Error("Email is required")),
		validation.Field(&c.Service, validation.In(interestValues()...).Error("Please choose a listed service")),
		validation.Field(&c.Message, validation.Required.Error("Message is required")),
	)
}

func interestValues() []interface{} {
	out := make([]interface{}, len(ServiceInterests))
	for i, s := range ServiceInterests {
		out[i] = s
	}
	return out
}

// ContactAck is the backend's reply to a submission.
type ContactAck struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// ContactRecord is one row of the administrative /contact-submissions read.
// CreatedAt is kept as sent; see services.ParseTimestamp.
type ContactRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
	Status    string `json:"status"`
}
