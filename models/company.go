// Package models holds the content records served by the backend API and
// the contact-form payloads posted back to it.
package models

// CompanyInfo is the company profile shown on Home, About and Contact.
type CompanyInfo struct {
	Name         string   `json:"name"`
	Tagline      string   `json:"tagline"`
	Motto        string   `json:"motto"`
	Headquarters string   `json:"headquarters"`
	Description  string   `json:"description"`
	Vision       string   `json:"vision"`
	Technologies []string `json:"technologies"`
}

// Leader is a single leadership profile.
type Leader struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Bio         string `json:"bio"`
	Credentials string `json:"credentials"`
}

// Leadership is the /leadership payload. Only the CEO is published today.
type Leadership struct {
	CEO Leader `json:"ceo"`
}

// Testimonial is a customer quote. Rating is expected in 1..5.
type Testimonial struct {
	ID      int    `json:"id"`
	Company string `json:"company"`
	Quote   string `json:"quote"`
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
}

// Stars clamps Rating into the displayable 0..5 range.
func (t Testimonial) Stars() int {
	switch {
	case t.Rating < 0:
		return 0
	case t.Rating > 5:
		return 5
	}
	return t.Rating
}

// Stat is a headline figure. Value is a display string ("10,000+", "25%")
// and is never interpreted as a number.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
