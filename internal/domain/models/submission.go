package models

// ContactSubmission is untrusted user input from the contact form. It is
// validated, logged, and discarded; nothing is persisted.
type ContactSubmission struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Service       string `json:"service"`
	PreferredDate string `json:"preferredDate,omitempty"`
	PreferredTime string `json:"preferredTime,omitempty"`
	Message       string `json:"message"`
}
