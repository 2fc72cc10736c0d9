package dto

import "time"

// ContactRequest carries the contact form fields as submitted.
type ContactRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Age               string `json:"age"`
	ContactPreference string `json:"contactPreference"`
	Country           string `json:"country"`
	Message           string `json:"message"`
}

// Fields returns the form as a field-to-value map for the rule table.
func (r *ContactRequest) Fields() map[string]string {
	return map[string]string{
		"name":              r.Name,
		"email":             r.Email,
		"phone":             r.Phone,
		"age":               r.Age,
		"contactPreference": r.ContactPreference,
		"country":           r.Country,
		"message":           r.Message,
	}
}

// ContactAcknowledgment is the success payload for a valid submission. The
// client keeps it on screen until the form is explicitly reset.
type ContactAcknowledgment struct {
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}
