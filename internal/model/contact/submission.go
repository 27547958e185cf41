package contact

import "time"

// Submission is one contact form entry as typed by the visitor.
type Submission struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Subject    string            `json:"subject,omitempty"`
	Message    string            `json:"message"`
	Company    string            `json:"company,omitempty"`
	Phone      string            `json:"phone,omitempty"`
	Budget     string            `json:"budget,omitempty"`
	Timeline   string            `json:"timeline,omitempty"`
	Extra      map[string]string `json:"extra,omitempty"`
	UserID     string            `json:"userId,omitempty"`
	ReceivedAt time.Time         `json:"receivedAt"`
}

// FromFields maps raw form fields onto a Submission. Unknown fields are kept
// in Extra so nothing the visitor typed is dropped.
func FromFields(fields map[string]string) Submission {
	var s Submission
	for key, value := range fields {
		switch key {
		case "name":
			s.Name = value
		case "email":
			s.Email = value
		case "subject":
			s.Subject = value
		case "message":
			s.Message = value
		case "company":
			s.Company = value
		case "phone":
			s.Phone = value
		case "budget":
			s.Budget = value
		case "timeline":
			s.Timeline = value
		default:
			if s.Extra == nil {
				s.Extra = make(map[string]string)
			}
			s.Extra[key] = value
		}
	}
	return s
}

// Result is what the form gets back. Failures are reported here rather than
// surfaced as errors.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
