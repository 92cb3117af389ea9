package models

// ContactType distinguishes paying clients from leads.
type ContactType string

const (
	ContactClient ContactType = "CLIENT"
	ContactLead   ContactType = "LEAD"
)

// Contact is a CRM contact record. IDs and timestamps are server-assigned;
// the client never fabricates them.
type Contact struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone,omitempty"`
	Company   string      `json:"company,omitempty"`
	Position  string      `json:"position,omitempty"`
	Type      ContactType `json:"type"`
	Notes     string      `json:"notes,omitempty"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}

// ContactRef is the embedded short form other entities carry.
type ContactRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateContactRequest is the create payload. Business validation is
// server-side; the client only checks required fields.
type CreateContactRequest struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Phone    string      `json:"phone,omitempty"`
	Company  string      `json:"company,omitempty"`
	Position string      `json:"position,omitempty"`
	Type     ContactType `json:"type" validate:"required,oneof=CLIENT LEAD"`
	Notes    string      `json:"notes,omitempty"`
}

// UpdateContactRequest is a partial patch; zero-valued fields are omitted
// from the wire payload.
type UpdateContactRequest struct {
	Name     string      `json:"name,omitempty"`
	Email    string      `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string      `json:"phone,omitempty"`
	Company  string      `json:"company,omitempty"`
	Position string      `json:"position,omitempty"`
	Type     ContactType `json:"type,omitempty" validate:"omitempty,oneof=CLIENT LEAD"`
	Notes    string      `json:"notes,omitempty"`
}
