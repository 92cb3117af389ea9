package models

// InteractionType classifies a logged touchpoint with a contact.
type InteractionType string

const (
	InteractionEmail   InteractionType = "EMAIL"
	InteractionCall    InteractionType = "CALL"
	InteractionMeeting InteractionType = "MEETING"
	InteractionOther   InteractionType = "OTHER"
)

// Interaction is a logged touchpoint. Interactions always belong to a
// contact; creation is posted under the contact's sub-resource path.
type Interaction struct {
	ID        int64           `json:"id"`
	Subject   string          `json:"subject,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	Date      string          `json:"date"`
	Type      InteractionType `json:"type"`
	ContactID int64           `json:"contact_id"`
	Contact   *ContactRef     `json:"contact,omitempty"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

type CreateInteractionRequest struct {
	Subject string          `json:"subject,omitempty"`
	Notes   string          `json:"notes,omitempty"`
	Date    string          `json:"date" validate:"required"`
	Type    InteractionType `json:"type" validate:"required,oneof=EMAIL CALL MEETING OTHER"`
}

type UpdateInteractionRequest struct {
	Subject string          `json:"subject,omitempty"`
	Notes   string          `json:"notes,omitempty"`
	Date    string          `json:"date,omitempty"`
	Type    InteractionType `json:"type,omitempty" validate:"omitempty,oneof=EMAIL CALL MEETING OTHER"`
}
