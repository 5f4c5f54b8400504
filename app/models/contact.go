package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ContactMessage is one submission of the contact form. Messages are not
// persisted; they are validated, stamped and handed to the configured
// delivery stub.
type ContactMessage struct {
	ID         string    `json:"id"`
	Name       string    `json:"name" validate:"required,min=2,max=150"`
	Email      string    `json:"email" validate:"required,email,max=200"`
	Subject    string    `json:"subject" validate:"required,min=3,max=200"`
	Message    string    `json:"message" validate:"required,min=10,max=5000"`
	ReceivedAt time.Time `json:"received_at"`
}

// NewContactMessage stamps a submission with an id and receive time.
func NewContactMessage(name, email, subject, message string) *ContactMessage {
	return &ContactMessage{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Subject:    subject,
		Message:    message,
		ReceivedAt: time.Now(),
	}
}

func (m *ContactMessage) Validate() error {
	v := validator.New()

	return v.Struct(m)
}
