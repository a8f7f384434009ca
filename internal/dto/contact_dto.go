package dto

import (
	"time"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"
)

// ── Request DTOs ─────────────────────────────────────────────────────────────

type CreateContactRequest struct {
	Name    string `json:"nombre"  validate:"required,min=2,max=100"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"asunto"  validate:"required,min=2,max=150"`
	Message string `json:"mensaje" validate:"required,min=10,max=5000"`
}

// ── Response DTOs ────────────────────────────────────────────────────────────

type ContactMessageResponse struct {
	ID            uint      `json:"id"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	Asunto        string    `json:"asunto"`
	Mensaje       string    `json:"mensaje"`
	Leido         bool      `json:"leido"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

type ContactSubjectResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}

func MapContactMessage(m *model.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:            m.ID,
		Nombre:        m.Name,
		Email:         m.Email,
		Asunto:        m.Subject,
		Mensaje:       m.Message,
		Leido:         m.IsRead,
		FechaCreacion: m.CreatedAt,
	}
}
