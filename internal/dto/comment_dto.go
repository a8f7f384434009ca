package dto

import (
	"time"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"
)

// ── Request DTOs ─────────────────────────────────────────────────────────────

type CreateCommentRequest struct {
	AuthorName string `json:"autor"     validate:"required,min=2,max=100"`
	Content    string `json:"contenido" validate:"required,min=2,max=2000"`
}

type AddReactionRequest struct {
	Emoji string `json:"emoji" validate:"required,max=16"`
}

// ── Response DTOs ────────────────────────────────────────────────────────────

type CommentResponse struct {
	ID            uint      `json:"id"`
	PublicationID uint      `json:"id_publicacion"`
	Autor         string    `json:"autor"`
	Contenido     string    `json:"contenido"`
	Aprobado      bool      `json:"aprobado"`
	FechaCreacion time.Time `json:"fecha_creacion"`
	Reacciones    []string  `json:"reacciones"`
}

func MapComment(c *model.Comment) CommentResponse {
	resp := CommentResponse{
		ID:            c.ID,
		PublicationID: c.PublicationID,
		Autor:         c.AuthorName,
		Contenido:     c.Content,
		Aprobado:      c.IsApproved,
		FechaCreacion: c.CreatedAt,
		Reacciones:    make([]string, 0, len(c.Reactions)),
	}
	for _, r := range c.Reactions {
		resp.Reacciones = append(resp.Reacciones, r.Emoji)
	}
	return resp
}
