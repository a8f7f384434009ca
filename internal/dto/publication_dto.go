package dto

import (
	"time"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"
)

// ── Filter / List ────────────────────────────────────────────────────────────

// PublicationFilter is bound from the query string of GET /v1/publications.
type PublicationFilter struct {
	Status   string `form:"status"`
	TagID    uint   `form:"tagId"`
	Search   string `form:"search"`
	Category string `form:"category"` // category slug; unknown slug yields an empty page
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=10" validate:"min=1,max=100"`
}

// ── Request DTOs ─────────────────────────────────────────────────────────────

type CreatePublicationRequest struct {
	Title          string  `json:"title"          validate:"required,min=3,max=200"`
	Slug           string  `json:"slug"           validate:"omitempty,max=200"`
	Description    string  `json:"description"`
	Content        string  `json:"content"        validate:"required,min=10"`
	MainImage      *string `json:"mainImage"      validate:"omitempty,max=500"`
	VideoThumbnail *string `json:"videoThumbnail" validate:"omitempty,max=500"`
	// Status is coerced via NormalizeStatus before persistence, never rejected.
	Status         string  `json:"status"`
	CategoryID     *uint   `json:"categoryId"`
	TagIDs         []uint  `json:"tagIds"`
}

// UpdatePublicationRequest uses pointers for partial updates: nil fields are
// left untouched. TagIDs nil means "do not touch the tag set"; a non-nil
// (even empty) slice replaces the whole set. CategoryID is always applied:
// nil or 0 clears the category relation.
type UpdatePublicationRequest struct {
	Title          *string `json:"title"          validate:"omitempty,min=3,max=200"`
	Slug           *string `json:"slug"           validate:"omitempty,max=200"`
	Description    *string `json:"description"`
	Content        *string `json:"content"        validate:"omitempty,min=10"`
	MainImage      *string `json:"mainImage"      validate:"omitempty,max=500"`
	VideoThumbnail *string `json:"videoThumbnail" validate:"omitempty,max=500"`
	Status         *string `json:"status"`
	CategoryID     *uint   `json:"categoryId"`
	TagIDs         *[]uint `json:"tagIds"`
}

// NormalizeStatus reproduces the legacy coercion: anything that is not
// exactly "published" becomes "draft". Run BEFORE validation so that free-form
// client values never surface as validation errors.
func NormalizeStatus(status string) string {
	if status == model.StatusPublished {
		return model.StatusPublished
	}
	return model.StatusDraft
}

// ── Response DTOs (the public Spanish shape) ─────────────────────────────────

type TagName struct {
	Nombre string `json:"nombre"`
}

type CategorySummary struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Icono  string `json:"icono"`
	Color  string `json:"color"`
}

type AuthorSummary struct {
	ID             uint   `json:"id"`
	NombreCompleto string `json:"nombre_completo"`
	Usuario        string `json:"usuario"`
}

type PublicationResponse struct {
	ID              uint             `json:"id"`
	Titulo          string           `json:"titulo"`
	Slug            string           `json:"slug"`
	Descripcion     string           `json:"descripcion"`
	Contenido       string           `json:"contenido"`
	ImagenPrincipal string           `json:"imagen_principal"`
	VideoThumbnail  string           `json:"videoThumbnail"`
	Estado          string           `json:"estado"`
	FechaCreacion   time.Time        `json:"fecha_creacion"`
	Etiquetas       []TagName        `json:"etiquetas"`
	Categoria       *CategorySummary `json:"categoria"`
	IDCategoria     *uint            `json:"id_categoria"`

	// Annotations — counts on listings, full detail on single reads.
	TotalComentarios int64              `json:"total_comentarios"`
	TotalVisitas     int64              `json:"total_visitas"`
	Autor            *AuthorSummary     `json:"autor,omitempty"`
	Comentarios      []CommentResponse  `json:"comentarios,omitempty"`
}

type DeleteConfirmation struct {
	Message string `json:"message"`
}

// MapPublication translates internal storage names to the public-facing
// shape. Pure function — all business decisions happen before this point.
func MapPublication(p *model.Publication, comentarios, visitas int64) PublicationResponse {
	resp := PublicationResponse{
		ID:              p.ID,
		Titulo:          p.Title,
		Slug:            p.Slug,
		Descripcion:     p.Description,
		Contenido:       p.Content,
		ImagenPrincipal: derefOrEmpty(p.MainImage),
		VideoThumbnail:  derefOrEmpty(p.VideoThumbnail),
		Estado:          p.Status,
		FechaCreacion:   p.CreatedAt,
		Etiquetas:       make([]TagName, 0, len(p.Tags)),
		TotalComentarios: comentarios,
		TotalVisitas:     visitas,
	}
	for _, t := range p.Tags {
		resp.Etiquetas = append(resp.Etiquetas, TagName{Nombre: t.Name})
	}
	if p.Category != nil {
		resp.Categoria = &CategorySummary{
			ID:     p.Category.ID,
			Nombre: p.Category.Name,
			Icono:  p.Category.Icon,
			Color:  p.Category.Color,
		}
		id := p.Category.ID
		resp.IDCategoria = &id
	}
	if p.Author != nil {
		resp.Autor = &AuthorSummary{
			ID:             p.Author.ID,
			NombreCompleto: p.Author.FullName,
			Usuario:        p.Author.Username,
		}
	}
	for i := range p.Comments {
		resp.Comentarios = append(resp.Comentarios, MapComment(&p.Comments[i]))
	}
	return resp
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
