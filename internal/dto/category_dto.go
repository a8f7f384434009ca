package dto

import "github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"

// ── Request DTOs ─────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name  string `json:"nombre" validate:"required,min=2,max=100"`
	Slug  string `json:"slug"   validate:"omitempty,max=100"`
	Icon  string `json:"icono"  validate:"max=32"`
	Color string `json:"color"  validate:"omitempty,hexcolor"`
}

type UpdateCategoryRequest struct {
	Name  *string `json:"nombre" validate:"omitempty,min=2,max=100"`
	Slug  *string `json:"slug"   validate:"omitempty,max=100"`
	Icon  *string `json:"icono"  validate:"omitempty,max=32"`
	Color *string `json:"color"  validate:"omitempty,hexcolor"`
}

// ── Response DTOs ────────────────────────────────────────────────────────────

type CategoryResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Slug   string `json:"slug"`
	Icono  string `json:"icono"`
	Color  string `json:"color"`
}

func MapCategory(c *model.Category) CategoryResponse {
	return CategoryResponse{
		ID:     c.ID,
		Nombre: c.Name,
		Slug:   c.Slug,
		Icono:  c.Icon,
		Color:  c.Color,
	}
}
