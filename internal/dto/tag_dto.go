package dto

import "github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"

type CreateTagRequest struct {
	Name string `json:"nombre" validate:"required,min=2,max=50"`
}

type TagResponse struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}

func MapTag(t *model.Tag) TagResponse {
	return TagResponse{ID: t.ID, Nombre: t.Name}
}
