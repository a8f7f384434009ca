package dto

import (
	"testing"
	"time"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, model.StatusPublished, NormalizeStatus("published"))
	assert.Equal(t, model.StatusDraft, NormalizeStatus("draft"))
	assert.Equal(t, model.StatusDraft, NormalizeStatus(""))
	assert.Equal(t, model.StatusDraft, NormalizeStatus("Published"))
	assert.Equal(t, model.StatusDraft, NormalizeStatus("archivado"))
}

func TestMapPublicationHandlesNilRelations(t *testing.T) {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	p := &model.Publication{
		ID:        3,
		Title:     "Sin relaciones",
		Slug:      "sin-relaciones",
		Content:   "Contenido",
		Status:    model.StatusDraft,
		CreatedAt: created,
	}

	resp := MapPublication(p, 0, 0)
	assert.Equal(t, "", resp.ImagenPrincipal, "nil image maps to empty string")
	assert.Equal(t, "", resp.VideoThumbnail)
	assert.Nil(t, resp.Categoria)
	assert.Nil(t, resp.IDCategoria)
	assert.Nil(t, resp.Autor)
	assert.NotNil(t, resp.Etiquetas, "etiquetas serializes as [], never null")
	assert.Empty(t, resp.Etiquetas)
	assert.Equal(t, created, resp.FechaCreacion)
}

func TestMapPublicationFullShape(t *testing.T) {
	img := "/uploads/feria.jpg"
	catID := uint(2)
	p := &model.Publication{
		ID:          7,
		Title:       "Feria de Ciencias",
		Slug:        "feria-de-ciencias",
		Description: "Resumen",
		Content:     "Contenido completo",
		MainImage:   &img,
		Status:      model.StatusPublished,
		CategoryID:  &catID,
		Category:    &model.Category{ID: catID, Name: "Eventos", Icon: "calendar", Color: "#FFAA00"},
		Author:      &model.User{ID: 4, FullName: "Ana Torres", Username: "atorres"},
		Tags:        []model.Tag{{ID: 1, Name: "ciencia"}, {ID: 2, Name: "feria"}},
		Comments: []model.Comment{
			{ID: 10, PublicationID: 7, AuthorName: "María", Content: "¡Genial!", IsApproved: true},
		},
	}

	resp := MapPublication(p, 1, 5)
	assert.Equal(t, "Feria de Ciencias", resp.Titulo)
	assert.Equal(t, img, resp.ImagenPrincipal)
	assert.Equal(t, []TagName{{Nombre: "ciencia"}, {Nombre: "feria"}}, resp.Etiquetas)
	assert.Equal(t, catID, *resp.IDCategoria)
	assert.Equal(t, "Eventos", resp.Categoria.Nombre)
	assert.Equal(t, "Ana Torres", resp.Autor.NombreCompleto)
	assert.Equal(t, int64(1), resp.TotalComentarios)
	assert.Equal(t, int64(5), resp.TotalVisitas)
	assert.Len(t, resp.Comentarios, 1)
	assert.Equal(t, "María", resp.Comentarios[0].Autor)
}
