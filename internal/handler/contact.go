package handler

import (
	"net/http"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/dto"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct{ svc service.ContactService }

func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit POST /v1/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.CreateContactRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListMessages GET /v1/contact/messages
func (h *ContactHandler) ListMessages(c *gin.Context) {
	resp, err := h.svc.ListMessages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MarkRead PATCH /v1/contact/messages/:id/read
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.MarkRead(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// ListSubjects GET /v1/contact-subjects
func (h *ContactHandler) ListSubjects(c *gin.Context) {
	resp, err := h.svc.ListSubjects(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
