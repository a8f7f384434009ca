package handler

import (
	"net/http"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/apierror"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/dto"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/middleware"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/service"

	"github.com/gin-gonic/gin"
)

type PublicationsHandler struct{ svc service.PublicationService }

func NewPublicationsHandler(svc service.PublicationService) *PublicationsHandler {
	return &PublicationsHandler{svc: svc}
}

// List GET /v1/publications
func (h *PublicationsHandler) List(c *gin.Context) {
	var filter dto.PublicationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("parámetros de paginación inválidos"))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /v1/publications/:id — accepts a numeric id or a slug, and
// records one visit per read.
func (h *PublicationsHandler) Get(c *gin.Context) {
	visit := service.VisitInfo{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	resp, err := h.svc.Get(c.Request.Context(), c.Param("id"), visit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create POST /v1/publications
func (h *PublicationsHandler) Create(c *gin.Context) {
	var req dto.CreatePublicationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update PUT /v1/publications/:id
func (h *PublicationsHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	// Payload validation runs before the service's existence and ownership
	// checks, so an invalid body against a missing or unowned id answers 422.
	var req dto.UpdatePublicationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /v1/publications/:id
func (h *PublicationsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Delete(c.Request.Context(), id, middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
