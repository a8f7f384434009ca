package handler

import (
	"net/http"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/dto"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentsHandler struct{ svc service.CommentService }

func NewCommentsHandler(svc service.CommentService) *CommentsHandler {
	return &CommentsHandler{svc: svc}
}

// Create POST /v1/publications/:id/comments
func (h *CommentsHandler) Create(c *gin.Context) {
	pubID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateCommentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), pubID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List GET /v1/comments?pending=true
func (h *CommentsHandler) List(c *gin.Context) {
	pendingOnly := c.Query("pending") == "true"
	resp, err := h.svc.List(c.Request.Context(), pendingOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Approve PATCH /v1/comments/:id/approve
func (h *CommentsHandler) Approve(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Approve(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete DELETE /v1/comments/:id
func (h *CommentsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// AddReaction POST /v1/comments/:id/reactions
func (h *CommentsHandler) AddReaction(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AddReactionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddReaction(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
