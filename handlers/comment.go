package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	commentSvc "onibook/services/comment"
	"onibook/utils"
)

// CommentHandler serves the public review ledger.
type CommentHandler struct {
	Svc commentSvc.Service
}

// NewCommentHandler creates a new CommentHandler instance.
func NewCommentHandler(svc commentSvc.Service) *CommentHandler {
	return &CommentHandler{Svc: svc}
}

// ListHandler returns all comments, newest first.
func (h *CommentHandler) ListHandler(c *gin.Context) {
	comments, err := h.Svc.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list comments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, comments)
}

// CreateHandler appends one comment to the ledger.
func (h *CommentHandler) CreateHandler(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Message string `json:"message"`
		Rating  int    `json:"rating"`
		Image   string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), req.Name, req.Message, req.Rating, req.Image)
	if err != nil {
		var validationErr commentSvc.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		utils.GetLogger().Error("failed to create comment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, created)
}
