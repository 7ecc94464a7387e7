package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/herdbook/internal/service/notes"
)

// NotesHandler handles herd note HTTP endpoints.
type NotesHandler struct {
	svc    *notes.Service
	logger *zap.Logger
}

// NewNotesHandler constructs the HTTP handler adapter.
func NewNotesHandler(svc *notes.Service, logger *zap.Logger) *NotesHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotesHandler{svc: svc, logger: logger}
}

// List returns all notes, newest first.
func (h *NotesHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing notes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load notes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// Create registers a new note.
func (h *NotesHandler) Create(c *gin.Context) {
	var input notes.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid note payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	note, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("failed creating note", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create note"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": note})
}

// Update rewrites an existing note.
func (h *NotesHandler) Update(c *gin.Context) {
	var input notes.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid note payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	note, err := h.svc.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, notes.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed updating note", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update note"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": note})
}

// Delete removes a note.
func (h *NotesHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, notes.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed deleting note", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete note"})
		return
	}
	c.Status(http.StatusNoContent)
}
