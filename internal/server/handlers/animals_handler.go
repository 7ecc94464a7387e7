package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/herdbook/internal/domain/models"
	"github.com/mamadbah2/herdbook/internal/service/herd"
)

// AnimalsHandler handles herd record HTTP endpoints.
type AnimalsHandler struct {
	svc    *herd.Service
	logger *zap.Logger
}

// NewAnimalsHandler constructs the HTTP handler adapter.
func NewAnimalsHandler(svc *herd.Service, logger *zap.Logger) *AnimalsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnimalsHandler{svc: svc, logger: logger}
}

// List returns the full herd, optionally filtered to active animals.
func (h *AnimalsHandler) List(c *gin.Context) {
	animals, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing animals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load herd"})
		return
	}

	if c.Query("active") == "true" {
		animals = herd.FilterActive(animals)
	}
	c.JSON(http.StatusOK, gin.H{"data": animals})
}

// Get returns one animal by id.
func (h *AnimalsHandler) Get(c *gin.Context) {
	animal, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to load animal")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": animal})
}

// Create registers a new animal.
func (h *AnimalsHandler) Create(c *gin.Context) {
	var input herd.AnimalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid animal payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	animal, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err, "failed to create animal")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": animal})
}

// Update rewrites the editable fields of an animal.
func (h *AnimalsHandler) Update(c *gin.Context) {
	var input herd.AnimalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid animal payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	animal, err := h.svc.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondError(c, err, "failed to update animal")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": animal})
}

// Delete removes an animal.
func (h *AnimalsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "failed to delete animal")
		return
	}
	c.Status(http.StatusNoContent)
}

type statusChangeRequest struct {
	Status models.AnimalStatus `json:"status" binding:"required"`
	Note   string              `json:"note"`
}

// ChangeStatus moves an animal to a new lifecycle status.
func (h *AnimalsHandler) ChangeStatus(c *gin.Context) {
	var req statusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid status payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	animal, err := h.svc.ChangeStatus(c.Request.Context(), c.Param("id"), req.Status, req.Note)
	if err != nil {
		h.respondError(c, err, "failed to change status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": animal})
}

// Family resolves the one-level lineage of an animal.
func (h *AnimalsHandler) Family(c *gin.Context) {
	tree, err := h.svc.Family(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to resolve family")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tree})
}

// AddBirthRecord logs a calving event against the animal.
func (h *AnimalsHandler) AddBirthRecord(c *gin.Context) {
	var input herd.BirthRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid birth record payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := h.svc.AddBirthRecord(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondError(c, err, "failed to add birth record")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": record})
}

// DeleteBirthRecord removes one birth record from the animal.
func (h *AnimalsHandler) DeleteBirthRecord(c *gin.Context) {
	err := h.svc.DeleteBirthRecord(c.Request.Context(), c.Param("id"), c.Param("recordId"))
	if err != nil {
		h.respondError(c, err, "failed to delete birth record")
		return
	}
	c.Status(http.StatusNoContent)
}

// Stats summarizes the herd for the overview screen.
func (h *AnimalsHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("failed computing herd stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats})
}

func (h *AnimalsHandler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, herd.ErrAnimalNotFound), errors.Is(err, herd.ErrBirthRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error(fallback, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
