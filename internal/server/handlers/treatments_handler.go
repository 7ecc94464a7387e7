package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/herdbook/internal/domain/models"
	"github.com/mamadbah2/herdbook/internal/service/treatment"
)

// TreatmentsHandler handles treatment schedule and record HTTP endpoints.
type TreatmentsHandler struct {
	svc    *treatment.Service
	logger *zap.Logger
}

// NewTreatmentsHandler constructs the HTTP handler adapter.
func NewTreatmentsHandler(svc *treatment.Service, logger *zap.Logger) *TreatmentsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TreatmentsHandler{svc: svc, logger: logger}
}

// scheduleView decorates a schedule with its classification for the list
// screen.
type scheduleView struct {
	Schedule models.TreatmentSchedule `json:"schedule"`
	Status   treatment.Status         `json:"status"`
}

// ListSchedules returns every schedule with its status relative to today.
func (h *TreatmentsHandler) ListSchedules(c *gin.Context) {
	schedules, err := h.svc.ListSchedules(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing schedules", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schedules"})
		return
	}

	now := time.Now()
	views := make([]scheduleView, 0, len(schedules))
	for _, s := range schedules {
		views = append(views, scheduleView{Schedule: s, Status: treatment.Classify(s, now)})
	}
	c.JSON(http.StatusOK, gin.H{"data": views})
}

// CreateSchedule plans a new treatment.
func (h *TreatmentsHandler) CreateSchedule(c *gin.Context) {
	var input treatment.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid schedule payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	schedule, err := h.svc.CreateSchedule(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, treatment.ErrCustomNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed creating schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create schedule"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": schedule})
}

// DeleteSchedule removes a schedule; its records are kept.
func (h *TreatmentsHandler) DeleteSchedule(c *gin.Context) {
	if err := h.svc.DeleteSchedule(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, treatment.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed deleting schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete schedule"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Record logs an administered treatment for one or more animals.
func (h *TreatmentsHandler) Record(c *gin.Context) {
	var input treatment.RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid record payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, schedule, err := h.svc.Record(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, treatment.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed recording treatment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record treatment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"records":  created,
			"schedule": schedule,
		},
	})
}

// History returns the records of one schedule.
func (h *TreatmentsHandler) History(c *gin.Context) {
	records, err := h.svc.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("failed loading history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": records})
}
