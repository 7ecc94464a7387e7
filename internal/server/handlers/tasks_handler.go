package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/herdbook/internal/service/tasks"
)

// TasksHandler handles herd task HTTP endpoints.
type TasksHandler struct {
	svc    *tasks.Service
	logger *zap.Logger
}

// NewTasksHandler constructs the HTTP handler adapter.
func NewTasksHandler(svc *tasks.Service, logger *zap.Logger) *TasksHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TasksHandler{svc: svc, logger: logger}
}

// List returns tasks, filterable with ?filter=pending|completed.
func (h *TasksHandler) List(c *gin.Context) {
	filter := tasks.Filter(c.DefaultQuery("filter", string(tasks.FilterAll)))
	items, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed listing tasks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tasks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// Create registers a new pending task.
func (h *TasksHandler) Create(c *gin.Context) {
	var input tasks.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid task payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("failed creating task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": task})
}

// Toggle flips a task's completion flag.
func (h *TasksHandler) Toggle(c *gin.Context) {
	task, err := h.svc.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, tasks.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed toggling task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": task})
}

// Delete removes a task.
func (h *TasksHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, tasks.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed deleting task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task"})
		return
	}
	c.Status(http.StatusNoContent)
}
