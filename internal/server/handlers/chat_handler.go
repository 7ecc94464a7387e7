package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/herdbook/internal/service/chat"
)

// ChatHandler handles chat room and message HTTP endpoints, including the
// server-push stream of new messages.
type ChatHandler struct {
	svc    *chat.Service
	logger *zap.Logger
}

// NewChatHandler constructs the HTTP handler adapter.
func NewChatHandler(svc *chat.Service, logger *zap.Logger) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{svc: svc, logger: logger}
}

type openRoomRequest struct {
	TaskID     string `json:"taskId" binding:"required"`
	TaskTitle  string `json:"taskTitle" binding:"required"`
	AnimalName string `json:"animalName"`
}

// OpenRoom returns the room for a task, creating it when needed.
func (h *ChatHandler) OpenRoom(c *gin.Context) {
	var req openRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid room payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	room, err := h.svc.OpenRoom(c.Request.Context(), req.TaskID, req.TaskTitle, req.AnimalName)
	if err != nil {
		h.logger.Error("failed opening chat room", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open chat room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": room})
}

// Room resolves a share code to its room.
func (h *ChatHandler) Room(c *gin.Context) {
	room, err := h.svc.RoomByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, chat.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed loading chat room", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load chat room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": room})
}

// Messages lists a room's messages ordered by creation time ascending.
func (h *ChatHandler) Messages(c *gin.Context) {
	room, err := h.svc.RoomByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, chat.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed loading chat room", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load chat room"})
		return
	}

	messages, err := h.svc.Messages(c.Request.Context(), room.ID)
	if err != nil {
		h.logger.Error("failed loading messages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": messages})
}

type postMessageRequest struct {
	SenderName string `json:"senderName" binding:"required"`
	SenderRole string `json:"senderRole" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// PostMessage appends a message to the room behind a share code.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid message payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	room, err := h.svc.RoomByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, chat.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed loading chat room", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load chat room"})
		return
	}

	msg, err := h.svc.Post(c.Request.Context(), room.ID, req.SenderName, req.SenderRole, req.Content)
	if err != nil {
		h.logger.Error("failed posting message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to post message"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": msg})
}

// Stream pushes newly inserted messages for a room as server-sent events. The
// subscription is dropped when the client disconnects.
func (h *ChatHandler) Stream(c *gin.Context) {
	room, err := h.svc.RoomByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, chat.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed loading chat room", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load chat room"})
		return
	}

	msgCh, cancel := h.svc.Subscribe(room.ID)
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-msgCh:
			if !ok {
				return false
			}
			c.SSEvent("message", msg)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
