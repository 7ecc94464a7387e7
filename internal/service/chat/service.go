package chat

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/herdbook/internal/domain/models"
	"github.com/mamadbah2/herdbook/internal/repository"
)

// ErrRoomNotFound is returned when a share code does not match any room.
var ErrRoomNotFound = errors.New("chat room not found")

// Share codes skip ambiguous characters so they survive being read out loud.
const shareCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const shareCodeLength = 6

// Service is the hosted chat backend: rooms keyed by task, append-only
// messages ordered by server-assigned creation time, and an in-process hub
// pushing new messages to subscribers.
type Service struct {
	store  repository.ChatStore
	hub    *Hub
	logger *zap.Logger
}

// NewService wires a new chat service instance.
func NewService(store repository.ChatStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, hub: NewHub(), logger: logger}
}

// OpenRoom returns the room attached to the task, creating one with a fresh
// share code when none exists yet.
func (s *Service) OpenRoom(ctx context.Context, taskID, taskTitle, animalName string) (models.ChatRoom, error) {
	existing, err := s.store.RoomByTask(ctx, taskID)
	if err != nil {
		return models.ChatRoom{}, err
	}
	if existing != nil {
		return *existing, nil
	}

	code, err := newShareCode()
	if err != nil {
		return models.ChatRoom{}, err
	}

	room := models.ChatRoom{
		ID:         uuid.NewString(),
		TaskID:     taskID,
		TaskTitle:  taskTitle,
		AnimalName: animalName,
		ShareCode:  code,
		IsActive:   true,
		CreatedAt:  models.Timestamp(time.Now()),
	}
	if err := s.store.InsertRoom(ctx, room); err != nil {
		return models.ChatRoom{}, err
	}

	s.logger.Info("chat room created",
		zap.String("room_id", room.ID),
		zap.String("task_id", taskID),
		zap.String("share_code", code))
	return room, nil
}

// RoomByCode resolves a share code to its room.
func (s *Service) RoomByCode(ctx context.Context, shareCode string) (models.ChatRoom, error) {
	room, err := s.store.RoomByCode(ctx, shareCode)
	if err != nil {
		return models.ChatRoom{}, err
	}
	if room == nil {
		return models.ChatRoom{}, ErrRoomNotFound
	}
	return *room, nil
}

// Messages returns a room's messages ordered by creation time ascending.
func (s *Service) Messages(ctx context.Context, roomID string) ([]models.ChatMessage, error) {
	return s.store.ListMessages(ctx, roomID)
}

// Post appends a message to a room and fans it out to live subscribers.
func (s *Service) Post(ctx context.Context, roomID, senderName, senderRole, content string) (models.ChatMessage, error) {
	msg := models.ChatMessage{
		ID:         uuid.NewString(),
		RoomID:     roomID,
		SenderName: senderName,
		SenderRole: senderRole,
		Content:    content,
		CreatedAt:  models.Timestamp(time.Now()),
	}
	if err := s.store.InsertMessage(ctx, msg); err != nil {
		return models.ChatMessage{}, err
	}

	s.hub.Publish(msg)
	return msg, nil
}

// Subscribe registers a live feed of new messages for a room. The returned
// cancel function must be called when the subscriber goes away.
func (s *Service) Subscribe(roomID string) (<-chan models.ChatMessage, func()) {
	return s.hub.Subscribe(roomID)
}

func newShareCode() (string, error) {
	buf := make([]byte, shareCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate share code: %w", err)
	}
	for i, b := range buf {
		buf[i] = shareCodeAlphabet[int(b)%len(shareCodeAlphabet)]
	}
	return string(buf), nil
}
