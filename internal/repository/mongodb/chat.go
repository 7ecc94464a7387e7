package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/herdbook/internal/domain/models"
)

const (
	roomsCollection    = "chat-rooms"
	messagesCollection = "chat-messages"
)

// RoomByTask finds the chat room attached to a task, or (nil, nil) when none
// exists yet.
func (r *Repository) RoomByTask(ctx context.Context, taskID string) (*models.ChatRoom, error) {
	return r.findRoom(ctx, bson.M{"task_id": taskID})
}

// RoomByCode finds a chat room by its share code, or (nil, nil) when unknown.
func (r *Repository) RoomByCode(ctx context.Context, shareCode string) (*models.ChatRoom, error) {
	return r.findRoom(ctx, bson.M{"share_code": shareCode})
}

func (r *Repository) findRoom(ctx context.Context, filter bson.M) (*models.ChatRoom, error) {
	var room models.ChatRoom
	err := r.db.Collection(roomsCollection).FindOne(ctx, filter).Decode(&room)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find chat room: %w", err)
	}
	return &room, nil
}

// InsertRoom stores a newly created chat room.
func (r *Repository) InsertRoom(ctx context.Context, room models.ChatRoom) error {
	if _, err := r.db.Collection(roomsCollection).InsertOne(ctx, room); err != nil {
		return fmt.Errorf("failed to insert chat room: %w", err)
	}
	return nil
}

// ListMessages returns the messages of a room ordered by creation time
// ascending.
func (r *Repository) ListMessages(ctx context.Context, roomID string) ([]models.ChatMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.db.Collection(messagesCollection).Find(ctx, bson.M{"room_id": roomID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read chat messages: %w", err)
	}

	var messages []models.ChatMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode chat messages: %w", err)
	}
	return messages, nil
}

// InsertMessage appends a message to a room.
func (r *Repository) InsertMessage(ctx context.Context, msg models.ChatMessage) error {
	if _, err := r.db.Collection(messagesCollection).InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}
