// Package repository defines the persistence contracts consumed by the service
// layer. Herd collections are stored as whole slots: every mutation is a
// read-all, modify in memory, replace-all cycle. Chat is append-only and uses
// incremental inserts instead.
package repository

import (
	"context"

	"github.com/mamadbah2/herdbook/internal/domain/models"
)

// Slot names for the persisted herd collections.
const (
	SlotAnimals   = "cattle-animals"
	SlotTasks     = "cattle-tasks"
	SlotNotes     = "cattle-notes"
	SlotSchedules = "cattle-treatment-schedules"
	SlotRecords   = "cattle-treatment-records"
)

// AnimalStore persists the herd collection.
type AnimalStore interface {
	ListAnimals(ctx context.Context) ([]models.Animal, error)
	ReplaceAnimals(ctx context.Context, animals []models.Animal) error
}

// TaskStore persists the task collection.
type TaskStore interface {
	ListTasks(ctx context.Context) ([]models.CattleTask, error)
	ReplaceTasks(ctx context.Context, tasks []models.CattleTask) error
}

// NoteStore persists the note collection.
type NoteStore interface {
	ListNotes(ctx context.Context) ([]models.CattleNote, error)
	ReplaceNotes(ctx context.Context, notes []models.CattleNote) error
}

// TreatmentStore persists treatment schedules and records.
type TreatmentStore interface {
	ListSchedules(ctx context.Context) ([]models.TreatmentSchedule, error)
	ReplaceSchedules(ctx context.Context, schedules []models.TreatmentSchedule) error
	ListRecords(ctx context.Context) ([]models.TreatmentRecord, error)
	ReplaceRecords(ctx context.Context, records []models.TreatmentRecord) error
}

// ChatStore persists chat rooms and messages. Lookups return (nil, nil) when
// no matching document exists.
type ChatStore interface {
	RoomByTask(ctx context.Context, taskID string) (*models.ChatRoom, error)
	RoomByCode(ctx context.Context, shareCode string) (*models.ChatRoom, error)
	InsertRoom(ctx context.Context, room models.ChatRoom) error
	ListMessages(ctx context.Context, roomID string) ([]models.ChatMessage, error)
	InsertMessage(ctx context.Context, msg models.ChatMessage) error
}
