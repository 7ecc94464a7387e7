// Package memory is an in-memory implementation of the repository contracts,
// used by tests and local development before a MongoDB instance is available.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mamadbah2/herdbook/internal/domain/models"
)

// Store holds every slot behind a single lock. Reads hand out cloned slices so
// callers can mutate their copy freely before replacing the slot.
type Store struct {
	mu        sync.RWMutex
	animals   []models.Animal
	tasks     []models.CattleTask
	notes     []models.CattleNote
	schedules []models.TreatmentSchedule
	records   []models.TreatmentRecord
	rooms     []models.ChatRoom
	messages  []models.ChatMessage
}

// NewStore returns an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

// ListAnimals returns the herd slot.
func (s *Store) ListAnimals(_ context.Context) ([]models.Animal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Animal(nil), s.animals...), nil
}

// ReplaceAnimals rewrites the herd slot.
func (s *Store) ReplaceAnimals(_ context.Context, animals []models.Animal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animals = append([]models.Animal(nil), animals...)
	return nil
}

// ListTasks returns the task slot.
func (s *Store) ListTasks(_ context.Context) ([]models.CattleTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CattleTask(nil), s.tasks...), nil
}

// ReplaceTasks rewrites the task slot.
func (s *Store) ReplaceTasks(_ context.Context, tasks []models.CattleTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append([]models.CattleTask(nil), tasks...)
	return nil
}

// ListNotes returns the note slot.
func (s *Store) ListNotes(_ context.Context) ([]models.CattleNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CattleNote(nil), s.notes...), nil
}

// ReplaceNotes rewrites the note slot.
func (s *Store) ReplaceNotes(_ context.Context, notes []models.CattleNote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append([]models.CattleNote(nil), notes...)
	return nil
}

// ListSchedules returns the treatment schedule slot.
func (s *Store) ListSchedules(_ context.Context) ([]models.TreatmentSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TreatmentSchedule(nil), s.schedules...), nil
}

// ReplaceSchedules rewrites the treatment schedule slot.
func (s *Store) ReplaceSchedules(_ context.Context, schedules []models.TreatmentSchedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules = append([]models.TreatmentSchedule(nil), schedules...)
	return nil
}

// ListRecords returns the treatment record slot.
func (s *Store) ListRecords(_ context.Context) ([]models.TreatmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TreatmentRecord(nil), s.records...), nil
}

// ReplaceRecords rewrites the treatment record slot.
func (s *Store) ReplaceRecords(_ context.Context, records []models.TreatmentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]models.TreatmentRecord(nil), records...)
	return nil
}

// RoomByTask finds the chat room attached to a task, or (nil, nil).
func (s *Store) RoomByTask(_ context.Context, taskID string) (*models.ChatRoom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, room := range s.rooms {
		if room.TaskID == taskID {
			found := room
			return &found, nil
		}
	}
	return nil, nil
}

// RoomByCode finds a chat room by its share code, or (nil, nil).
func (s *Store) RoomByCode(_ context.Context, shareCode string) (*models.ChatRoom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, room := range s.rooms {
		if room.ShareCode == shareCode {
			found := room
			return &found, nil
		}
	}
	return nil, nil
}

// InsertRoom stores a newly created chat room.
func (s *Store) InsertRoom(_ context.Context, room models.ChatRoom) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = append(s.rooms, room)
	return nil
}

// ListMessages returns a room's messages ordered by creation time ascending.
func (s *Store) ListMessages(_ context.Context, roomID string) ([]models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var messages []models.ChatMessage
	for _, msg := range s.messages {
		if msg.RoomID == roomID {
			messages = append(messages, msg)
		}
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt < messages[j].CreatedAt
	})
	return messages, nil
}

// InsertMessage appends a message to a room.
func (s *Store) InsertMessage(_ context.Context, msg models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return nil
}
