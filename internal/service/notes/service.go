package notes

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/herdbook/internal/domain/models"
	"github.com/mamadbah2/herdbook/internal/repository"
)

// ErrNoteNotFound is returned when an operation targets an unknown note id.
var ErrNoteNotFound = errors.New("note not found")

// Service owns the note collection.
type Service struct {
	notes  repository.NoteStore
	logger *zap.Logger
}

// NewService wires a new note service instance.
func NewService(notes repository.NoteStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{notes: notes, logger: logger}
}

// Input carries the caller-editable fields of a note.
type Input struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	AnimalID string `json:"animalId"`
}

// List returns all notes, newest first.
func (s *Service) List(ctx context.Context) ([]models.CattleNote, error) {
	return s.notes.ListNotes(ctx)
}

// Create registers a new note.
func (s *Service) Create(ctx context.Context, input Input) (models.CattleNote, error) {
	all, err := s.notes.ListNotes(ctx)
	if err != nil {
		return models.CattleNote{}, err
	}

	now := models.Timestamp(time.Now())
	note := models.CattleNote{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Content:   input.Content,
		AnimalID:  input.AnimalID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.notes.ReplaceNotes(ctx, append([]models.CattleNote{note}, all...)); err != nil {
		return models.CattleNote{}, err
	}
	return note, nil
}

// Update rewrites the editable fields of an existing note.
func (s *Service) Update(ctx context.Context, id string, input Input) (models.CattleNote, error) {
	all, err := s.notes.ListNotes(ctx)
	if err != nil {
		return models.CattleNote{}, err
	}

	for i := range all {
		if all[i].ID != id {
			continue
		}
		all[i].Title = input.Title
		all[i].Content = input.Content
		all[i].AnimalID = input.AnimalID
		all[i].UpdatedAt = models.Timestamp(time.Now())
		if err := s.notes.ReplaceNotes(ctx, all); err != nil {
			return models.CattleNote{}, err
		}
		return all[i], nil
	}
	return models.CattleNote{}, ErrNoteNotFound
}

// Delete removes a note.
func (s *Service) Delete(ctx context.Context, id string) error {
	all, err := s.notes.ListNotes(ctx)
	if err != nil {
		return err
	}

	kept := all[:0]
	found := false
	for _, n := range all {
		if n.ID == id {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return ErrNoteNotFound
	}
	return s.notes.ReplaceNotes(ctx, kept)
}

// CountForAnimal returns how many notes reference the given animal.
func (s *Service) CountForAnimal(ctx context.Context, animalID string) (int, error) {
	all, err := s.notes.ListNotes(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range all {
		if n.AnimalID == animalID {
			count++
		}
	}
	return count, nil
}
