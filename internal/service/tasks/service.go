package tasks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/herdbook/internal/domain/models"
	"github.com/mamadbah2/herdbook/internal/repository"
)

// ErrTaskNotFound is returned when an operation targets an unknown task id.
var ErrTaskNotFound = errors.New("task not found")

// Filter selects a subset of the task list.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// Service owns the task collection.
type Service struct {
	tasks  repository.TaskStore
	logger *zap.Logger
}

// NewService wires a new task service instance.
func NewService(tasks repository.TaskStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{tasks: tasks, logger: logger}
}

// Input carries the caller-editable fields of a task.
type Input struct {
	Title    string              `json:"title" binding:"required"`
	Category models.TaskCategory `json:"category" binding:"required"`
	AnimalID string              `json:"animalId"`
}

// List returns tasks matching the filter, newest first.
func (s *Service) List(ctx context.Context, filter Filter) ([]models.CattleTask, error) {
	all, err := s.tasks.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	if filter == FilterAll || filter == "" {
		return all, nil
	}

	var filtered []models.CattleTask
	for _, t := range all {
		switch filter {
		case FilterPending:
			if !t.Completed {
				filtered = append(filtered, t)
			}
		case FilterCompleted:
			if t.Completed {
				filtered = append(filtered, t)
			}
		}
	}
	return filtered, nil
}

// Create registers a new pending task.
func (s *Service) Create(ctx context.Context, input Input) (models.CattleTask, error) {
	all, err := s.tasks.ListTasks(ctx)
	if err != nil {
		return models.CattleTask{}, err
	}

	task := models.CattleTask{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Category:  input.Category,
		AnimalID:  input.AnimalID,
		CreatedAt: models.Timestamp(time.Now()),
	}

	if err := s.tasks.ReplaceTasks(ctx, append([]models.CattleTask{task}, all...)); err != nil {
		return models.CattleTask{}, err
	}

	s.logger.Info("task created", zap.String("id", task.ID), zap.String("category", string(task.Category)))
	return task, nil
}

// Toggle flips a task's completion flag. CompletedAt is stamped exactly when
// the flag flips to true and cleared when it flips back.
func (s *Service) Toggle(ctx context.Context, id string) (models.CattleTask, error) {
	all, err := s.tasks.ListTasks(ctx)
	if err != nil {
		return models.CattleTask{}, err
	}

	for i := range all {
		if all[i].ID != id {
			continue
		}
		all[i].Completed = !all[i].Completed
		if all[i].Completed {
			all[i].CompletedAt = models.Timestamp(time.Now())
		} else {
			all[i].CompletedAt = ""
		}
		if err := s.tasks.ReplaceTasks(ctx, all); err != nil {
			return models.CattleTask{}, err
		}
		return all[i], nil
	}
	return models.CattleTask{}, ErrTaskNotFound
}

// Delete removes a task.
func (s *Service) Delete(ctx context.Context, id string) error {
	all, err := s.tasks.ListTasks(ctx)
	if err != nil {
		return err
	}

	kept := all[:0]
	found := false
	for _, t := range all {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return ErrTaskNotFound
	}
	return s.tasks.ReplaceTasks(ctx, kept)
}

// CountForAnimal returns how many tasks reference the given animal.
func (s *Service) CountForAnimal(ctx context.Context, animalID string) (int, error) {
	all, err := s.tasks.ListTasks(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, t := range all {
		if t.AnimalID == animalID {
			count++
		}
	}
	return count, nil
}
