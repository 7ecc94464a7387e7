package herd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/herdbook/internal/domain/models"
	"github.com/mamadbah2/herdbook/internal/repository"
)

// ErrAnimalNotFound is returned when an operation targets an unknown animal id.
var ErrAnimalNotFound = errors.New("animal not found")

// ErrBirthRecordNotFound is returned when a birth record id does not exist on
// the targeted animal.
var ErrBirthRecordNotFound = errors.New("birth record not found")

// Service owns the herd collection: animal records, lifecycle status changes
// and birth records. Every mutation is a read-all, modify, replace-all cycle
// over the animal slot.
type Service struct {
	animals repository.AnimalStore
	logger  *zap.Logger
}

// NewService wires a new herd service instance.
func NewService(animals repository.AnimalStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{animals: animals, logger: logger}
}

// AnimalInput carries the caller-editable fields of an animal record.
type AnimalInput struct {
	Name          string           `json:"name" binding:"required"`
	TagID         string           `json:"tagId"`
	Age           int              `json:"age"`
	Sex           models.AnimalSex `json:"sex" binding:"required"`
	Breed         string           `json:"breed"`
	BirthWeight   float64          `json:"birthWeight"`
	CurrentWeight float64          `json:"currentWeight"`
	DateOfBirth   string           `json:"dateOfBirth"`
	MotherID      string           `json:"motherId"`
	FatherID      string           `json:"fatherId"`
	HealthNotes   string           `json:"healthNotes"`
}

// List returns the full herd in insertion order (newest first).
func (s *Service) List(ctx context.Context) ([]models.Animal, error) {
	return s.animals.ListAnimals(ctx)
}

// Get returns a single animal by id.
func (s *Service) Get(ctx context.Context, id string) (models.Animal, error) {
	animals, err := s.animals.ListAnimals(ctx)
	if err != nil {
		return models.Animal{}, err
	}
	for _, a := range animals {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Animal{}, ErrAnimalNotFound
}

// Create registers a new animal with status alive.
func (s *Service) Create(ctx context.Context, input AnimalInput) (models.Animal, error) {
	animals, err := s.animals.ListAnimals(ctx)
	if err != nil {
		return models.Animal{}, err
	}

	now := models.Timestamp(time.Now())
	animal := models.Animal{
		ID:            uuid.NewString(),
		Name:          input.Name,
		TagID:         input.TagID,
		Age:           input.Age,
		Sex:           input.Sex,
		Status:        models.StatusAlive,
		Breed:         input.Breed,
		BirthWeight:   input.BirthWeight,
		CurrentWeight: input.CurrentWeight,
		DateOfBirth:   input.DateOfBirth,
		MotherID:      input.MotherID,
		FatherID:      input.FatherID,
		HealthNotes:   input.HealthNotes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.animals.ReplaceAnimals(ctx, append([]models.Animal{animal}, animals...)); err != nil {
		return models.Animal{}, err
	}

	s.logger.Info("animal created", zap.String("id", animal.ID), zap.String("name", animal.Name))
	return animal, nil
}

// Update applies the editable fields to an existing animal.
func (s *Service) Update(ctx context.Context, id string, input AnimalInput) (models.Animal, error) {
	animals, err := s.animals.ListAnimals(ctx)
	if err != nil {
		return models.Animal{}, err
	}

	var updated *models.Animal
	for i := range animals {
		if animals[i].ID != id {
			continue
		}
		animals[i].Name = input.Name
		animals[i].TagID = input.TagID
		animals[i].Age = input.Age
		animals[i].Sex = input.Sex
		animals[i].Breed = input.Breed
		animals[i].BirthWeight = input.BirthWeight
		animals[i].CurrentWeight = input.CurrentWeight
		animals[i].DateOfBirth = input.DateOfBirth
		animals[i].MotherID = input.MotherID
		animals[i].FatherID = input.FatherID
		animals[i].HealthNotes = input.HealthNotes
		animals[i].UpdatedAt = models.Timestamp(time.Now())
		updated = &animals[i]
		break
	}
	if updated == nil {
		return models.Animal{}, ErrAnimalNotFound
	}

	if err := s.animals.ReplaceAnimals(ctx, animals); err != nil {
		return models.Animal{}, err
	}
	return *updated, nil
}

// Delete removes an animal. References from other entities are left dangling
// on purpose; they resolve to "Unknown" at read time.
func (s *Service) Delete(ctx context.Context, id string) error {
	animals, err := s.animals.ListAnimals(ctx)
	if err != nil {
		return err
	}

	kept := animals[:0]
	found := false
	for _, a := range animals {
		if a.ID == id {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return ErrAnimalNotFound
	}

	return s.animals.ReplaceAnimals(ctx, kept)
}

// ChangeStatus moves an animal to a new lifecycle status with an optional
// free-text note describing the circumstances.
func (s *Service) ChangeStatus(ctx context.Context, id string, status models.AnimalStatus, note string) (models.Animal, error) {
	animals, err := s.animals.ListAnimals(ctx)
	if err != nil {
		return models.Animal{}, err
	}

	for i := range animals {
		if animals[i].ID != id {
			continue
		}
		animals[i].Status = status
		animals[i].StatusNote = note
		animals[i].UpdatedAt = models.Timestamp(time.Now())
		if err := s.animals.ReplaceAnimals(ctx, animals); err != nil {
			return models.Animal{}, err
		}
		s.logger.Info("animal status changed", zap.String("id", id), zap.String("status", string(status)))
		return animals[i], nil
	}
	return models.Animal{}, ErrAnimalNotFound
}

// Family resolves the one-level lineage of an animal.
func (s *Service) Family(ctx context.Context, id string) (FamilyTree, error) {
	animals, err := s.animals.ListAnimals(ctx)
	if err != nil {
		return FamilyTree{}, err
	}
	for _, a := range animals {
		if a.ID == id {
			return ResolveFamily(a, animals), nil
		}
	}
	return FamilyTree{}, ErrAnimalNotFound
}

// BirthRecordInput carries the fields for logging a calving event.
type BirthRecordInput struct {
	CalfID      string  `json:"calfId" binding:"required"`
	BirthDate   string  `json:"birthDate" binding:"required"`
	BirthWeight float64 `json:"birthWeight"`
	Notes       string  `json:"notes"`
}

// AddBirthRecord appends a birth record to the mother and, in the same write,
// sets the calf's motherId to the recording animal. The calf name is
// snapshotted so the record stays readable if the calf is renamed or deleted.
func (s *Service) AddBirthRecord(ctx context.Context, motherID string, input BirthRecordInput) (models.BirthRecord, error) {
	animals, err := s.animals.ListAnimals(ctx)
	if err != nil {
		return models.BirthRecord{}, err
	}

	motherIdx := -1
	calfName := "Unknown"
	for i := range animals {
		switch animals[i].ID {
		case motherID:
			motherIdx = i
		case input.CalfID:
			calfName = animals[i].Name
		}
	}
	if motherIdx < 0 {
		return models.BirthRecord{}, ErrAnimalNotFound
	}

	record := models.BirthRecord{
		ID:          uuid.NewString(),
		CalfID:      input.CalfID,
		CalfName:    calfName,
		BirthDate:   input.BirthDate,
		BirthWeight: input.BirthWeight,
		Notes:       input.Notes,
	}

	now := models.Timestamp(time.Now())
	animals[motherIdx].BirthRecords = append(animals[motherIdx].BirthRecords, record)
	animals[motherIdx].UpdatedAt = now

	// Second mutation of the same write: link the calf back to its mother.
	for i := range animals {
		if animals[i].ID == input.CalfID {
			animals[i].MotherID = motherID
			animals[i].UpdatedAt = now
			break
		}
	}

	if err := s.animals.ReplaceAnimals(ctx, animals); err != nil {
		return models.BirthRecord{}, err
	}

	s.logger.Info("birth record added",
		zap.String("mother_id", motherID),
		zap.String("calf_id", input.CalfID))
	return record, nil
}

// DeleteBirthRecord removes one birth record from an animal. The calf's
// motherId is left as-is; only the record itself is owned.
func (s *Service) DeleteBirthRecord(ctx context.Context, animalID, recordID string) error {
	animals, err := s.animals.ListAnimals(ctx)
	if err != nil {
		return err
	}

	for i := range animals {
		if animals[i].ID != animalID {
			continue
		}
		records := animals[i].BirthRecords
		for j := range records {
			if records[j].ID == recordID {
				animals[i].BirthRecords = append(records[:j:j], records[j+1:]...)
				animals[i].UpdatedAt = models.Timestamp(time.Now())
				return s.animals.ReplaceAnimals(ctx, animals)
			}
		}
		return ErrBirthRecordNotFound
	}
	return ErrAnimalNotFound
}

// Stats summarizes the herd for the overview screen.
type Stats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
	Cows   int `json:"cows"`
	Bulls  int `json:"bulls"`
}

// Stats counts the herd by sex and activity.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	animals, err := s.animals.ListAnimals(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("load herd: %w", err)
	}

	stats := Stats{Total: len(animals)}
	for _, a := range animals {
		if IsActive(a) {
			stats.Active++
		}
		switch a.Sex {
		case models.SexFemale:
			stats.Cows++
		case models.SexMale:
			stats.Bulls++
		}
	}
	return stats, nil
}
