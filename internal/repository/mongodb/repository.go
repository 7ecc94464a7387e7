package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/herdbook/internal/domain/models"
	"github.com/mamadbah2/herdbook/internal/repository"
)

// Repository implements the slot stores and the chat store on MongoDB. Each
// slot maps to one collection; replacing a slot rewrites the collection in
// full, matching the whole-collection read-modify-write persistence model.
type Repository struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewRepository connects to MongoDB and verifies the connection.
func NewRepository(ctx context.Context, uri string, dbName string) (*Repository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Repository{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Close closes the MongoDB connection.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// ListAnimals returns the full herd slot.
func (r *Repository) ListAnimals(ctx context.Context) ([]models.Animal, error) {
	return readAll[models.Animal](ctx, r.db.Collection(repository.SlotAnimals))
}

// ReplaceAnimals rewrites the herd slot.
func (r *Repository) ReplaceAnimals(ctx context.Context, animals []models.Animal) error {
	return replaceAll(ctx, r.db.Collection(repository.SlotAnimals), animals)
}

// ListTasks returns the full task slot.
func (r *Repository) ListTasks(ctx context.Context) ([]models.CattleTask, error) {
	return readAll[models.CattleTask](ctx, r.db.Collection(repository.SlotTasks))
}

// ReplaceTasks rewrites the task slot.
func (r *Repository) ReplaceTasks(ctx context.Context, tasks []models.CattleTask) error {
	return replaceAll(ctx, r.db.Collection(repository.SlotTasks), tasks)
}

// ListNotes returns the full note slot.
func (r *Repository) ListNotes(ctx context.Context) ([]models.CattleNote, error) {
	return readAll[models.CattleNote](ctx, r.db.Collection(repository.SlotNotes))
}

// ReplaceNotes rewrites the note slot.
func (r *Repository) ReplaceNotes(ctx context.Context, notes []models.CattleNote) error {
	return replaceAll(ctx, r.db.Collection(repository.SlotNotes), notes)
}

// ListSchedules returns the full treatment schedule slot.
func (r *Repository) ListSchedules(ctx context.Context) ([]models.TreatmentSchedule, error) {
	return readAll[models.TreatmentSchedule](ctx, r.db.Collection(repository.SlotSchedules))
}

// ReplaceSchedules rewrites the treatment schedule slot.
func (r *Repository) ReplaceSchedules(ctx context.Context, schedules []models.TreatmentSchedule) error {
	return replaceAll(ctx, r.db.Collection(repository.SlotSchedules), schedules)
}

// ListRecords returns the full treatment record slot.
func (r *Repository) ListRecords(ctx context.Context) ([]models.TreatmentRecord, error) {
	return readAll[models.TreatmentRecord](ctx, r.db.Collection(repository.SlotRecords))
}

// ReplaceRecords rewrites the treatment record slot.
func (r *Repository) ReplaceRecords(ctx context.Context, records []models.TreatmentRecord) error {
	return replaceAll(ctx, r.db.Collection(repository.SlotRecords), records)
}

func readAll[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", coll.Name(), err)
	}

	var items []T
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode collection %s: %w", coll.Name(), err)
	}
	return items, nil
}

func replaceAll[T any](ctx context.Context, coll *mongo.Collection, items []T) error {
	if _, err := coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("failed to clear collection %s: %w", coll.Name(), err)
	}
	if len(items) == 0 {
		return nil
	}

	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = item
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to rewrite collection %s: %w", coll.Name(), err)
	}
	return nil
}
