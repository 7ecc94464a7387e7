package models

// TaskCategory groups daily herd tasks.
type TaskCategory string

const (
	CategoryFeeding  TaskCategory = "feeding"
	CategoryWatering TaskCategory = "watering"
	CategoryHealth   TaskCategory = "health"
	CategoryBreeding TaskCategory = "breeding"
	CategoryCleaning TaskCategory = "cleaning"
)

// CattleTask is a herd chore, optionally linked to a single animal. CompletedAt
// is set exactly when Completed flips to true and cleared when it flips back.
type CattleTask struct {
	ID          string       `bson:"id" json:"id"`
	Title       string       `bson:"title" json:"title"`
	Category    TaskCategory `bson:"category" json:"category"`
	Completed   bool         `bson:"completed" json:"completed"`
	CompletedAt string       `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
	AnimalID    string       `bson:"animal_id,omitempty" json:"animalId,omitempty"`
	CreatedAt   string       `bson:"created_at" json:"createdAt"`
}
