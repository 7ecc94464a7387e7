package models

// CattleNote is a free-text note, optionally linked to a single animal.
type CattleNote struct {
	ID        string `bson:"id" json:"id"`
	Title     string `bson:"title" json:"title"`
	Content   string `bson:"content" json:"content"`
	AnimalID  string `bson:"animal_id,omitempty" json:"animalId,omitempty"`
	CreatedAt string `bson:"created_at" json:"createdAt"`
	UpdatedAt string `bson:"updated_at" json:"updatedAt"`
}
