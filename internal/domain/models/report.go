package models

import "time"

// DailyHerdReport represents the aggregated daily herd snapshot exported by the
// reporting service.
type DailyHerdReport struct {
	Date               time.Time `bson:"date" json:"date"`
	TotalAnimals       int       `bson:"total_animals" json:"total_animals"`
	ActiveAnimals      int       `bson:"active_animals" json:"active_animals"`
	Cows               int       `bson:"cows" json:"cows"`
	Bulls              int       `bson:"bulls" json:"bulls"`
	PendingTasks       int       `bson:"pending_tasks" json:"pending_tasks"`
	OverdueTreatments  int       `bson:"overdue_treatments" json:"overdue_treatments"`
	DueTodayTreatments int       `bson:"due_today_treatments" json:"due_today_treatments"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
}
