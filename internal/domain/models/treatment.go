package models

// TreatmentType enumerates the supported treatment kinds. TypeCustom requires a
// user-supplied name on the schedule.
type TreatmentType string

const (
	TypeVaccination     TreatmentType = "vaccination"
	TypeDeworming       TreatmentType = "deworming"
	TypeVitamins        TreatmentType = "vitamins"
	TypeParasiteControl TreatmentType = "parasite_control"
	TypeCustom          TreatmentType = "custom"
)

// TreatmentFrequency determines how a schedule recurs.
type TreatmentFrequency string

const (
	FrequencyDaily   TreatmentFrequency = "daily"
	FrequencyWeekly  TreatmentFrequency = "weekly"
	FrequencyMonthly TreatmentFrequency = "monthly"
	FrequencyYearly  TreatmentFrequency = "yearly"
	FrequencyOnce    TreatmentFrequency = "once"
)

// TreatmentSchedule plans a recurring or one-off treatment across a set of
// animals. NextDueDate is always a date at or after the last date the schedule
// was recorded against, or StartDate if it never was.
type TreatmentSchedule struct {
	ID          string             `bson:"id" json:"id"`
	Type        TreatmentType      `bson:"type" json:"type"`
	CustomName  string             `bson:"custom_name,omitempty" json:"customName,omitempty"`
	AnimalIDs   []string           `bson:"animal_ids" json:"animalIds"`
	StartDate   string             `bson:"start_date" json:"startDate"`
	EndDate     string             `bson:"end_date,omitempty" json:"endDate,omitempty"`
	Frequency   TreatmentFrequency `bson:"frequency" json:"frequency"`
	NextDueDate string             `bson:"next_due_date" json:"nextDueDate"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   string             `bson:"created_at" json:"createdAt"`
}

// DisplayName returns the human-facing label for the schedule's treatment.
func (s TreatmentSchedule) DisplayName() string {
	if s.Type == TypeCustom && s.CustomName != "" {
		return s.CustomName
	}
	return string(s.Type)
}

// TreatmentRecord logs one administered treatment for one animal. Type and
// CustomName are copied from the schedule at record time so history stays
// readable after the schedule is deleted.
type TreatmentRecord struct {
	ID             string        `bson:"id" json:"id"`
	ScheduleID     string        `bson:"schedule_id,omitempty" json:"scheduleId,omitempty"`
	AnimalID       string        `bson:"animal_id" json:"animalId"`
	Type           TreatmentType `bson:"type" json:"type"`
	CustomName     string        `bson:"custom_name,omitempty" json:"customName,omitempty"`
	Date           string        `bson:"date" json:"date"`
	Notes          string        `bson:"notes,omitempty" json:"notes,omitempty"`
	AdministeredBy string        `bson:"administered_by,omitempty" json:"administeredBy,omitempty"`
	CreatedAt      string        `bson:"created_at" json:"createdAt"`
}
