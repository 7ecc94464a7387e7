package models

// AnimalSex identifies the sex of an animal.
type AnimalSex string

const (
	SexMale   AnimalSex = "male"
	SexFemale AnimalSex = "female"
)

// AnimalStatus enumerates the lifecycle states an animal can be in. The zero
// value is treated as StatusAlive for records created before the field existed.
type AnimalStatus string

const (
	StatusAlive       AnimalStatus = "alive"
	StatusSold        AnimalStatus = "sold"
	StatusTraded      AnimalStatus = "traded"
	StatusSlaughtered AnimalStatus = "slaughtered"
	StatusDead        AnimalStatus = "dead"
	StatusStolen      AnimalStatus = "stolen"
)

// Animal is a single herd record. MotherID and FatherID are weak references to
// other animals; they are resolved by lookup at read time and may dangle after
// the referenced animal is deleted.
type Animal struct {
	ID            string        `bson:"id" json:"id"`
	Name          string        `bson:"name" json:"name"`
	TagID         string        `bson:"tag_id,omitempty" json:"tagId,omitempty"`
	Age           int           `bson:"age" json:"age"`
	Sex           AnimalSex     `bson:"sex" json:"sex"`
	Status        AnimalStatus  `bson:"status,omitempty" json:"status,omitempty"`
	StatusNote    string        `bson:"status_note,omitempty" json:"statusNote,omitempty"`
	Breed         string        `bson:"breed,omitempty" json:"breed,omitempty"`
	BirthWeight   float64       `bson:"birth_weight,omitempty" json:"birthWeight,omitempty"`
	CurrentWeight float64       `bson:"current_weight,omitempty" json:"currentWeight,omitempty"`
	DateOfBirth   string        `bson:"date_of_birth,omitempty" json:"dateOfBirth,omitempty"`
	MotherID      string        `bson:"mother_id,omitempty" json:"motherId,omitempty"`
	FatherID      string        `bson:"father_id,omitempty" json:"fatherId,omitempty"`
	BirthRecords  []BirthRecord `bson:"birth_records,omitempty" json:"birthRecords,omitempty"`
	HealthNotes   string        `bson:"health_notes" json:"healthNotes"`
	CreatedAt     string        `bson:"created_at" json:"createdAt"`
	UpdatedAt     string        `bson:"updated_at" json:"updatedAt"`
}

// BirthRecord logs a calving event. It is owned by the mother's record list;
// CalfName is snapshotted at creation so the entry stays readable even if the
// calf record is later renamed or deleted.
type BirthRecord struct {
	ID          string  `bson:"id" json:"id"`
	CalfID      string  `bson:"calf_id" json:"calfId"`
	CalfName    string  `bson:"calf_name" json:"calfName"`
	BirthDate   string  `bson:"birth_date" json:"birthDate"`
	BirthWeight float64 `bson:"birth_weight,omitempty" json:"birthWeight,omitempty"`
	Notes       string  `bson:"notes,omitempty" json:"notes,omitempty"`
}
