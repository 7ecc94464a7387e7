package models

// ChatRoom is a shared discussion thread keyed by a task. ShareCode is the
// short human-readable code handed out to workers joining the room.
type ChatRoom struct {
	ID         string `bson:"id" json:"id"`
	TaskID     string `bson:"task_id" json:"taskId"`
	TaskTitle  string `bson:"task_title" json:"taskTitle"`
	AnimalName string `bson:"animal_name,omitempty" json:"animalName,omitempty"`
	ShareCode  string `bson:"share_code" json:"shareCode"`
	IsActive   bool   `bson:"is_active" json:"isActive"`
	CreatedAt  string `bson:"created_at" json:"createdAt"`
}

// ChatMessage is a single message in a room. Messages are ordered by CreatedAt
// ascending; the server assigns the timestamp on insert.
type ChatMessage struct {
	ID         string `bson:"id" json:"id"`
	RoomID     string `bson:"room_id" json:"roomId"`
	SenderName string `bson:"sender_name" json:"senderName"`
	SenderRole string `bson:"sender_role" json:"senderRole"`
	Content    string `bson:"content" json:"content"`
	CreatedAt  string `bson:"created_at" json:"createdAt"`
}
