package db_models

import "github.com/google/uuid"

// TherapyMessage is one turn of a user's conversation with the assistant.
// Append-only; rows are never updated.
type TherapyMessage struct {
	BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Role    string    `gorm:"type:varchar(16);not null"`
	Content string    `gorm:"type:text;not null"`
}
