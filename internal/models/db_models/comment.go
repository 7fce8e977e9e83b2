package db_models

import "github.com/google/uuid"

type Comment struct {
	BaseModel
	PostID  uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID  uuid.UUID `gorm:"type:uuid;not null"`
	Content string    `gorm:"type:text;not null"`

	User User
}
