package db_models

import "github.com/google/uuid"

type Post struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Content  string    `gorm:"type:text;not null"`
	ImageURL *string

	User     User
	Comments []Comment
}
