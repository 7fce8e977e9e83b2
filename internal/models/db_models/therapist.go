package db_models

import "github.com/google/uuid"

// Therapist is a read-only directory row, seeded at startup.
type Therapist struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name    string    `gorm:"not null"`
	Address string    `gorm:"not null"`
	Email   string    `gorm:"not null"`
}
