package db_models

import (
	"time"

	"github.com/google/uuid"
)

// TherapyEntry is the journal record for one user's calendar day. The unique
// index makes the first insert of a day win; later inserts hit the conflict
// clause and are skipped.
type TherapyEntry struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_entry_user_day"`
	Title     string    `gorm:"type:varchar(50);not null"`
	EntryDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_entry_user_day"`
}
