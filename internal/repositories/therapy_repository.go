package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"serenely/internal/models/db_models"
)

type TherapyRepository interface {
	// ListRecentMessages returns the user's most recent limit messages,
	// ordered oldest to newest.
	ListRecentMessages(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.TherapyMessage, error)
	ListMessagesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]db_models.TherapyMessage, error)
	// CreateMessagePair records the user turn and the assistant reply in one
	// transaction; either both rows land or neither does.
	CreateMessagePair(ctx context.Context, userMsg, assistantMsg *db_models.TherapyMessage) error
	// CreateEntryIfAbsent inserts the journal entry unless one already exists
	// for (user, entry date). The unique index plus the conflict clause make
	// the check atomic; reports whether a row was inserted.
	CreateEntryIfAbsent(ctx context.Context, entry *db_models.TherapyEntry) (bool, error)
	ListEntries(ctx context.Context, userID uuid.UUID) ([]db_models.TherapyEntry, error)
	FindEntryById(ctx context.Context, userID uuid.UUID, entryID string) (*db_models.TherapyEntry, error)
}

type therapyRepository struct {
	db *gorm.DB
}

func NewTherapyRepository(db *gorm.DB) TherapyRepository {
	return &therapyRepository{db: db}
}

func (r *therapyRepository) ListRecentMessages(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.TherapyMessage, error) {
	var messages []db_models.TherapyMessage
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	// fetched newest-first; callers want chronological order
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *therapyRepository) ListMessagesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]db_models.TherapyMessage, error) {
	var messages []db_models.TherapyMessage
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since.Unix()).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *therapyRepository) CreateMessagePair(ctx context.Context, userMsg, assistantMsg *db_models.TherapyMessage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userMsg).Error; err != nil {
			return err
		}
		return tx.Create(assistantMsg).Error
	})
}

func (r *therapyRepository) CreateEntryIfAbsent(ctx context.Context, entry *db_models.TherapyEntry) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "entry_date"}},
			DoNothing: true,
		}).
		Create(entry)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *therapyRepository) ListEntries(ctx context.Context, userID uuid.UUID) ([]db_models.TherapyEntry, error) {
	var entries []db_models.TherapyEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("entry_date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *therapyRepository) FindEntryById(ctx context.Context, userID uuid.UUID, entryID string) (*db_models.TherapyEntry, error) {
	// a malformed id cannot match any row; reject it before it reaches the
	// uuid column and errors out
	if _, err := uuid.Parse(entryID); err != nil {
		return nil, nil
	}

	var entry db_models.TherapyEntry
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entry, nil
}
