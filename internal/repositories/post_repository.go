package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"serenely/internal/models/db_models"
)

const (
	listRetryAttempts = 3
	listRetryDelay    = time.Second
)

type PostRepository interface {
	Insert(ctx context.Context, post *db_models.Post) error
	FindById(ctx context.Context, id string) (*db_models.Post, error)
	// ListAll feeds both the public feed and the admin dashboard; the heaviest
	// read in the app, wrapped in a short fixed-delay retry.
	ListAll(ctx context.Context) ([]db_models.Post, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) error
	AddComment(ctx context.Context, comment *db_models.Comment) error
	// DeleteCascade removes the post and its comments in one transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Insert(ctx context.Context, post *db_models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) FindById(ctx context.Context, id string) (*db_models.Post, error) {
	// malformed ids error out against the uuid column; treat them as absent
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	var post db_models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Comments").
		Preload("Comments.User").
		First(&post, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) ListAll(ctx context.Context) ([]db_models.Post, error) {
	var posts []db_models.Post
	err := withRetry(ctx, listRetryAttempts, listRetryDelay, func() error {
		posts = posts[:0]
		return r.db.WithContext(ctx).
			Preload("User").
			Preload("Comments").
			Preload("Comments.User").
			Order("created_at DESC").
			Find(&posts).Error
	})
	return posts, err
}

func (r *postRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Post{}).
		Where("id = ?", id).
		Update("content", content).Error
}

func (r *postRepository) AddComment(ctx context.Context, comment *db_models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *postRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&db_models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Post{}, "id = ?", id).Error
	})
}

// withRetry runs fn up to attempts times with a fixed delay in between.
// No backoff growth; only the post listing uses it.
func withRetry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
