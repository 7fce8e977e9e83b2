package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serenely/internal/models/db_models"
	"serenely/internal/repositories"
	"serenely/pkg/utils"
)

type fakeAdminUserRepo struct {
	repositories.UserRepository

	byID    map[string]*db_models.User
	all     []db_models.User
	deleted []uuid.UUID
}

func newFakeAdminUserRepo() *fakeAdminUserRepo {
	return &fakeAdminUserRepo{byID: make(map[string]*db_models.User)}
}

func (f *fakeAdminUserRepo) FindById(ctx context.Context, id string) (*db_models.User, error) {
	return f.byID[id], nil
}

func (f *fakeAdminUserRepo) ListAll(ctx context.Context) ([]db_models.User, error) {
	return f.all, nil
}

func (f *fakeAdminUserRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAdminPostRepo struct {
	repositories.PostRepository

	byID    map[string]*db_models.Post
	all     []db_models.Post
	deleted []uuid.UUID
}

func newFakeAdminPostRepo() *fakeAdminPostRepo {
	return &fakeAdminPostRepo{byID: make(map[string]*db_models.Post)}
}

func (f *fakeAdminPostRepo) FindById(ctx context.Context, id string) (*db_models.Post, error) {
	return f.byID[id], nil
}

func (f *fakeAdminPostRepo) ListAll(ctx context.Context) ([]db_models.Post, error) {
	return f.all, nil
}

func (f *fakeAdminPostRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestDeleteUser_AdminTargetRejected(t *testing.T) {
	users := newFakeAdminUserRepo()
	admin := &db_models.User{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Role:      db_models.RoleAdmin,
	}
	users.byID[admin.ID.String()] = admin
	svc := NewAdminService(users, newFakeAdminPostRepo())

	err := svc.DeleteUser(context.Background(), admin.ID.String())

	require.ErrorIs(t, err, utils.ErrForbidden)
	assert.Empty(t, users.deleted)
}

func TestDeleteUser_MemberCascades(t *testing.T) {
	users := newFakeAdminUserRepo()
	member := &db_models.User{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Role:      db_models.RoleMember,
	}
	users.byID[member.ID.String()] = member
	svc := NewAdminService(users, newFakeAdminPostRepo())

	err := svc.DeleteUser(context.Background(), member.ID.String())

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{member.ID}, users.deleted)
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc := NewAdminService(newFakeAdminUserRepo(), newFakeAdminPostRepo())

	err := svc.DeleteUser(context.Background(), uuid.New().String())

	require.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestListUsers_OmitsPasswordHash(t *testing.T) {
	users := newFakeAdminUserRepo()
	now := time.Now().Unix()
	users.all = []db_models.User{{
		BaseModel:       db_models.BaseModel{ID: uuid.New(), CreatedAt: now},
		Name:            "Ada",
		Email:           "ada@example.com",
		PasswordHash:    "$2a$10$secret",
		Role:            db_models.RoleMember,
		EmailVerifiedAt: &now,
	}}
	svc := NewAdminService(users, newFakeAdminPostRepo())

	out, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Ada", out[0].Name)
	assert.Equal(t, "ada@example.com", out[0].Email)
	assert.True(t, out[0].IsVerified)
}

func TestDeletePost_Cascades(t *testing.T) {
	posts := newFakeAdminPostRepo()
	post := &db_models.Post{BaseModel: db_models.BaseModel{ID: uuid.New()}}
	posts.byID[post.ID.String()] = post
	svc := NewAdminService(newFakeAdminUserRepo(), posts)

	err := svc.DeletePost(context.Background(), post.ID.String())

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{post.ID}, posts.deleted)
}

func TestAdminDeletePost_NotFound(t *testing.T) {
	svc := NewAdminService(newFakeAdminUserRepo(), newFakeAdminPostRepo())

	err := svc.DeletePost(context.Background(), uuid.New().String())

	require.ErrorIs(t, err, utils.ErrPostNotFound)
}
