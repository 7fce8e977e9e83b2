package services

import (
	"context"

	"serenely/internal/models/db_models"
	"serenely/internal/models/response_models"
	"serenely/internal/repositories"
	"serenely/pkg/utils"
)

type AdminServiceInterface interface {
	ListUsers(ctx context.Context) ([]response_models.UserResponse, error)
	DeleteUser(ctx context.Context, userID string) error
	ListPosts(ctx context.Context) ([]response_models.AdminPostResponse, error)
	DeletePost(ctx context.Context, postID string) error
}

type AdminService struct {
	userRepo repositories.UserRepository
	postRepo repositories.PostRepository
}

func NewAdminService(userRepo repositories.UserRepository, postRepo repositories.PostRepository) AdminServiceInterface {
	return &AdminService{
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

func (a *AdminService) ListUsers(ctx context.Context) ([]response_models.UserResponse, error) {
	users, err := a.userRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, response_models.UserResponse{
			ID:         u.ID.String(),
			Name:       u.Name,
			Email:      u.Email,
			Role:       u.Role,
			IsVerified: u.IsVerified(),
			CreatedAt:  u.CreatedAt,
		})
	}
	return out, nil
}

func (a *AdminService) DeleteUser(ctx context.Context, userID string) error {
	user, err := a.userRepo.FindById(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}

	// admin accounts cannot be removed through the dashboard
	if user.Role == db_models.RoleAdmin {
		return utils.ErrForbidden
	}

	if err := a.userRepo.DeleteCascade(ctx, user.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AdminService) ListPosts(ctx context.Context) ([]response_models.AdminPostResponse, error) {
	posts, err := a.postRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.AdminPostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, response_models.AdminPostResponse{
			ID:          p.ID.String(),
			UserID:      p.UserID.String(),
			Content:     p.Content,
			ImageURL:    p.ImageURL,
			AuthorName:  p.User.Name,
			AuthorEmail: p.User.Email,
			CreatedAt:   p.CreatedAt,
		})
	}
	return out, nil
}

func (a *AdminService) DeletePost(ctx context.Context, postID string) error {
	post, err := a.postRepo.FindById(ctx, postID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if post == nil {
		return utils.ErrPostNotFound
	}

	if err := a.postRepo.DeleteCascade(ctx, post.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
