package services

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"serenely/internal/models/db_models"
	"serenely/internal/models/request_models"
	"serenely/internal/models/response_models"
	"serenely/internal/repositories"
	"serenely/pkg/uploads"
	"serenely/pkg/utils"
)

type PostServiceInterface interface {
	CreatePost(ctx context.Context, userID uuid.UUID, content string, image *multipart.FileHeader) (*response_models.PostResponse, error)
	ListFeed(ctx context.Context) ([]response_models.PostResponse, error)
	PatchPost(ctx context.Context, userID uuid.UUID, role, postID string, patch request_models.PatchPostRequest) (*response_models.PostResponse, error)
	DeletePost(ctx context.Context, userID uuid.UUID, role, postID string) error
}

type PostService struct {
	postRepo repositories.PostRepository
	images   uploads.Store
}

func NewPostService(postRepo repositories.PostRepository, images uploads.Store) PostServiceInterface {
	return &PostService{
		postRepo: postRepo,
		images:   images,
	}
}

func (p *PostService) CreatePost(ctx context.Context, userID uuid.UUID, content string, image *multipart.FileHeader) (*response_models.PostResponse, error) {
	if content == "" {
		return nil, utils.ErrMissingFields
	}

	var imageURL *string
	if image != nil {
		url, err := p.images.Save(image)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		imageURL = &url
	}

	post := &db_models.Post{
		UserID:   userID,
		Content:  content,
		ImageURL: imageURL,
	}
	if err := p.postRepo.Insert(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}

	created, err := p.postRepo.FindById(ctx, post.ID.String())
	if err != nil || created == nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toPostResponse(created)
	return &resp, nil
}

func (p *PostService) ListFeed(ctx context.Context) ([]response_models.PostResponse, error) {
	posts, err := p.postRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toPostResponse(&posts[i]))
	}
	return out, nil
}

func (p *PostService) PatchPost(ctx context.Context, userID uuid.UUID, role, postID string, patch request_models.PatchPostRequest) (*response_models.PostResponse, error) {
	post, err := p.postRepo.FindById(ctx, postID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	switch {
	case patch.Comment != nil && *patch.Comment != "":
		comment := &db_models.Comment{
			PostID:  post.ID,
			UserID:  userID,
			Content: *patch.Comment,
		}
		if err := p.postRepo.AddComment(ctx, comment); err != nil {
			return nil, utils.ErrDatabaseError
		}
	case patch.Content != nil && *patch.Content != "":
		if post.UserID != userID && role != db_models.RoleAdmin {
			return nil, utils.ErrForbidden
		}
		if err := p.postRepo.UpdateContent(ctx, post.ID, *patch.Content); err != nil {
			return nil, utils.ErrDatabaseError
		}
	default:
		return nil, utils.ErrMissingFields
	}

	updated, err := p.postRepo.FindById(ctx, postID)
	if err != nil || updated == nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toPostResponse(updated)
	return &resp, nil
}

func (p *PostService) DeletePost(ctx context.Context, userID uuid.UUID, role, postID string) error {
	post, err := p.postRepo.FindById(ctx, postID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if post == nil {
		return utils.ErrPostNotFound
	}

	if post.UserID != userID && role != db_models.RoleAdmin {
		return utils.ErrForbidden
	}

	if err := p.postRepo.DeleteCascade(ctx, post.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toPostResponse(post *db_models.Post) response_models.PostResponse {
	comments := make([]response_models.CommentResponse, 0, len(post.Comments))
	for _, c := range post.Comments {
		comments = append(comments, response_models.CommentResponse{
			ID:        c.ID.String(),
			Content:   c.Content,
			Author:    c.User.Name,
			CreatedAt: c.CreatedAt,
		})
	}
	return response_models.PostResponse{
		ID:        post.ID.String(),
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		Author:    post.User.Name,
		CreatedAt: post.CreatedAt,
		Comments:  comments,
	}
}
