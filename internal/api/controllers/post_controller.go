package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"serenely/internal/models/request_models"
	"serenely/internal/services"
	"serenely/pkg/utils"
)

type PostController struct {
	postService services.PostServiceInterface
}

func NewPostController(postService services.PostServiceInterface) *PostController {
	return &PostController{
		postService: postService,
	}
}

// ListFeed godoc
// @Summary List all posts, newest first
// @Tags Posts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /posts [get]
func (p *PostController) ListFeed(c *gin.Context) {
	posts, err := p.postService.ListFeed(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "")
}

// Create godoc
// @Summary Create a post
// @Description Multipart form with a content field and an optional image
// @Tags Posts
// @Accept multipart/form-data
// @Produce json
// @Param content formData string true "Post text"
// @Param image formData file false "Attached image"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts [post]
func (p *PostController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	content := c.PostForm("content")

	// image is optional; FormFile errors just mean none was attached
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	post, err := p.postService.CreatePost(c.Request.Context(), userID, content, image)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, post, "Post created")
}

// Patch godoc
// @Summary Edit a post or attach a comment
// @Description Body with "content" edits the post (owner only); "comment" adds a comment
// @Tags Posts
// @Accept json
// @Produce json
// @Param id query string true "Post ID"
// @Param request body request_models.PatchPostRequest true "Patch payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts [patch]
func (p *PostController) Patch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	postID := c.Query("id")
	if postID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing post ID")
		return
	}

	var req request_models.PatchPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	post, err := p.postService.PatchPost(c.Request.Context(), userID, currentRole(c), postID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post updated")
}

// Delete godoc
// @Summary Delete a post and its comments
// @Tags Posts
// @Produce json
// @Param id query string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /posts [delete]
func (p *PostController) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	postID := c.Query("id")
	if postID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing post ID")
		return
	}

	if err := p.postService.DeletePost(c.Request.Context(), userID, currentRole(c), postID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Post deleted")
}
