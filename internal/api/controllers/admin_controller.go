package controllers

import (
	"github.com/gin-gonic/gin"

	"serenely/internal/services"
	"serenely/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// ListUsers godoc
// @Summary List all users
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (a *AdminController) ListUsers(c *gin.Context) {
	users, err := a.adminService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "")
}

// DeleteUser godoc
// @Summary Delete a non-admin user and everything they own
// @Tags Admin
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/users/{userId} [delete]
func (a *AdminController) DeleteUser(c *gin.Context) {
	if err := a.adminService.DeleteUser(c.Request.Context(), c.Param("userId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User deleted")
}

// ListPosts godoc
// @Summary List all posts with their authors
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/posts [get]
func (a *AdminController) ListPosts(c *gin.Context) {
	posts, err := a.adminService.ListPosts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "")
}

// DeletePost godoc
// @Summary Delete any post and its comments
// @Tags Admin
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/posts/{postId} [delete]
func (a *AdminController) DeletePost(c *gin.Context) {
	if err := a.adminService.DeletePost(c.Request.Context(), c.Param("postId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Post and associated comments deleted")
}
