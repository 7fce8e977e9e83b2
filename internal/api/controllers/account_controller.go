package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"serenely/internal/models/request_models"
	"serenely/internal/services"
	"serenely/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Signup godoc
// @Summary Register a new account
// @Description Creates an unverified user and emails a verification link
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /accounts/signup [post]
func (a *AccountController) Signup(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.CreateAccount(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "User created successfully. Please check your email to verify your account.")
}

// Verify godoc
// @Summary Verify an email address
// @Description Consumes the emailed token and redirects to the sign-in page
// @Tags Accounts
// @Param token query string true "Verification token"
// @Success 307
// @Failure 400 {object} utils.APIResponse
// @Router /verify [get]
func (a *AccountController) Verify(c *gin.Context) {
	token := c.Query("token")

	if err := a.accountService.VerifyEmail(c.Request.Context(), token); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, "/signin?verified=true")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}
