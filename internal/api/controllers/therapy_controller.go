package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"serenely/internal/models/request_models"
	"serenely/internal/models/response_models"
	"serenely/internal/services"
	"serenely/pkg/utils"
)

type TherapyController struct {
	therapyService services.TherapyServiceInterface
}

func NewTherapyController(therapyService services.TherapyServiceInterface) *TherapyController {
	return &TherapyController{
		therapyService: therapyService,
	}
}

// Chat godoc
// @Summary Send a chat message to the assistant
// @Description Runs one chat turn and returns the assistant's reply
// @Tags Therapy
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Chat payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /therapy/chat [post]
func (t *TherapyController) Chat(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Message is required")
		return
	}

	reply, err := t.therapyService.SendMessage(c.Request.Context(), userID, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ChatResponse{Message: reply}, "")
}

// ListEntries godoc
// @Summary List the caller's journal entries
// @Tags Therapy
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /therapy/entries [get]
func (t *TherapyController) ListEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	entries, err := t.therapyService.ListEntries(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "")
}

// GetEntry godoc
// @Summary Fetch one journal entry owned by the caller
// @Tags Therapy
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /therapy/entries/{id} [get]
func (t *TherapyController) GetEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	entry, err := t.therapyService.GetEntry(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "")
}

// ListMessages godoc
// @Summary List today's conversation for the caller
// @Tags Therapy
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /therapy/messages [get]
func (t *TherapyController) ListMessages(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	messages, err := t.therapyService.ListTodayMessages(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "")
}
