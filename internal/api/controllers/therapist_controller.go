package controllers

import (
	"github.com/gin-gonic/gin"

	"serenely/internal/services"
	"serenely/pkg/utils"
)

type TherapistController struct {
	therapistService services.TherapistServiceInterface
}

func NewTherapistController(therapistService services.TherapistServiceInterface) *TherapistController {
	return &TherapistController{
		therapistService: therapistService,
	}
}

// List godoc
// @Summary List the therapist directory
// @Tags Therapists
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /therapists [get]
func (t *TherapistController) List(c *gin.Context) {
	therapists, err := t.therapistService.ListTherapists(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, therapists, "")
}
