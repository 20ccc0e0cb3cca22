package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"lifediary/internal/models/request_models"
	"lifediary/internal/services"
	"lifediary/pkg/apidoc"
	"lifediary/pkg/utils"
)

type JourneyController struct {
	journeyService services.JourneyServiceInterface
}

func NewJourneyController(journeyService services.JourneyServiceInterface) *JourneyController {
	return &JourneyController{
		journeyService: journeyService,
	}
}

// GetJourneysWithCountries answers with data_list at the top level
// instead of the usual data key. Clients already parse it that way.
func (jc *JourneyController) GetJourneysWithCountries(c *gin.Context) {
	journeys, err := jc.journeyService.ListJourneysWithCountries(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if len(journeys) == 0 {
		if endpoint := apidoc.FindGet("get_journeys_with_countries"); endpoint != nil {
			utils.RespondBody(c, endpoint.ExampleBody())
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"res": "good", "data_list": journeys})
}

func (jc *JourneyController) AddJourney(c *gin.Context) {
	var req request_models.AddJourneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, err.Error())
		return
	}

	saved, err := jc.journeyService.AddJourney(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondGood(c, gin.H{"new_saved_data": saved})
}
