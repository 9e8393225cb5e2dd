package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibego/internal/models/request_models"
	"vibego/internal/services"
	"vibego/pkg/utils"
)

type OracleController struct {
	oracleService services.OracleServiceInterface
}

func NewOracleController(oracleService services.OracleServiceInterface) *OracleController {
	return &OracleController{
		oracleService: oracleService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a soulful travel itinerary
// @Description Turn a traveler's soul profile into a complete day-by-day itinerary
// @Tags Oracle
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Soul profile payload"
// @Success 200 {object} response_models.Itinerary
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/generate-itinerary [post]
func (o *OracleController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := o.oracleService.GenerateItinerary(c.Request.Context(), &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}
