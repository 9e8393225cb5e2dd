package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vibego/internal/models/request_models"
	"vibego/internal/models/response_models"
	"vibego/internal/services"
	"vibego/pkg/utils"
)

type JourneyController struct {
	journeyService services.JourneyServiceInterface
}

func NewJourneyController(journeyService services.JourneyServiceInterface) *JourneyController {
	return &JourneyController{
		journeyService: journeyService,
	}
}

// SaveJourney godoc
// @Summary Save a generated journey
// @Description Persist an itinerary and the soul profile that produced it for the authenticated user
// @Tags Journey
// @Accept json
// @Produce json
// @Param request body request_models.SaveJourneyRequest true "Itinerary and soul profile"
// @Success 200 {object} response_models.SaveJourneyResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys [post]
func (j *JourneyController) SaveJourney(c *gin.Context) {
	var req request_models.SaveJourneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId := c.GetString("user_id")

	id, err := j.journeyService.SaveJourney(c.Request.Context(), userId, &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.SaveJourneyResponse{ID: id}, "Journey saved successfully")
}

// GetJourneysByUserId godoc
// @Summary List journeys of the authenticated user
// @Description Fetch a paginated list of saved journeys, newest first
// @Tags Journey
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {array} response_models.JourneyResponse
// @Security BearerAuth
// @Router /journeys [get]
func (j *JourneyController) GetJourneysByUserId(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	userId := c.GetString("user_id")

	journeys, err := j.journeyService.GetListOfJourneyByUserId(c.Request.Context(), userId, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, journeys, "Journeys fetched successfully")
}

// GetJourneyById godoc
// @Summary Get journey details by ID
// @Description Fetch the full stored journey document, owned by the authenticated user
// @Tags Journey
// @Accept json
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Success 200 {object} response_models.JourneyDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys/{journeyId} [get]
func (j *JourneyController) GetJourneyById(c *gin.Context) {
	journeyId := c.Param("journeyId")
	if journeyId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Journey ID is required")
		return
	}

	userId := c.GetString("user_id")

	journey, err := j.journeyService.GetJourneyById(c.Request.Context(), userId, journeyId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, journey, "Journey details fetched successfully")
}

// DeleteJourney godoc
// @Summary Delete a journey
// @Description Remove a saved journey owned by the authenticated user
// @Tags Journey
// @Accept json
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys/{journeyId} [delete]
func (j *JourneyController) DeleteJourney(c *gin.Context) {
	journeyId := c.Param("journeyId")
	if journeyId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Journey ID is required")
		return
	}

	userId := c.GetString("user_id")

	if err := j.journeyService.DeleteJourney(c.Request.Context(), userId, journeyId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Journey deleted successfully")
}

// ToggleItemComplete godoc
// @Summary Toggle a checklist item
// @Description Flip the completion state of one itinerary item on a saved journey
// @Tags Journey
// @Accept json
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Param request body request_models.ToggleProgressRequest true "Checklist item ID"
// @Success 200 {object} response_models.ToggleProgressResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys/{journeyId}/progress [post]
func (j *JourneyController) ToggleItemComplete(c *gin.Context) {
	journeyId := c.Param("journeyId")
	if journeyId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Journey ID is required")
		return
	}

	var req request_models.ToggleProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == "" {
		utils.RespondError(c, http.StatusBadRequest, "item_id is required")
		return
	}

	userId := c.GetString("user_id")

	result, err := j.journeyService.ToggleItemComplete(c.Request.Context(), userId, journeyId, req.ItemID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Progress updated")
}
