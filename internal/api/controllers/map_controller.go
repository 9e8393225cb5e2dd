package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibego/internal/models/request_models"
	"vibego/internal/services"
	"vibego/pkg/utils"
)

type MapController struct {
	geocodeService services.GeocodeServiceInterface
}

func NewMapController(geocodeService services.GeocodeServiceInterface) *MapController {
	return &MapController{
		geocodeService: geocodeService,
	}
}

// BuildMapView godoc
// @Summary Resolve an itinerary into map pins
// @Description Geocode every activity and restaurant of an itinerary and compute the viewport
// @Tags Map
// @Accept json
// @Produce json
// @Param request body request_models.MapViewRequest true "Itinerary payload"
// @Success 200 {object} response_models.MapView
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/map-view [post]
func (m *MapController) BuildMapView(c *gin.Context) {
	var req request_models.MapViewRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Itinerary == nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	view, err := m.geocodeService.BuildMapView(c.Request.Context(), req.Itinerary)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Map view built successfully")
}
