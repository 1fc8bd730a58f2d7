package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type DestinationsController struct {
	destinations services.DestinationServiceInterface
}

func NewDestinationsController(destinations services.DestinationServiceInterface) *DestinationsController {
	return &DestinationsController{destinations: destinations}
}

// GET /destinations/suggestions?interests=History,Food&limit=6
func (dc *DestinationsController) SuggestionsHandler(c *gin.Context) {
	var interests []string
	if raw := c.Query("interests"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				interests = append(interests, trimmed)
			}
		}
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if err != nil || limit < 1 || limit > 50 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-50)")
		return
	}

	suggestions, err := dc.destinations.SuggestByInterests(c.Request.Context(), interests, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestions, "Fetched destination suggestions")
}

// POST /destinations
func (dc *DestinationsController) CreateHandler(c *gin.Context) {
	var req request_models.DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := dc.destinations.AddDestination(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, created, "Destination added")
}
