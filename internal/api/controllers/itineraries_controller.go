package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type ItinerariesController struct {
	saved services.SavedItineraryServiceInterface
}

func NewItinerariesController(saved services.SavedItineraryServiceInterface) *ItinerariesController {
	return &ItinerariesController{saved: saved}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// POST /itineraries
func (ic *ItinerariesController) SaveHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	var req request_models.SaveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	summary, err := ic.saved.SaveCurrent(c.Request.Context(), userID, req.Title)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Itinerary saved")
}

// GET /itineraries
func (ic *ItinerariesController) ListHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	summaries, err := ic.saved.List(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summaries, "Fetched saved itineraries")
}

// GET /itineraries/:id
func (ic *ItinerariesController) GetHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary id")
		return
	}

	itinerary, err := ic.saved.Get(c.Request.Context(), userID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Fetched saved itinerary")
}

// DELETE /itineraries/:id
func (ic *ItinerariesController) DeleteHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary id")
		return
	}

	if err := ic.saved.Delete(c.Request.Context(), userID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted")
}
