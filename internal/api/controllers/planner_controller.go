package controllers

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type PlannerController struct {
	preferences services.PreferenceServiceInterface
	itineraries services.ItineraryServiceInterface

	// One generation at a time, mirroring the disabled submit control in the
	// client. A busy flag, not a queue: concurrent requests get a 409.
	generating atomic.Bool
}

func NewPlannerController(
	preferences services.PreferenceServiceInterface,
	itineraries services.ItineraryServiceInterface,
) *PlannerController {
	return &PlannerController{
		preferences: preferences,
		itineraries: itineraries,
	}
}

// POST /planner/steps/validate
func (pc *PlannerController) ValidateStepHandler(c *gin.Context) {
	var req request_models.ValidateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := pc.preferences.ValidateStep(req.Step, req.Preferences); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"step": req.Step}, "Step is complete")
}

// GET /planner/interests
func (pc *PlannerController) InterestsHandler(c *gin.Context) {
	utils.RespondSuccess(c, pc.preferences.InterestSuggestions(), "Fetched interest suggestions")
}

// POST /planner/itineraries
func (pc *PlannerController) GenerateHandler(c *gin.Context) {
	var prefs request_models.TripPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := pc.preferences.Validate(prefs); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if !pc.generating.CompareAndSwap(false, true) {
		utils.HandleServiceError(c, utils.ErrGenerationInFlight)
		return
	}
	defer pc.generating.Store(false)

	itinerary, err := pc.itineraries.Generate(c.Request.Context(), prefs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Your personalized travel plan is ready")
}

// GET /planner/itinerary
func (pc *PlannerController) ItineraryHandler(c *gin.Context) {
	view, err := pc.itineraries.CurrentItinerary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Fetched itinerary")
}
