package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type SettingsController struct {
	settings services.SettingsServiceInterface
}

func NewSettingsController(settings services.SettingsServiceInterface) *SettingsController {
	return &SettingsController{settings: settings}
}

// GET /settings/api-key
func (sc *SettingsController) StatusHandler(c *gin.Context) {
	present, err := sc.settings.HasAPIKey(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	masked := ""
	if present {
		masked, err = sc.settings.MaskedAPIKey(c.Request.Context())
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
	}

	utils.RespondSuccess(c, gin.H{"present": present, "masked_key": masked}, "Fetched API key status")
}

// PUT /settings/api-key
func (sc *SettingsController) SaveHandler(c *gin.Context) {
	var req request_models.APIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := sc.settings.SaveAPIKey(c.Request.Context(), req.APIKey); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "API key saved")
}

// DELETE /settings/api-key
func (sc *SettingsController) DeleteHandler(c *gin.Context) {
	if err := sc.settings.DeleteAPIKey(c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "API key removed")
}
