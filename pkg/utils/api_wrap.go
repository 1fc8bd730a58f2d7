package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceFrom(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceFrom(c),
	})
}

// HandleServiceError maps service-layer sentinel errors onto HTTP responses.
// Credential absence gets its own status so the client can send the user to
// settings instead of showing a transient failure toast.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCredentialMissing):
		RespondError(c, http.StatusPreconditionFailed, "API key required. Add your Gemini API key in settings before generating an itinerary.")
	case errors.Is(err, ErrMissingDeparture),
		errors.Is(err, ErrMissingDestination),
		errors.Is(err, ErrMissingDates),
		errors.Is(err, ErrDateOrder),
		errors.Is(err, ErrInvalidTravelers),
		errors.Is(err, ErrInvalidStep),
		errors.Is(err, ErrEmptyAPIKey):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNoItinerary):
		RespondError(c, http.StatusNotFound, "No itinerary found. Please create a new trip plan first.")
	case errors.Is(err, ErrRecordNotFound):
		RespondError(c, http.StatusNotFound, "Record not found")
	case errors.Is(err, ErrGenerationInFlight):
		RespondError(c, http.StatusConflict, "An itinerary is already being generated. Please wait for it to finish.")
	case errors.Is(err, ErrProviderTransport),
		errors.Is(err, ErrProviderRejected),
		errors.Is(err, ErrNoJSONFound),
		errors.Is(err, ErrMalformedJSON):
		RespondError(c, http.StatusBadGateway, "Error generating itinerary: "+err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
