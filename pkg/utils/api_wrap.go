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

func traceID(c *gin.Context) string {
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
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service-layer sentinel errors onto HTTP statuses.
// Every failure collapses to the single error envelope; no partial bodies.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnknownItemID):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrIncompleteProfile):
		RespondError(c, http.StatusBadRequest,
			"The oracle received an incomplete vision. Critical data was missing. Please try again.")
	case errors.Is(err, ErrLegacyRequestShape):
		RespondError(c, http.StatusBadRequest,
			"This request shape is deprecated; send {\"soul_profile\": {...}} instead.")
	case errors.Is(err, ErrUpstreamCredentials):
		RespondError(c, http.StatusInternalServerError,
			"Mystical connection failed. Please verify the generation API key.")
	case errors.Is(err, ErrUpstreamQuota):
		RespondError(c, http.StatusInternalServerError,
			"Generation quota exceeded. Please check your plan and billing details.")
	case errors.Is(err, ErrGenerationFailed):
		RespondError(c, http.StatusInternalServerError,
			"A cosmic disturbance interrupted the connection. Please try again.")
	case errors.Is(err, ErrMapsCredentialMissing):
		RespondError(c, http.StatusInternalServerError, "Maps API key is missing")
	case errors.Is(err, ErrJourneyNotFound):
		RespondError(c, http.StatusNotFound, "Journey not found")
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
