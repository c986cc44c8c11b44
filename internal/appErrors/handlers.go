package appErrors

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - standard error envelope
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler - error responder for gin
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError writes the error envelope. Errors with 5xx codes are logged;
// the wrapped internal error is never serialized into the response.
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		log.Printf("Server error: %v", err)
	}

	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}

// HandleError - error handling for a gin context
func HandleError(c *gin.Context, err *AppError) {
	handler := &GinErrorHandler{Debug: true}
	handler.HandleGinError(c, err)
}
