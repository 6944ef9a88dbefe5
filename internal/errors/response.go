package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard failure body. Detail carries the
// user-facing explanation the submitting client surfaces verbatim.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// RespondWithError writes a failure response.
func RespondWithError(c *gin.Context, statusCode int, errorCode string, detail string) {
	c.JSON(statusCode, ErrorResponse{
		Error:  errorCode,
		Detail: detail,
	})
}

// Shortcut helpers for the common failure shapes.

func BadRequest(c *gin.Context, errorCode string, detail string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, detail)
}

func NotFound(c *gin.Context, errorCode string, detail string) {
	RespondWithError(c, http.StatusNotFound, errorCode, detail)
}

func InternalError(c *gin.Context, detail string) {
	if detail == "" {
		detail = "Error processing order"
	}
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, detail)
}
