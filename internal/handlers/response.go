package handlers

import (
	"log/slog"
	"net/http"

	"github.com/cgcym1234/authserver/internal/apperrors"
	"github.com/cgcym1234/authserver/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Response is the envelope every JSON endpoint returns. Domain errors ride an
// HTTP 200 with a non-zero status; only the middleware chain uses transport
// status codes.
type Response struct {
	Status  apperrors.Code `json:"status"`
	Message string         `json:"message"`
	Data    interface{}    `json:"data"`
}

// OK writes a success envelope with the given payload (nil for empty success).
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status:  apperrors.CodeOK,
		Message: apperrors.CodeOK.Desc(),
		Data:    data,
	})
}

// Fail writes a failure envelope. Errors without a domain code collapse into
// CodeCustom; their details are logged but not leaked to the client.
func Fail(c *gin.Context, err error) {
	apiErr, ok := apperrors.AsAPIError(err)
	if !ok {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Unclassified handler error", slog.String("error", err.Error()))
		apiErr = apperrors.New(apperrors.CodeCustom)
	}
	c.JSON(http.StatusOK, Response{
		Status:  apiErr.Code,
		Message: apiErr.Message,
		Data:    nil,
	})
}

// BadRequest writes a validation failure envelope before any persistence is
// attempted.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{
		Status:  apperrors.CodeCustom,
		Message: message,
		Data:    nil,
	})
}
