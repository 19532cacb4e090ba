package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"physiowell-web/internal/delivery/http/response"
	"physiowell-web/internal/delivery/http/view"
	"physiowell-web/pkg/apperror"
	"physiowell-web/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
)

const genericErrorMessage = "An unexpected error occurred. Please try again later."

// ErrorHandler turns errors attached with c.Error into an error page, or a
// JSON body under /api. Handlers that already wrote a response are left alone.
func ErrorHandler(renderer *view.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		code := http.StatusInternalServerError
		message := genericErrorMessage

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			code = appErr.Code
			if code < http.StatusInternalServerError {
				message = appErr.Message
			}
		}

		if code >= http.StatusInternalServerError {
			// SECURITY: Never expose internal error details to clients.
			logger.Log.Error("Request failed",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"request_id", response.RequestID(c),
				"error", err,
			)
		}

		respondError(c, renderer, code, message)
	}
}

// Recovery logs a panic and answers with the 500 page (or JSON under /api).
func Recovery(renderer *view.Renderer) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.Error("Panic recovered",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", response.RequestID(c),
			"panic", fmt.Sprint(recovered),
		)
		respondError(c, renderer, http.StatusInternalServerError, genericErrorMessage)
		c.Abort()
	})
}

func respondError(c *gin.Context, renderer *view.Renderer, code int, message string) {
	if IsAPIRequest(c) {
		response.Error(c, code, message, nil)
		return
	}
	renderer.ErrorPage(c, code)
}

// IsAPIRequest reports whether the request targets the JSON API.
func IsAPIRequest(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/api/")
}
