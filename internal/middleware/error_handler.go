package middleware

import (
	"myCardVault/pkg/logger"
	"net/http"

	jsonres "myCardVault/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every unhandled error as the standard error
// envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("request failed", "error", err, "path", c.Request().URL.Path)
	}

	errCode := "INTERNAL_ERROR"
	switch code {
	case http.StatusBadRequest:
		errCode = "BAD_REQUEST"
	case http.StatusUnauthorized:
		errCode = "UNAUTHORIZED"
	case http.StatusForbidden:
		errCode = "FORBIDDEN"
	case http.StatusNotFound:
		errCode = "NOT_FOUND"
	}

	if jsonErr := c.JSON(code, jsonres.Error(errCode, message, nil)); jsonErr != nil {
		logger.Error("failed to write error response", jsonErr)
	}
}
