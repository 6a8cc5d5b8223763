package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"grubdash/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// ErrorHandler renders every error as {"error": message}. Classified errors keep their
// message; routing errors get the path in the message; anything else is logged and
// reported as a 500 without detail.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := classify(err, c)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, ErrorResponse{Error: message})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}

func classify(err error, c echo.Context) (int, string) {
	var validation *errs.ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest, validation.Message
	}

	var notFound *errs.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound, notFound.Message
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		req := c.Request()
		switch he.Code {
		case http.StatusNotFound:
			return he.Code, "Path not found: " + req.URL.Path
		case http.StatusMethodNotAllowed:
			return he.Code, fmt.Sprintf("%s not allowed for %s", req.Method, req.URL.Path)
		case http.StatusInternalServerError:
			return he.Code, internalErrorMessage
		default:
			return he.Code, fmt.Sprint(he.Message)
		}
	}

	return http.StatusInternalServerError, internalErrorMessage
}
