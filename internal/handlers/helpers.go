package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/logger"
	"spendtrack/internal/models"
)

// ErrorResponse is the shape of every error payload.
type ErrorResponse struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details,omitempty"`
	} `json:"error"`
}

// parsePathID parses a uint path parameter. A non-numeric or negative value
// is a malformed request.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrBadRequest, "Invalid "+param)
	}
	return uint(id), nil
}

// bindJSON binds the request body into dst. Binding failures are
// validation errors: the request was parseable HTTP but the payload is
// unprocessable.
func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apperrors.WithDetails(apperrors.ErrValidation,
			map[string]any{"reason": err.Error()})
	}
	return nil
}

// bindQuery binds query parameters into dst. Binding failures are
// malformed-request errors, unlike body validation failures.
func bindQuery(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindQuery(dst); err != nil {
		return apperrors.WithMessage(apperrors.ErrBadRequest, err.Error())
	}
	return nil
}

// apperrBadRequest converts an ordinary error into a malformed-request
// AppError carrying the error's text.
func apperrBadRequest(err error) error {
	return apperrors.WithMessage(apperrors.ErrBadRequest, err.Error())
}

// parseDate converts an already-validated YYYY-MM-DD query string into a
// *models.Date, or nil when absent.
func parseDate(s string) *models.Date {
	if s == "" {
		return nil
	}
	d, err := models.ParseDate(s)
	if err != nil {
		return nil
	}
	return &d
}

// respondWithError writes a consistent JSON error envelope. If the error is
// an *AppError it uses the error's status code, code, message, and details.
// Otherwise it logs the unexpected error and returns a generic internal
// server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{"error": appErr})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{"error": apperrors.ErrInternalServer})
}
