package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "verde/internal/errors"
	"verde/internal/pagination"
)

// maxIDLength bounds path ids; generated ids are far shorter.
const maxIDLength = 128

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// parsePathID reads a string id path parameter.
// Returns ErrInvalidInput if the parameter is blank or too long.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (string, error) {
	id := strings.TrimSpace(c.Param(param))
	if id == "" || len(id) > maxIDLength {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// bindPage parses page and page_size from the query string.
func bindPage(c *gin.Context) (pagination.PageRequest, error) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return page, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	page.Defaults()
	return page, nil
}

// invalidInput wraps a binding error as ErrInvalidInput.
func invalidInput(err error) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// respondWithError attaches err to the request for the error middleware to
// log and writes the JSON error response. Errors that are not an *AppError
// are reported as a generic internal error.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	appErr := apperrors.From(err)
	c.AbortWithStatusJSON(appErr.StatusCode, ErrorResponse{
		Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message},
	})
}
