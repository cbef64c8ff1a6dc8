package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// FromError maps a business error onto the HTTP surface. Unknown errors
// become a 500 with a generic code.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch be.Code {
	case CodeNotFound:
		Write(c, http.StatusNotFound, be.Code, be.Message)
	case CodeForbidden:
		Write(c, http.StatusForbidden, be.Code, be.Message)
	case CodeInvalidTransition, CodeInvalidRange, CodeValidation:
		Write(c, http.StatusBadRequest, be.Code, be.Message)
	default:
		Write(c, http.StatusBadRequest, be.Code, be.Message)
	}
}
