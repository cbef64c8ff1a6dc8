package httperr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestFromError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", ErrNotFound("appointment"), http.StatusNotFound, CodeNotFound},
		{"forbidden", ErrForbidden("nope"), http.StatusForbidden, CodeForbidden},
		{"invalid transition", ErrInvalidTransition("booked"), http.StatusBadRequest, CodeInvalidTransition},
		{"invalid range", ErrInvalidRange("bad window"), http.StatusBadRequest, CodeInvalidRange},
		{"validation", ErrValidation("missing purpose"), http.StatusBadRequest, CodeValidation},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			FromError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantCode)
		})
	}
}

func TestBusinessCode(t *testing.T) {
	assert.Equal(t, CodeNotFound, BusinessCode(ErrNotFound("user")))
	assert.Equal(t, "", BusinessCode(errors.New("plain")))

	wrapped := errors.Join(errors.New("context"), ErrForbidden("nope"))
	assert.Equal(t, CodeForbidden, BusinessCode(wrapped))
}

func TestInvalidTransitionMessage(t *testing.T) {
	err := ErrInvalidTransition("completed")
	assert.Contains(t, err.Error(), `"completed"`)
}
