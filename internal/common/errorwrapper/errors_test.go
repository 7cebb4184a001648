package errorwrapper

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name            string
		originalError   error
		message         string
		expectedMessage string
	}{
		{
			name:            "wrap simple error",
			originalError:   errors.New("original error"),
			message:         "wrapper message",
			expectedMessage: "wrapper message: original error",
		},
		{
			name:            "empty wrapper message",
			originalError:   errors.New("original error"),
			message:         "",
			expectedMessage: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrappedError := WrapError(tt.originalError, tt.message)
			assert.Error(t, wrappedError)
			assert.Equal(t, tt.expectedMessage, wrappedError.Error())
			assert.ErrorIs(t, wrappedError, tt.originalError)
		})
	}
}

func TestWrapError_Nil(t *testing.T) {
	assert.NoError(t, WrapError(nil, "wrapper message"))
	assert.NoError(t, WrapErrorf(nil, "wrapper %d", 1))
}

func TestMissingFieldsError(t *testing.T) {
	err := &MissingFieldsError{Fields: []string{"base_url", "page_password"}}

	assert.Equal(t, "missing required configuration: base_url, page_password", err.Error())
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestNetworkError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := NewNetworkError("https://x.test/a.pdf", "HEAD request failed", inner)

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "https://x.test/a.pdf")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIsHTTPStatus(t *testing.T) {
	err := WrapError(NewHTTPErrorWithURL(http.StatusForbidden, "forbidden", "https://x.test"), "login")

	assert.True(t, IsHTTPStatus(err, http.StatusForbidden))
	assert.False(t, IsHTTPStatus(err, http.StatusNotFound))
	assert.False(t, IsHTTPStatus(errors.New("plain"), http.StatusForbidden))
}
