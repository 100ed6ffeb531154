package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeRateLimited, http.StatusTooManyRequests},
		{"ERR_SOMETHING_NEW", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GetHTTPStatus(tt.code), tt.code)
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		domain   string
		expected string
	}{
		{"NOT_FOUND", ErrCodeNotFound},
		{"ALREADY_EXISTS", ErrCodeAlreadyExists},
		{"INVALID_CREDENTIALS", ErrCodeUnauthorized},
		{"INVALID_PRODUCT", ErrCodeInvalidInput},
		{"INVALID_ITEMS", ErrCodeInvalidInput},
		{"INVALID_STATUS", ErrCodeInvalidInput},
		{"PRODUCT_UNAVAILABLE", ErrCodeInvalidInput},
		{"ERR_NOT_FOUND", ErrCodeNotFound},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeErrorCode(tt.domain), tt.domain)
	}
}

func TestLoginFailureMapsToUnauthorized(t *testing.T) {
	code := NormalizeErrorCode("INVALID_CREDENTIALS")
	assert.Equal(t, http.StatusUnauthorized, GetHTTPStatus(code))
}
