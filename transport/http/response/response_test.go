package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]int{"room_number": 101})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"success","data":{"room_number":101}}`, rec.Body.String())
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithMessage(rec, http.StatusCreated, "User registered successfully.")

	assert.JSONEq(t, `{"status":"success","message":"User registered successfully."}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "titled failure",
			err:      fmt.Errorf("cancel: %w", failure.New(http.StatusConflict, "Booking already canceled", "This booking has already been canceled.")),
			wantCode: http.StatusConflict,
			wantBody: `{"status":"error","message":"This booking has already been canceled.",` +
				`"detail":{"title":"Booking already canceled","message":"This booking has already been canceled."}}`,
		},
		{
			name:     "validation failure",
			err:      failure.Validation("Invalid request", map[string]string{"check_in": "check_in is required"}),
			wantCode: http.StatusBadRequest,
			wantBody: `{"status":"error","message":"Invalid request","detail":{"check_in":"check_in is required"}}`,
		},
		{
			name:     "plain failure",
			err:      failure.Unauthorized("Missing authorization header"),
			wantCode: http.StatusUnauthorized,
			wantBody: `{"status":"error","message":"Missing authorization header"}`,
		},
		{
			name:     "unexpected error outside production",
			err:      errors.New("dial tcp: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"status":"error","message":"An unexpected error occurred.","detail":"dial tcp: connection refused"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
}
