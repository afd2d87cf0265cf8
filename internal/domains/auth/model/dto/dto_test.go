package dto_test

import (
	"testing"

	"hotel/infras/jwt"
	"hotel/internal/domains/auth/model/dto"
	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    3600,
	}

	var response dto.TokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, dto.TokenResponse{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    3600,
	}, response)
}

func TestChangePasswordRequest_RejectsSamePassword(t *testing.T) {
	req := dto.ChangePasswordRequest{CurrentPassword: "password123", NewPassword: "password123"}

	err := validator.ValidateStruct(&req)
	require.Error(t, err)

	fail, ok := failure.As(err)
	require.True(t, ok)
	assert.Contains(t, fail.Fields, "new_password")
}
