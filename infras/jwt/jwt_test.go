package jwt_test

import (
	"context"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel/mocks"

	goJWT "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() (jwt.JWT, *config.Config) {
	cfg := &config.Config{}
	cfg.App.Name = "hotel"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg, mocks.NewOtel()), cfg
}

func TestGenerateAndValidate(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, "user-1", "ana@example.com", "CLIENT")
	require.NoError(t, err)

	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.ValidateToken(ctx, pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "CLIENT", claims.Role)
	assert.NotEmpty(t, claims.TokenID)

	_, err = svc.ValidateToken(ctx, pair.AccessToken, jwt.RefreshToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken(ctx, "not-a-token", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_WrongType(t *testing.T) {
	svc, cfg := newService()
	cfg.JWT.RefreshSecret = cfg.JWT.AccessSecret

	pair, err := svc.GenerateTokenPair(context.Background(), "user-1", "ana@example.com", "CLIENT")
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestValidateToken_Expired(t *testing.T) {
	svc, cfg := newService()

	claims := jwt.Claims{
		UserID: "user-1",
		Type:   jwt.AccessToken,
		RegisteredClaims: goJWT.RegisteredClaims{
			ExpiresAt: goJWT.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}

	signed, err := goJWT.NewWithClaims(goJWT.SigningMethodHS256, claims).SignedString([]byte(cfg.JWT.AccessSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), signed, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateToken_RejectsWrongType(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, "user-1", "ana@example.com", "STAFF")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, pair.RefreshToken, jwt.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "STAFF", claims.Role)

	_, err = svc.ValidateToken(ctx, pair.AccessToken, jwt.RefreshToken)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
		err      error
	}{
		{name: "bearer token", header: "Bearer abc.def", expected: "abc.def"},
		{name: "lower case scheme", header: "bearer abc.def", expected: "abc.def"},
		{name: "missing", header: "", err: jwt.ErrMissingHeader},
		{name: "basic auth", header: "Basic dXNlcg==", err: jwt.ErrMalformedHeader},
		{name: "scheme only", header: "Bearer ", err: jwt.ErrMalformedHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, token)
		})
	}
}
