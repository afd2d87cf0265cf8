package service_test

import (
	"context"
	"errors"
	"testing"

	"hotel/config"
	"hotel/infras/jwt"
	jwtMocks "hotel/infras/jwt/mocks"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/auth/model/dto"
	"hotel/internal/domains/auth/service"
	userMocks "hotel/internal/domains/user/mocks"
	userModel "hotel/internal/domains/user/model"
	userDto "hotel/internal/domains/user/model/dto"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// bcrypt hash of "password"
const hashedPassword = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func validUser() userModel.User {
	return userModel.User{
		ID:       "user-id-123",
		Name:     "Test User",
		Email:    "test@example.com",
		Password: hashedPassword,
		CPF:      "12345678901",
		Role:     constant.RoleClient,
		Active:   true,
		Metadata: gModel.NewMetadata(timezone.Now(), "system"),
	}
}

func newService(t *testing.T) (*userMocks.MockUser, *jwtMocks.MockJWT, service.Auth) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	return mockUserRepo, mockJWT, service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)
}

func TestAuthService_Register(t *testing.T) {
	req := userDto.RegisterRequest{
		Name:      "Test User",
		Email:     "test@example.com",
		Password:  "password123",
		CPF:       "123.456.789-01",
		BirthDate: "20/05/1990",
	}

	tests := []struct {
		name      string
		setupMock func(repo *userMocks.MockUser)
		wantErr   error
	}{
		{
			name: "successful registration",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, "12345678901", user.CPF)
						assert.Equal(t, constant.RoleClient, user.Role)
						assert.NotEqual(t, req.Password, user.Password)

						return nil
					})
			},
		},
		{
			name: "email taken",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: userModel.ErrEmailTaken,
		},
		{
			name: "cpf taken",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: userModel.ErrCPFTaken,
		},
		{
			name: "concurrent insert hits unique index",
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantErr: userModel.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, svc := newService(t)
			tt.setupMock(repo)

			err := svc.Register(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestAuthService_Token(t *testing.T) {
	user := validUser()
	pair := &jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", TokenType: "Bearer", ExpiresIn: 3600}

	tests := []struct {
		name      string
		req       dto.TokenRequest
		setupMock func(repo *userMocks.MockUser, mockJWT *jwtMocks.MockJWT)
		wantErr   error
	}{
		{
			name: "successful login",
			req:  dto.TokenRequest{Email: user.Email, Password: "password"},
			setupMock: func(repo *userMocks.MockUser, mockJWT *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				mockJWT.EXPECT().GenerateTokenPair(gomock.Any(), user.ID, user.Email, user.Role).Return(pair, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Contains(t, fields, userModel.FieldLastLogin)

						return nil
					})
			},
		},
		{
			name: "unknown email",
			req:  dto.TokenRequest{Email: "nobody@example.com", Password: "password"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantErr: userModel.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			req:  dto.TokenRequest{Email: user.Email, Password: "wrongpassword"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantErr: userModel.ErrInvalidCredentials,
		},
		{
			name: "inactive user",
			req:  dto.TokenRequest{Email: user.Email, Password: "password"},
			setupMock: func(repo *userMocks.MockUser, _ *jwtMocks.MockJWT) {
				inactive := validUser()
				inactive.Active = false

				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantErr: userModel.ErrInactiveUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockJWT, svc := newService(t)
			tt.setupMock(repo, mockJWT)

			res, err := svc.Token(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "refresh-token", res.RefreshToken)
		})
	}

	t.Run("token generation error", func(t *testing.T) {
		repo, mockJWT, svc := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		mockJWT.EXPECT().GenerateTokenPair(gomock.Any(), user.ID, user.Email, user.Role).Return(nil, errors.New("signing failed"))

		_, err := svc.Token(context.Background(), dto.TokenRequest{Email: user.Email, Password: "password"})
		assert.Error(t, err)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	user := validUser()
	user.Role = constant.RoleStaff

	t.Run("reissues with current role", func(t *testing.T) {
		repo, mockJWT, svc := newService(t)

		mockJWT.EXPECT().ValidateToken(gomock.Any(), "valid-refresh-token", jwt.RefreshToken).
			Return(&jwt.Claims{UserID: user.ID, Role: constant.RoleClient, Type: jwt.RefreshToken}, nil)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		mockJWT.EXPECT().GenerateTokenPair(gomock.Any(), user.ID, user.Email, constant.RoleStaff).
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "valid-refresh-token"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, mockJWT, svc := newService(t)

		mockJWT.EXPECT().ValidateToken(gomock.Any(), "bad", jwt.RefreshToken).Return(nil, jwt.ErrInvalidToken)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})
		assert.ErrorIs(t, err, userModel.ErrInvalidToken)
	})

	t.Run("deactivated since issue", func(t *testing.T) {
		repo, mockJWT, svc := newService(t)

		inactive := validUser()
		inactive.Active = false

		mockJWT.EXPECT().ValidateToken(gomock.Any(), "valid-refresh-token", jwt.RefreshToken).
			Return(&jwt.Claims{UserID: inactive.ID, Type: jwt.RefreshToken}, nil)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "valid-refresh-token"})
		assert.ErrorIs(t, err, userModel.ErrInactiveUser)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	user := validUser()

	t.Run("updates hash", func(t *testing.T) {
		repo, _, svc := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.NotEqual(t, hashedPassword, fields[userModel.FieldPassword])

				return nil
			})

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "new-password"}, user.ID)
		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		repo, _, svc := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{CurrentPassword: "nope-nope", NewPassword: "new-password"}, user.ID)
		assert.ErrorIs(t, err, service.ErrWrongCurrentPassword)
	})
}
