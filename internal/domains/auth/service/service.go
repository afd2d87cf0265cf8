package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Auth=MockAuthService

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel"
	"hotel/internal/domains/auth/model/dto"
	userModel "hotel/internal/domains/user/model"
	userDto "hotel/internal/domains/user/model/dto"
	userRepo "hotel/internal/domains/user/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/password"
	"hotel/shared/timezone"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

var ErrWrongCurrentPassword = failure.New(http.StatusBadRequest, "Invalid password", "The current password is incorrect.")

type Auth interface {
	Register(ctx context.Context, req userDto.RegisterRequest) error
	Token(ctx context.Context, req dto.TokenRequest) (dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.TokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func fieldFilter(field string, value any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    userModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) Register(ctx context.Context, req userDto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := req.ToModel(hashedPassword)
	if err != nil {
		return failure.BadRequest(err)
	}

	exists, err := s.userRepo.Exist(ctx, fieldFilter(userModel.FieldEmail, user.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if email exists")

		return fmt.Errorf("failed to check if email exists: %w", err)
	}

	if exists {
		return userModel.ErrEmailTaken
	}

	exists, err = s.userRepo.Exist(ctx, fieldFilter(userModel.FieldCPF, user.CPF))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if cpf exists")

		return fmt.Errorf("failed to check if cpf exists: %w", err)
	}

	if exists {
		return userModel.ErrCPFTaken
	}

	if err = s.userRepo.Insert(ctx, user); err != nil {
		if shared.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
			return userModel.ErrEmailTaken
		}

		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")

	return nil
}

func (s *serviceImpl) Token(ctx context.Context, req dto.TokenRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Token")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := fieldFilter(userModel.FieldEmail, req.Email)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		log.Warn().Str("email", req.Email).Msg("token request with unknown email")

		return res, userModel.ErrInvalidCredentials
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		if !errors.Is(err, password.ErrInvalidPassword) {
			log.Error().Err(err).Str("user_id", user.ID).Msg("failed to verify password")
		}

		return res, userModel.ErrInvalidCredentials
	}

	if !user.Active {
		return res, userModel.ErrInactiveUser
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := shared.TransformFields(userDto.UpdateLastLogin{LastLogin: timezone.Now()}, user.Email)
	if err = s.userRepo.Update(ctx, lastLogin, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// RefreshToken issues a new pair carrying the user's current role.
func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwtService.ValidateToken(ctx, req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("refresh with invalid token")

		return res, userModel.ErrInvalidToken
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(claims.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return res, userModel.ErrInvalidToken
	}

	if !user.Active {
		return res, userModel.ErrInactiveUser
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return userModel.ErrUserNotFound
	}

	if err = password.Verify(req.CurrentPassword, user.Password); err != nil {
		return ErrWrongCurrentPassword
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatedFields := shared.TransformFields(dto.UpdatePassword{Password: hashedPassword}, user.Email)

	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
