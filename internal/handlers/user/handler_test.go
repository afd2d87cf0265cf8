package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	authMocks "hotel/internal/domains/auth/mocks"
	authDto "hotel/internal/domains/auth/model/dto"
	userMocks "hotel/internal/domains/user/mocks"
	userModel "hotel/internal/domains/user/model"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/handlers/user"
	"hotel/shared"
	"hotel/shared/constant"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	users  *userMocks.MockUserService
	auth   *authMocks.MockAuthService
	router http.Handler
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		users: userMocks.NewMockUserService(ctrl),
		auth:  authMocks.NewMockAuthService(ctrl),
	}

	handler := user.New(f.users, f.auth, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)
	f.router = router

	return f
}

func (f fixture) serve(ctx context.Context, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequestWithContext(ctx, method, target, strings.NewReader(body)))

	return rec
}

func TestRegister(t *testing.T) {
	t.Run("registered", func(t *testing.T) {
		f := setup(t)

		f.auth.EXPECT().Register(gomock.Any(), dto.RegisterRequest{
			Name:      "Ana Souza",
			Email:     "ana@example.com",
			Password:  "s3cret-pass",
			CPF:       "52998224725",
			BirthDate: "01/02/1990",
		}).Return(nil)

		rec := f.serve(context.Background(), http.MethodPost, "/users/register",
			`{"name":"Ana Souza","email":"ana@example.com","password":"s3cret-pass","cpf":"52998224725","birth_date":"01/02/1990"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "User registered successfully.")
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := setup(t)

		f.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(userModel.ErrEmailTaken)

		rec := f.serve(context.Background(), http.MethodPost, "/users/register",
			`{"name":"Ana Souza","email":"ana@example.com","password":"s3cret-pass","cpf":"52998224725","birth_date":"01/02/1990"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("minor", func(t *testing.T) {
		f := setup(t)

		rec := f.serve(context.Background(), http.MethodPost, "/users/register",
			`{"name":"Ana Souza","email":"ana@example.com","password":"s3cret-pass","cpf":"52998224725","birth_date":"01/02/2099"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMe(t *testing.T) {
	f := setup(t)

	ctx := shared.WithCaller(context.Background(), shared.Caller{ID: "user-1", Email: "ana@example.com", Role: constant.RoleClient})

	f.users.EXPECT().Get(gomock.Any(), "user-1").Return(dto.UserResponse{ID: "user-1", Email: "ana@example.com"}, nil)

	rec := f.serve(ctx, http.MethodGet, "/users/me", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ana@example.com")
}

func TestChangePassword(t *testing.T) {
	f := setup(t)

	ctx := shared.WithCaller(context.Background(), shared.Caller{ID: "user-1", Role: constant.RoleClient})

	f.auth.EXPECT().
		ChangePassword(gomock.Any(), gomock.AssignableToTypeOf(authDto.ChangePasswordRequest{}), "user-1").
		Return(nil)

	rec := f.serve(ctx, http.MethodPut, "/users/me/password", `{"current_password":"s3cret-pass","new_password":"an0ther-pass"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateRole(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		f := setup(t)

		f.users.EXPECT().
			UpdateRole(gomock.Any(), dto.UpdateRoleRequest{Role: constant.RoleStaff}, "user-2").
			Return(dto.UserResponse{ID: "user-2", Role: constant.RoleStaff}, nil)

		rec := f.serve(context.Background(), http.MethodPatch, "/users/user-2/role", `{"role":"STAFF"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown role", func(t *testing.T) {
		f := setup(t)

		rec := f.serve(context.Background(), http.MethodPatch, "/users/user-2/role", `{"role":"OWNER"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
