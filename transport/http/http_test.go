package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel/config"
	"hotel/infras/jwt"
	jwtMocks "hotel/infras/jwt/mocks"
	otelMocks "hotel/infras/otel/mocks"
	authMocks "hotel/internal/domains/auth/mocks"
	authDto "hotel/internal/domains/auth/model/dto"
	availabilityMocks "hotel/internal/domains/availability/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	checkinMocks "hotel/internal/domains/checkin/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	roomDto "hotel/internal/domains/room/model/dto"
	userMocks "hotel/internal/domains/user/mocks"
	userDto "hotel/internal/domains/user/model/dto"
	authHandler "hotel/internal/handlers/auth"
	bookingHandler "hotel/internal/handlers/booking"
	checkinHandler "hotel/internal/handlers/checkin"
	roomHandler "hotel/internal/handlers/room"
	userHandler "hotel/internal/handlers/user"
	"hotel/permissions"
	"hotel/shared/constant"
	transport "hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type server struct {
	auth    *authMocks.MockAuthService
	users   *userMocks.MockUserService
	rooms   *roomMocks.MockRoomService
	handler http.Handler
}

func newServer(t *testing.T) server {
	t.Helper()

	ctrl := gomock.NewController(t)
	otel := otelMocks.NewOtel()

	s := server{
		auth:  authMocks.NewMockAuthService(ctrl),
		users: userMocks.NewMockUserService(ctrl),
		rooms: roomMocks.NewMockRoomService(ctrl),
	}

	jwtService := jwtMocks.NewMockJWT(ctrl)
	jwtService.EXPECT().ValidateToken(gomock.Any(), "client-token", jwt.AccessToken).
		Return(&jwt.Claims{UserID: "client-1", Email: "ana@example.com", Role: constant.RoleClient}, nil).AnyTimes()
	jwtService.EXPECT().ValidateToken(gomock.Any(), "admin-token", jwt.AccessToken).
		Return(&jwt.Claims{UserID: "admin-1", Email: "admin@example.com", Role: constant.RoleAdmin}, nil).AnyTimes()

	cfg := &config.Config{}

	routes := router.New(router.DomainHandlers{
		Auth:    authHandler.New(s.auth, otel),
		User:    userHandler.New(s.users, s.auth, otel),
		Room:    roomHandler.New(s.rooms, availabilityMocks.NewMockAvailabilityService(ctrl), otel),
		Booking: bookingHandler.New(bookingMocks.NewMockBookingService(ctrl), otel),
		CheckIn: checkinHandler.New(checkinMocks.NewMockCheckInService(ctrl), otel),
	})

	h := transport.New(cfg, routes,
		middleware.NewAppMiddleware(otel, cfg, nil),
		middleware.NewAuthRoleMiddleware(jwtService, otel, permissions.Get(), cfg),
	)
	s.handler = h.Adaptor()

	return s
}

func TestRouteAccess(t *testing.T) {
	tokenBody := `{"email":"ana@example.com","password":"secret-pass"}`

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		token    string
		expect   func(s server)
		wantCode int
	}{
		{
			name: "token is public", method: http.MethodPost, target: "/v1/token", body: tokenBody,
			expect: func(s server) {
				s.auth.EXPECT().Token(gomock.Any(), authDto.TokenRequest{Email: "ana@example.com", Password: "secret-pass"}).
					Return(authDto.TokenResponse{AccessToken: "access"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "token is public with trailing slash", method: http.MethodPost, target: "/v1/token/", body: tokenBody,
			expect: func(s server) {
				s.auth.EXPECT().Token(gomock.Any(), gomock.Any()).Return(authDto.TokenResponse{AccessToken: "access"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "room list is public", method: http.MethodGet, target: "/v1/rooms",
			expect: func(s server) {
				s.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomDto.GetRoomsResponse{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "room list is public with trailing slash", method: http.MethodGet, target: "/v1/rooms/",
			expect: func(s server) {
				s.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomDto.GetRoomsResponse{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{name: "room create needs a token", method: http.MethodPost, target: "/v1/rooms", body: `{}`, wantCode: http.StatusUnauthorized},
		{name: "room create refused for client", method: http.MethodPost, target: "/v1/rooms", body: `{}`, token: "client-token", wantCode: http.StatusForbidden},
		{name: "room create refused for client with trailing slash", method: http.MethodPost, target: "/v1/rooms/", body: `{}`, token: "client-token", wantCode: http.StatusForbidden},
		{name: "user list refused for client", method: http.MethodGet, target: "/v1/users", token: "client-token", wantCode: http.StatusForbidden},
		{name: "user list refused for client with trailing slash", method: http.MethodGet, target: "/v1/users/", token: "client-token", wantCode: http.StatusForbidden},
		{
			name: "user list for admin", method: http.MethodGet, target: "/v1/users", token: "admin-token",
			expect: func(s server) {
				s.users.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(userDto.GetUsersResponse{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{name: "bookings need a token", method: http.MethodGet, target: "/v1/bookings", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(t)
			if tt.expect != nil {
				tt.expect(s)
			}

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.token != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+tt.token)
			}

			rec := httptest.NewRecorder()
			s.handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHealth(t *testing.T) {
	s := newServer(t)

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
