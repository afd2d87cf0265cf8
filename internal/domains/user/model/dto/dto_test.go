package dto_test

import (
	"testing"
	"time"

	"hotel/internal/domains/user/model"
	"hotel/internal/domains/user/model/dto"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"hotel/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_ToModel(t *testing.T) {
	req := dto.RegisterRequest{
		Name:      "  Maria Souza ",
		Email:     "Maria@Example.com",
		Password:  "password123",
		CPF:       "123.456.789-01",
		BirthDate: "20/05/1990",
	}

	require.NoError(t, validator.ValidateStruct(&req))

	user, err := req.ToModel("hashed")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Maria Souza", user.Name)
	assert.Equal(t, "maria@example.com", user.Email)
	assert.Equal(t, "12345678901", user.CPF)
	assert.Equal(t, "hashed", user.Password)
	assert.Equal(t, constant.RoleClient, user.Role)
	assert.True(t, user.Active)
	assert.Equal(t, 1990, user.BirthDate.Year())
	assert.Equal(t, time.May, user.BirthDate.Month())
}

func TestRegisterRequest_Validation(t *testing.T) {
	minor := timezone.Today().AddDate(-17, 0, 0).Format(constant.DateInputFormat)

	tests := []struct {
		name  string
		req   dto.RegisterRequest
		field string
	}{
		{
			name:  "under age",
			req:   dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "password123", CPF: "12345678901", BirthDate: minor},
			field: "birth_date",
		},
		{
			name:  "malformed birth date",
			req:   dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "password123", CPF: "12345678901", BirthDate: "1990-05-20"},
			field: "birth_date",
		},
		{
			name:  "short cpf",
			req:   dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "password123", CPF: "1234", BirthDate: "20/05/1990"},
			field: "cpf",
		},
		{
			name:  "invalid email",
			req:   dto.RegisterRequest{Name: "Ana", Email: "ana", Password: "password123", CPF: "12345678901", BirthDate: "20/05/1990"},
			field: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)
			require.Error(t, err)

			fail, ok := failure.As(err)
			require.True(t, ok)
			assert.Contains(t, fail.Fields, tt.field)
		})
	}
}

func TestUserFilter_ToFilterGroup(t *testing.T) {
	filter := dto.UserFilter{Role: constant.RoleStaff, Active: "true"}.ToFilterGroup()

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(users.role = :role AND users.active = :active)", where)
	assert.Equal(t, constant.RoleStaff, args[model.FieldRole])
	assert.Equal(t, true, args[model.FieldActive])
}

func TestUserResponse_FromModel(t *testing.T) {
	login := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	var res dto.UserResponse
	res.FromModel(model.User{ID: "u1", BirthDate: time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC), LastLogin: &login})

	assert.Equal(t, "2000-01-02", res.BirthDate)
	require.NotNil(t, res.LastLogin)
}
