package dto

import (
	"strings"
	"time"

	"hotel/internal/domains/user/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"hotel/shared/validator"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name      string `json:"name"       validate:"required,min=2,max=150"`
	Email     string `json:"email"      validate:"required,email,max=150"`
	Password  string `json:"password"   validate:"required,min=8,max=72"`
	CPF       string `json:"cpf"        validate:"required,cpf"`
	BirthDate string `json:"birth_date" validate:"required,date,adult"`
}

// ToModel expects a request that already passed validation.
func (r *RegisterRequest) ToModel(hashedPassword string) (model.User, error) {
	birthDate, err := gDto.ParseDate(r.BirthDate)
	if err != nil {
		return model.User{}, err //nolint:wrapcheck
	}

	return model.User{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(r.Name),
		Email:     strings.ToLower(strings.TrimSpace(r.Email)),
		Password:  hashedPassword,
		CPF:       validator.NormalizeCPF(r.CPF),
		BirthDate: birthDate,
		Role:      constant.RoleClient,
		Active:    true,
		Metadata:  gModel.NewMetadata(timezone.Now(), constant.ContextGuest),
	}, nil
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=CLIENT STAFF ADMIN"`
}

type UpdateRole struct {
	Role string `db:"role"`
}

type UpdateLastLogin struct {
	LastLogin time.Time `db:"last_login"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	CPF       string  `json:"cpf"`
	BirthDate string  `json:"birth_date"`
	Role      string  `json:"role"`
	Active    bool    `json:"active"`
	LastLogin *string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Name = user.Name
	r.Email = user.Email
	r.CPF = user.CPF
	r.BirthDate = user.BirthDate.Format(constant.DateOnlyFormat)
	r.Role = user.Role
	r.Active = user.Active
	r.LastLogin = nil

	if user.LastLogin != nil {
		r.LastLogin = shared.Ptr(timezone.Format(*user.LastLogin, constant.DateFormat))
	}

	r.Metadata.FromModel(user.Metadata)
}

type GetUsersResponse struct {
	Users      []UserResponse  `json:"users"`
	Pagination gDto.Pagination `json:"pagination"`
}

func (r *GetUsersResponse) FromModels(users []model.User, total int, params gDto.QueryParams) {
	r.Users = make([]UserResponse, len(users))
	for i, user := range users {
		r.Users[i].FromModel(user)
	}

	r.Pagination = gDto.Pagination{
		Page:      params.Page,
		Limit:     params.Limit,
		Total:     total,
		TotalPage: shared.CalculateTotalPage(total, params.Limit),
	}
}

// UserFilter holds the list filters accepted on GET /users.
type UserFilter struct {
	Role   string `query:"role"   validate:"omitempty,oneof=CLIENT STAFF ADMIN"`
	Email  string `query:"email"`
	Active string `query:"active" validate:"omitempty,boolean"`
}

func (f UserFilter) ToFilterGroup() gDto.FilterGroup {
	filters := []any{}

	if f.Role != "" {
		filters = append(filters, gDto.Filter{Table: model.TableName, Field: model.FieldRole, Value: f.Role, Operator: gDto.FilterOperatorEq})
	}

	if f.Email != "" {
		filters = append(filters, gDto.Filter{Table: model.TableName, Field: model.FieldEmail, Value: f.Email, Operator: gDto.FilterOperatorLike})
	}

	if active := shared.ConvertStringToBool(f.Active); active != nil {
		filters = append(filters, gDto.Filter{Table: model.TableName, Field: model.FieldActive, Value: *active, Operator: gDto.FilterOperatorEq})
	}

	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
}
