package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/timezone"
	"math"
	"reflect"
	"strconv"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the non-zero db-tagged fields of a struct into an update map
// stamped with modified_at and modified_by.
func TransformFields(data any, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(prefix, id string) string {
	return fmt.Sprintf("%s:%s", prefix, id)
}

// BuildCacheKeyWithQuery derives a stable key from the pagination and rendered filter.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	raw, err := json.Marshal(struct {
		Params dto.QueryParams `json:"params"`
		Where  string          `json:"where"`
		Args   map[string]any  `json:"args"`
	}{params, where, args})
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to marshal cache key")

		return prefix
	}

	sum := sha256.Sum256(raw)

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches drops every cached entry under prefix. Errors are only logged.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefixes ...string) {
	for _, prefix := range prefixes {
		if err := redisCache.Clear(ctx, prefix); err != nil {
			log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
		}
	}
}

// IsPqError reports whether err wraps a Postgres error with one of the given codes.
func IsPqError(err error, codes ...string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	for _, code := range codes {
		if string(pqErr.Code) == code {
			return true
		}
	}

	return false
}

func Ptr[T any](value T) *T {
	return &value
}

// Actor names whoever drives the current request, falling back to the system user.
func Actor(ctx context.Context) string {
	if email, ok := ctx.Value(constant.ContextKeyUserEmail).(string); ok && email != "" {
		return email
	}

	return constant.ContextSystem
}

// Caller is the authenticated principal of a request as set by the auth middleware.
type Caller struct {
	ID    string
	Email string
	Role  string
}

func CallerFrom(ctx context.Context) Caller {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return Caller{ID: id, Email: Actor(ctx), Role: role}
}

// WithCaller stores caller the way the auth middleware does.
func WithCaller(ctx context.Context, caller Caller) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, caller.ID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, caller.Email)

	return context.WithValue(ctx, constant.ContextKeyUserRole, caller.Role)
}

// Privileged reports front desk staff and administrators.
func (c Caller) Privileged() bool {
	return c.Role == constant.RoleAdmin || c.Role == constant.RoleStaff
}

// Owns reports whether the caller may act on a resource belonging to clientID.
func (c Caller) Owns(clientID string) bool {
	return c.Privileged() || (c.ID != constant.Empty && c.ID == clientID)
}
