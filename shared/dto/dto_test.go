package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "staff@hotel.test",
		ModifiedBy: constant.ContextSystem,
	})

	created, err := time.Parse(constant.DateFormat, metadata.CreatedAt)
	require.NoError(t, err)
	assert.True(t, created.Equal(createdAt))
	assert.Equal(t, "staff@hotel.test", metadata.CreatedBy)
	assert.Equal(t, constant.ContextSystem, metadata.ModifiedBy)
}

func TestParseDate(t *testing.T) {
	parsed, err := dto.ParseDate("05/04/2025")
	require.NoError(t, err)

	assert.Equal(t, time.April, parsed.Month())
	assert.Equal(t, 5, parsed.Day())
	assert.Equal(t, "05/04/2025", dto.FormatDate(parsed))

	_, err = dto.ParseDate("2025-04-05")
	assert.Error(t, err)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=number&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "number", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults when empty",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults when disabled",
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid numbers fall back to defaults",
			query:          "page=-1&limit=abc",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "unknown sort direction ignored",
			query:    "sort_dir=sideways",
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/rooms?"+tt.query, nil)

			params := &dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, *params)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		filter        dto.Filter
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name:          "eq with table",
			filter:        dto.Filter{Table: "rooms", Field: "status", Value: "AVAILABLE", Operator: dto.FilterOperatorEq},
			expectedWhere: "rooms.status = :status",
			expectedArgs:  map[string]any{"status": "AVAILABLE"},
		},
		{
			name:          "in with slice",
			filter:        dto.Filter{Field: "status", Value: []string{"PENDING", "CONFIRMED"}, Operator: dto.FilterOperatorIn},
			expectedWhere: "status IN (:status_0, :status_1) ",
			expectedArgs:  map[string]any{"status_0": "PENDING", "status_1": "CONFIRMED"},
		},
		{
			name:          "less with arg name",
			filter:        dto.Filter{Field: "check_in_date", ArgName: "until", Value: 3, Operator: dto.FilterOperatorLess},
			expectedWhere: "check_in_date < :until",
			expectedArgs:  map[string]any{"until": 3},
		},
		{
			name:          "is null",
			filter:        dto.Filter{Table: "bookings", Field: "deleted_at", Operator: dto.FilterIsNull},
			expectedWhere: "bookings.deleted_at IS NULL",
			expectedArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.expectedWhere, where)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestOverlap(t *testing.T) {
	group := dto.Overlap("bookings", "check_in_date", "check_out_date", "2025-01-10", "2025-01-12")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.check_in_date < :overlap_end AND bookings.check_out_date > :overlap_start)", where)
	assert.Equal(t, map[string]any{"overlap_end": "2025-01-12", "overlap_start": "2025-01-10"}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestQueryParams_AllowSort(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		expected dto.QueryParams
	}{
		{
			name:     "allowed column kept",
			params:   dto.QueryParams{SortBy: "price", SortDir: dto.SortDirDesc},
			expected: dto.QueryParams{SortBy: "price", SortDir: dto.SortDirDesc},
		},
		{
			name:     "unknown column replaced",
			params:   dto.QueryParams{SortBy: "number; DROP TABLE rooms"},
			expected: dto.QueryParams{SortBy: "number", SortDir: dto.SortDirAsc},
		},
		{
			name:     "empty uses defaults",
			params:   dto.QueryParams{},
			expected: dto.QueryParams{SortBy: "number", SortDir: dto.SortDirAsc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.AllowSort("number", dto.SortDirAsc, "number", "price")

			assert.Equal(t, tt.expected, tt.params)
		})
	}
}
