package dto

import (
	"hotel/shared/constant"
	"hotel/shared/model"
	"hotel/shared/timezone"
	"time"
)

type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	m.ModifiedAt = timezone.Format(model.ModifiedAt, constant.DateFormat)
	m.CreatedBy = model.CreatedBy
	m.ModifiedBy = model.ModifiedBy
}

// FormatDate renders a calendar day the way clients send it.
func FormatDate(t time.Time) string {
	return t.Format(constant.DateInputFormat)
}

// ParseDate reads a dd/mm/yyyy calendar day at midnight in the application timezone.
func ParseDate(value string) (time.Time, error) {
	return timezone.Parse(constant.DateInputFormat, value) //nolint:wrapcheck
}

// Pagination describes one page of a list response.
type Pagination struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	Total     int `json:"total"`
	TotalPage int `json:"total_page"`
}
