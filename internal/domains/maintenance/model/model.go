package model

const (
	JobExpirePending     = "expire_pending"
	JobMarkNoShows       = "mark_no_shows"
	JobReleaseCheckedOut = "release_checked_out"
)

// Summary counts the outcome of one sweep. Bookings that no longer qualify once locked
// are counted in neither field.
type Summary struct {
	Job       string `json:"job"`
	Processed int    `json:"processed"`
	Failed    int    `json:"failed"`
}
