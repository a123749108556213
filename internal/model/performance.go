package model

import "time"

// LocalDateTimeLayout is the wire and form format of a performance date-time (no zone).
const LocalDateTimeLayout = "2006-01-02T15:04"

// Performance 演出模型
//
// DateTime is a wall-clock value without zone, stored as UTC fields.
// Status is false while scheduled and true once done; it never reverts.
// Revenue is never persisted, it is filled in by the read query.
type Performance struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	DateTime        time.Time `json:"date_time" db:"date_time"`
	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	MainArtistID    int64     `json:"main_artist_id" db:"main_artist_id"`
	Status          bool      `json:"status" db:"status"`
	Description     string    `json:"description" db:"description"`
	Revenue         int64     `json:"revenue" db:"-"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// IsDone 演出是否已結束
func (p *Performance) IsDone() bool {
	return p.Status
}

// StatusLabel 頁面上顯示的狀態
func (p *Performance) StatusLabel() string {
	if p.Status {
		return "done"
	}
	return "scheduled"
}

// LocalDateTime formats DateTime for datetime-local inputs.
func (p *Performance) LocalDateTime() string {
	if p.DateTime.IsZero() {
		return ""
	}
	return p.DateTime.Format(LocalDateTimeLayout)
}

// Revenue sort keys accepted by the listing.
const (
	SortRevenueAsc  = "revenue_asc"
	SortRevenueDesc = "revenue_desc"
)

// PerformanceListQuery 演出列表的查詢參數，原樣保留使用者輸入
type PerformanceListQuery struct {
	FromDate string `form:"fromDate" json:"from_date"`
	ToDate   string `form:"toDate" json:"to_date"`
	SortBy   string `form:"sortBy" json:"sort_by"`
}
