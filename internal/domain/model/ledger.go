package model

import (
	"time"
)

// HoursEntry is a month's worked hours submitted by an employee. Rows are
// append-only; the only mutation ever applied is Approved flipping false->true.
type HoursEntry struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Month     string    `json:"month"` // free-text label, e.g. "January 2024"
	Hours     float64   `json:"hours"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

// HolidayRequest covers the inclusive date range [StartDate, EndDate].
type HolidayRequest struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

// Days returns the number of days the request covers, counting both endpoints.
func (r HolidayRequest) Days() int {
	return int(r.EndDate.Sub(r.StartDate)/(24*time.Hour)) + 1
}
