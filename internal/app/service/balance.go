package service

import (
	"math"

	"holiday_tracker/internal/domain/model"
)

// AccrualRate converts approved worked hours into holiday-hours earned. Fixed
// business constant, not derived.
const AccrualRate = 0.1207

type Balance struct {
	Accrued   float64 `json:"accrued"`
	Used      int     `json:"used"`
	Remaining float64 `json:"remaining"`
}

// ComputeBalance derives the holiday balance from a user's ledger rows. Only
// approved rows count. Holiday requests are counted inclusive of both
// endpoints, so a single-day request uses one day. Remaining is not clamped:
// a negative balance is a legitimate result and is surfaced as such.
func ComputeBalance(entries []model.HoursEntry, requests []model.HolidayRequest) Balance {
	var approvedHours float64
	for _, e := range entries {
		if e.Approved {
			approvedHours += e.Hours
		}
	}
	accrued := round2(approvedHours * AccrualRate)

	used := 0
	for _, r := range requests {
		if r.Approved {
			used += r.Days()
		}
	}

	return Balance{
		Accrued:   accrued,
		Used:      used,
		Remaining: round2(accrued - float64(used)),
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
