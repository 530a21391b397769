package service

import (
	"context"
	"errors"
	"testing"

	"holiday_tracker/internal/common"
	"holiday_tracker/internal/domain/model"
)

func TestDashboardView(t *testing.T) {
	ledgerRepo := &mockLedgerRepo{
		hours: []model.HoursEntry{
			{ID: 1, UserID: "u-employee", Month: "January 2024", Hours: 100, Approved: true},
			{ID: 2, UserID: "u-employee", Month: "February 2024", Hours: 50, Approved: true},
			{ID: 3, UserID: "u-other", Month: "February 2024", Hours: 70, Approved: false},
		},
		holidays: []model.HolidayRequest{
			{ID: 4, UserID: "u-employee", StartDate: date("2024-01-01"), EndDate: date("2024-01-05"), Approved: true},
			{ID: 5, UserID: "u-other", StartDate: date("2024-02-01"), EndDate: date("2024-02-02"), Approved: false},
		},
		nextID: 5,
	}
	userRepo := &mockUserRepo{users: map[string]model.User{
		"admin": {ID: "u-admin", Username: "admin", Role: model.RoleAdmin},
		"bob":   {ID: "u-employee", Username: "bob", Role: model.RoleEmployee},
	}}
	dashboardService := NewDashboardService(NewLedgerService(ledgerRepo), userRepo)

	t.Run("Employee sees own ledger and balance", func(t *testing.T) {
		view, err := dashboardService.View(context.Background(), employee)
		if err != nil {
			t.Fatalf("Unexpected error %q", err)
		}
		if len(view.Hours) != 2 || len(view.Holidays) != 1 {
			t.Fatalf("Expected own rows only, got %d hours and %d holidays", len(view.Hours), len(view.Holidays))
		}
		if view.Balance == nil {
			t.Fatal("Expected a balance")
		}
		if view.Balance.Accrued != 18.11 || view.Balance.Used != 5 || view.Balance.Remaining != 13.11 {
			t.Errorf("Unexpected balance %+v", view.Balance)
		}
		if view.Users != nil || view.PendingHours != nil {
			t.Error("Employee view must not carry other branches")
		}
	})

	t.Run("Manager sees pending items from all users", func(t *testing.T) {
		view, err := dashboardService.View(context.Background(), manager)
		if err != nil {
			t.Fatalf("Unexpected error %q", err)
		}
		if len(view.PendingHours) != 1 || view.PendingHours[0].ID != 3 {
			t.Errorf("Unexpected pending hours %+v", view.PendingHours)
		}
		if len(view.PendingHolidays) != 1 || view.PendingHolidays[0].ID != 5 {
			t.Errorf("Unexpected pending holidays %+v", view.PendingHolidays)
		}
		if view.Balance != nil {
			t.Error("Manager view carries no balance")
		}
	})

	t.Run("Admin and reviewer see the user list", func(t *testing.T) {
		for _, role := range []string{model.RoleAdmin, model.RoleReviewer} {
			view, err := dashboardService.View(context.Background(), model.Principal{UserID: "u-x", Role: role})
			if err != nil {
				t.Fatalf("Unexpected error %q", err)
			}
			if len(view.Users) != 2 {
				t.Errorf("Expected 2 users for role %q, got %d", role, len(view.Users))
			}
		}
	})

	t.Run("Unknown role is rejected", func(t *testing.T) {
		_, err := dashboardService.View(context.Background(), model.Principal{UserID: "u-x", Role: "intern"})
		if !errors.Is(err, common.ErrForbidden) {
			t.Errorf("Expected %q, got %q", common.ErrForbidden, err)
		}
	})
}
