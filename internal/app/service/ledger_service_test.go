package service

import (
	"context"
	"errors"
	"testing"

	"holiday_tracker/internal/common"
	"holiday_tracker/internal/domain/model"
)

type mockLedgerRepo struct {
	hours    []model.HoursEntry
	holidays []model.HolidayRequest
	nextID   int64
}

func (m *mockLedgerRepo) InsertHoursEntry(ctx context.Context, entry *model.HoursEntry) error {
	m.nextID++
	entry.ID = m.nextID
	m.hours = append(m.hours, *entry)
	return nil
}

func (m *mockLedgerRepo) InsertHolidayRequest(ctx context.Context, req *model.HolidayRequest) error {
	m.nextID++
	req.ID = m.nextID
	m.holidays = append(m.holidays, *req)
	return nil
}

func (m *mockLedgerRepo) ApproveHoursEntry(ctx context.Context, id int64) error {
	for i := range m.hours {
		if m.hours[i].ID == id {
			m.hours[i].Approved = true
			return nil
		}
	}
	return common.ErrNotFound
}

func (m *mockLedgerRepo) ApproveHolidayRequest(ctx context.Context, id int64) error {
	for i := range m.holidays {
		if m.holidays[i].ID == id {
			m.holidays[i].Approved = true
			return nil
		}
	}
	return common.ErrNotFound
}

func (m *mockLedgerRepo) ListHoursForUser(ctx context.Context, userID string) ([]model.HoursEntry, error) {
	var entries []model.HoursEntry
	for _, e := range m.hours {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *mockLedgerRepo) ListHolidaysForUser(ctx context.Context, userID string) ([]model.HolidayRequest, error) {
	var requests []model.HolidayRequest
	for _, r := range m.holidays {
		if r.UserID == userID {
			requests = append(requests, r)
		}
	}
	return requests, nil
}

func (m *mockLedgerRepo) ListPendingHours(ctx context.Context) ([]model.HoursEntry, error) {
	var entries []model.HoursEntry
	for _, e := range m.hours {
		if !e.Approved {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *mockLedgerRepo) ListPendingHolidays(ctx context.Context) ([]model.HolidayRequest, error) {
	var requests []model.HolidayRequest
	for _, r := range m.holidays {
		if !r.Approved {
			requests = append(requests, r)
		}
	}
	return requests, nil
}

var (
	employee = model.Principal{UserID: "u-employee", Role: model.RoleEmployee}
	manager  = model.Principal{UserID: "u-manager", Role: model.RoleManager}
)

func TestSubmitHours(t *testing.T) {
	testCases := []struct {
		name          string
		principal     model.Principal
		req           SubmitHoursRequest
		expectedError error
		expectRow     bool
	}{
		{
			name:      "Employee submits valid hours",
			principal: employee,
			req:       SubmitHoursRequest{Month: "January 2024", Hours: "120.5"},
			expectRow: true,
		},
		{
			name:          "Manager may not submit",
			principal:     manager,
			req:           SubmitHoursRequest{Month: "January 2024", Hours: "120.5"},
			expectedError: common.ErrForbidden,
		},
		{
			name:          "Unparsable hours are rejected",
			principal:     employee,
			req:           SubmitHoursRequest{Month: "January 2024", Hours: "lots"},
			expectedError: common.ErrValidation,
		},
		{
			name:          "Negative hours are rejected",
			principal:     employee,
			req:           SubmitHoursRequest{Month: "January 2024", Hours: "-4"},
			expectedError: common.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockLedgerRepo{}
			ledgerService := NewLedgerService(repo)

			entry, err := ledgerService.SubmitHours(context.Background(), tc.principal, tc.req)

			if tc.expectedError != nil {
				if !errors.Is(err, tc.expectedError) {
					t.Errorf("Expected %q, got %q", tc.expectedError, err)
				}
				if len(repo.hours) != 0 {
					t.Errorf("Expected no row to be created, found %d", len(repo.hours))
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error %q", err)
			}
			if !tc.expectRow {
				return
			}
			if entry.Approved {
				t.Error("New entry must start unapproved")
			}
			if entry.UserID != tc.principal.UserID {
				t.Errorf("Expected user %q, got %q", tc.principal.UserID, entry.UserID)
			}
			if len(repo.hours) != 1 {
				t.Errorf("Expected 1 row, found %d", len(repo.hours))
			}
		})
	}
}

func TestSubmitHoliday(t *testing.T) {
	testCases := []struct {
		name          string
		principal     model.Principal
		req           SubmitHolidayRequest
		expectedError error
		expectedDays  int
	}{
		{
			name:         "Valid range",
			principal:    employee,
			req:          SubmitHolidayRequest{StartDate: "2024-01-01", EndDate: "2024-01-05"},
			expectedDays: 5,
		},
		{
			name:         "Single day counts as one",
			principal:    employee,
			req:          SubmitHolidayRequest{StartDate: "2024-01-01", EndDate: "2024-01-01"},
			expectedDays: 1,
		},
		{
			name:          "End before start is rejected",
			principal:     employee,
			req:           SubmitHolidayRequest{StartDate: "2024-01-05", EndDate: "2024-01-01"},
			expectedError: common.ErrValidation,
		},
		{
			name:          "Unparsable date is rejected",
			principal:     employee,
			req:           SubmitHolidayRequest{StartDate: "next tuesday", EndDate: "2024-01-05"},
			expectedError: common.ErrValidation,
		},
		{
			name:          "Reviewer may not submit",
			principal:     model.Principal{UserID: "u-reviewer", Role: model.RoleReviewer},
			req:           SubmitHolidayRequest{StartDate: "2024-01-01", EndDate: "2024-01-05"},
			expectedError: common.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockLedgerRepo{}
			ledgerService := NewLedgerService(repo)

			request, err := ledgerService.SubmitHoliday(context.Background(), tc.principal, tc.req)

			if tc.expectedError != nil {
				if !errors.Is(err, tc.expectedError) {
					t.Errorf("Expected %q, got %q", tc.expectedError, err)
				}
				if len(repo.holidays) != 0 {
					t.Errorf("Expected no row to be created, found %d", len(repo.holidays))
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error %q", err)
			}
			if request.Approved {
				t.Error("New request must start unapproved")
			}
			if days := request.Days(); days != tc.expectedDays {
				t.Errorf("Expected %d days, got %d", tc.expectedDays, days)
			}
		})
	}
}

func TestApproveHours(t *testing.T) {
	repo := &mockLedgerRepo{}
	ledgerService := NewLedgerService(repo)

	entry, err := ledgerService.SubmitHours(context.Background(), employee, SubmitHoursRequest{Month: "May 2024", Hours: "80"})
	if err != nil {
		t.Fatalf("Unexpected error %q", err)
	}

	if err := ledgerService.ApproveHours(context.Background(), manager, entry.ID); err != nil {
		t.Fatalf("Unexpected error %q", err)
	}
	if !repo.hours[0].Approved {
		t.Error("Expected entry to be approved")
	}

	// Approving again is a no-op, not an error
	if err := ledgerService.ApproveHours(context.Background(), manager, entry.ID); err != nil {
		t.Errorf("Re-approval should succeed, got %q", err)
	}
	if len(repo.hours) != 1 || !repo.hours[0].Approved {
		t.Error("Re-approval must not duplicate or corrupt the row")
	}

	if err := ledgerService.ApproveHours(context.Background(), manager, 9999); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected %q, got %q", common.ErrNotFound, err)
	}

	if err := ledgerService.ApproveHours(context.Background(), employee, entry.ID); !errors.Is(err, common.ErrForbidden) {
		t.Errorf("Expected %q, got %q", common.ErrForbidden, err)
	}
}

func TestApproveHoliday(t *testing.T) {
	repo := &mockLedgerRepo{}
	ledgerService := NewLedgerService(repo)

	request, err := ledgerService.SubmitHoliday(context.Background(), employee, SubmitHolidayRequest{StartDate: "2024-07-01", EndDate: "2024-07-14"})
	if err != nil {
		t.Fatalf("Unexpected error %q", err)
	}

	if err := ledgerService.ApproveHoliday(context.Background(), manager, request.ID); err != nil {
		t.Fatalf("Unexpected error %q", err)
	}

	if err := ledgerService.ApproveHoliday(context.Background(), manager, 9999); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected %q, got %q", common.ErrNotFound, err)
	}

	if err := ledgerService.ApproveHoliday(context.Background(), employee, request.ID); !errors.Is(err, common.ErrForbidden) {
		t.Errorf("Expected %q, got %q", common.ErrForbidden, err)
	}
}
