package service

import (
	"context"
	"strconv"
	"time"

	"holiday_tracker/internal/common"
	"holiday_tracker/internal/domain/model"
	"holiday_tracker/internal/domain/repository"
)

const dateLayout = "2006-01-02"

type LedgerService struct {
	ledgerRepo repository.LedgerRepository
}

func NewLedgerService(ledgerRepo repository.LedgerRepository) *LedgerService {
	return &LedgerService{ledgerRepo: ledgerRepo}
}

type SubmitHoursRequest struct {
	Month string `json:"month"`
	Hours string `json:"hours"`
}

type SubmitHolidayRequest struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`
}

// SubmitHours appends an unapproved hours entry for the caller. Only
// employees may submit; the role is re-checked here so a row can never be
// created through a handler wired to the wrong guard.
func (s *LedgerService) SubmitHours(ctx context.Context, p model.Principal, req SubmitHoursRequest) (*model.HoursEntry, error) {
	if p.Role != model.RoleEmployee {
		return nil, common.Errorf("only employees may submit hours: %w", common.ErrForbidden)
	}

	hours, err := strconv.ParseFloat(req.Hours, 64)
	if err != nil {
		return nil, common.Errorf("hours %q is not a number: %w", req.Hours, common.ErrValidation)
	}
	if hours < 0 {
		return nil, common.Errorf("hours must be non-negative: %w", common.ErrValidation)
	}

	entry := &model.HoursEntry{
		UserID: p.UserID,
		Month:  req.Month,
		Hours:  hours,
	}
	if err := s.ledgerRepo.InsertHoursEntry(ctx, entry); err != nil {
		return nil, common.Errorf("failed to create hours entry: %w", err)
	}
	return entry, nil
}

// SubmitHoliday appends an unapproved holiday request covering the inclusive
// range [start_date, end_date].
func (s *LedgerService) SubmitHoliday(ctx context.Context, p model.Principal, req SubmitHolidayRequest) (*model.HolidayRequest, error) {
	if p.Role != model.RoleEmployee {
		return nil, common.Errorf("only employees may request holiday: %w", common.ErrForbidden)
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, common.Errorf("start_date %q is not a valid date: %w", req.StartDate, common.ErrValidation)
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, common.Errorf("end_date %q is not a valid date: %w", req.EndDate, common.ErrValidation)
	}
	if end.Before(start) {
		return nil, common.Errorf("end_date must not be before start_date: %w", common.ErrValidation)
	}

	request := &model.HolidayRequest{
		UserID:    p.UserID,
		StartDate: start,
		EndDate:   end,
	}
	if err := s.ledgerRepo.InsertHolidayRequest(ctx, request); err != nil {
		return nil, common.Errorf("failed to create holiday request: %w", err)
	}
	return request, nil
}

// ApproveHours marks an hours entry approved. Approving an already-approved
// entry is a no-op success; an unknown id is ErrNotFound.
func (s *LedgerService) ApproveHours(ctx context.Context, p model.Principal, entryID int64) error {
	if p.Role != model.RoleManager {
		return common.Errorf("only managers may approve hours: %w", common.ErrForbidden)
	}
	if err := s.ledgerRepo.ApproveHoursEntry(ctx, entryID); err != nil {
		return common.Errorf("failed to approve hours entry %d: %w", entryID, err)
	}
	return nil
}

func (s *LedgerService) ApproveHoliday(ctx context.Context, p model.Principal, requestID int64) error {
	if p.Role != model.RoleManager {
		return common.Errorf("only managers may approve holiday requests: %w", common.ErrForbidden)
	}
	if err := s.ledgerRepo.ApproveHolidayRequest(ctx, requestID); err != nil {
		return common.Errorf("failed to approve holiday request %d: %w", requestID, err)
	}
	return nil
}

// ListForUser returns the full ledger for one user, approved and pending rows
// alike.
func (s *LedgerService) ListForUser(ctx context.Context, userID string) ([]model.HoursEntry, []model.HolidayRequest, error) {
	entries, err := s.ledgerRepo.ListHoursForUser(ctx, userID)
	if err != nil {
		return nil, nil, common.Errorf("failed to list hours: %w", err)
	}
	requests, err := s.ledgerRepo.ListHolidaysForUser(ctx, userID)
	if err != nil {
		return nil, nil, common.Errorf("failed to list holidays: %w", err)
	}
	return entries, requests, nil
}

// ListPending returns all unapproved rows across users, for the manager view.
func (s *LedgerService) ListPending(ctx context.Context) ([]model.HoursEntry, []model.HolidayRequest, error) {
	entries, err := s.ledgerRepo.ListPendingHours(ctx)
	if err != nil {
		return nil, nil, common.Errorf("failed to list pending hours: %w", err)
	}
	requests, err := s.ledgerRepo.ListPendingHolidays(ctx)
	if err != nil {
		return nil, nil, common.Errorf("failed to list pending holidays: %w", err)
	}
	return entries, requests, nil
}
