package service

import (
	"context"

	"holiday_tracker/internal/common"
	"holiday_tracker/internal/domain/model"
	"holiday_tracker/internal/domain/repository"
)

type DashboardService struct {
	ledgerService *LedgerService
	userRepo      repository.UserRepository
}

func NewDashboardService(ledgerService *LedgerService, userRepo repository.UserRepository) *DashboardService {
	return &DashboardService{ledgerService: ledgerService, userRepo: userRepo}
}

// DashboardView is the role-branched dashboard payload. Exactly one branch is
// populated: employees get their own ledger plus the computed balance,
// managers get all pending items, admins and reviewers get the user list.
type DashboardView struct {
	Role string `json:"role"`

	Hours    []model.HoursEntry     `json:"hours,omitempty"`
	Holidays []model.HolidayRequest `json:"holidays,omitempty"`
	Balance  *Balance               `json:"balance,omitempty"`

	PendingHours    []model.HoursEntry     `json:"pending_hours,omitempty"`
	PendingHolidays []model.HolidayRequest `json:"pending_holidays,omitempty"`

	Users []model.User `json:"users,omitempty"`
}

func (s *DashboardService) View(ctx context.Context, p model.Principal) (*DashboardView, error) {
	view := &DashboardView{Role: p.Role}

	switch p.Role {
	case model.RoleEmployee:
		entries, requests, err := s.ledgerService.ListForUser(ctx, p.UserID)
		if err != nil {
			return nil, err
		}
		balance := ComputeBalance(entries, requests)
		view.Hours = entries
		view.Holidays = requests
		view.Balance = &balance

	case model.RoleManager:
		entries, requests, err := s.ledgerService.ListPending(ctx)
		if err != nil {
			return nil, err
		}
		view.PendingHours = entries
		view.PendingHolidays = requests

	case model.RoleAdmin, model.RoleReviewer:
		users, err := s.userRepo.ListAll(ctx)
		if err != nil {
			return nil, common.Errorf("failed to list users: %w", err)
		}
		view.Users = users

	default:
		return nil, common.Errorf("unknown role %q: %w", p.Role, common.ErrForbidden)
	}

	return view, nil
}
