package repository

import (
	"context"
	"database/sql"
	"fmt"

	"holiday_tracker/internal/common"
	"holiday_tracker/internal/domain/model"
)

// LedgerRepository persists hours entries and holiday requests. Rows are
// append-only; the approve operations are the only updates and are idempotent
// at the statement level (re-approving a row matches it again and changes
// nothing).
type LedgerRepository interface {
	InsertHoursEntry(ctx context.Context, entry *model.HoursEntry) error
	InsertHolidayRequest(ctx context.Context, req *model.HolidayRequest) error

	ApproveHoursEntry(ctx context.Context, id int64) error
	ApproveHolidayRequest(ctx context.Context, id int64) error

	ListHoursForUser(ctx context.Context, userID string) ([]model.HoursEntry, error)
	ListHolidaysForUser(ctx context.Context, userID string) ([]model.HolidayRequest, error)
	ListPendingHours(ctx context.Context) ([]model.HoursEntry, error)
	ListPendingHolidays(ctx context.Context) ([]model.HolidayRequest, error)
}

type pgLedgerRepository struct {
	db *sql.DB
}

func NewPgLedgerRepository(db *sql.DB) LedgerRepository {
	return &pgLedgerRepository{db: db}
}

func (r *pgLedgerRepository) InsertHoursEntry(ctx context.Context, entry *model.HoursEntry) error {
	query := `INSERT INTO hours_entries (user_id, month, hours)
	          VALUES ($1, $2, $3)
	          RETURNING id, approved, created_at`
	err := r.db.QueryRowContext(ctx, query, entry.UserID, entry.Month, entry.Hours).Scan(
		&entry.ID, &entry.Approved, &entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("pgLedgerRepository.InsertHoursEntry: %w", err)
	}
	return nil
}

func (r *pgLedgerRepository) InsertHolidayRequest(ctx context.Context, req *model.HolidayRequest) error {
	query := `INSERT INTO holiday_requests (user_id, start_date, end_date)
	          VALUES ($1, $2, $3)
	          RETURNING id, approved, created_at`
	err := r.db.QueryRowContext(ctx, query, req.UserID, req.StartDate, req.EndDate).Scan(
		&req.ID, &req.Approved, &req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("pgLedgerRepository.InsertHolidayRequest: %w", err)
	}
	return nil
}

func (r *pgLedgerRepository) ApproveHoursEntry(ctx context.Context, id int64) error {
	return r.approve(ctx, "hours_entries", id)
}

func (r *pgLedgerRepository) ApproveHolidayRequest(ctx context.Context, id int64) error {
	return r.approve(ctx, "holiday_requests", id)
}

func (r *pgLedgerRepository) approve(ctx context.Context, table string, id int64) error {
	// table is one of two fixed names, never user input.
	query := fmt.Sprintf(`UPDATE %s SET approved = TRUE WHERE id = $1`, table)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("pgLedgerRepository.approve %s: %w", table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgLedgerRepository.approve %s: %w", table, err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgLedgerRepository) ListHoursForUser(ctx context.Context, userID string) ([]model.HoursEntry, error) {
	query := `SELECT id, user_id, month, hours, approved, created_at
	          FROM hours_entries WHERE user_id = $1 ORDER BY id`
	return r.queryHours(ctx, query, userID)
}

func (r *pgLedgerRepository) ListPendingHours(ctx context.Context) ([]model.HoursEntry, error) {
	query := `SELECT id, user_id, month, hours, approved, created_at
	          FROM hours_entries WHERE approved = FALSE ORDER BY id`
	return r.queryHours(ctx, query)
}

func (r *pgLedgerRepository) queryHours(ctx context.Context, query string, args ...interface{}) ([]model.HoursEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgLedgerRepository.queryHours: %w", err)
	}
	defer rows.Close()

	var entries []model.HoursEntry
	for rows.Next() {
		var e model.HoursEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Month, &e.Hours, &e.Approved, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgLedgerRepository.queryHours: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *pgLedgerRepository) ListHolidaysForUser(ctx context.Context, userID string) ([]model.HolidayRequest, error) {
	query := `SELECT id, user_id, start_date, end_date, approved, created_at
	          FROM holiday_requests WHERE user_id = $1 ORDER BY id`
	return r.queryHolidays(ctx, query, userID)
}

func (r *pgLedgerRepository) ListPendingHolidays(ctx context.Context) ([]model.HolidayRequest, error) {
	query := `SELECT id, user_id, start_date, end_date, approved, created_at
	          FROM holiday_requests WHERE approved = FALSE ORDER BY id`
	return r.queryHolidays(ctx, query)
}

func (r *pgLedgerRepository) queryHolidays(ctx context.Context, query string, args ...interface{}) ([]model.HolidayRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgLedgerRepository.queryHolidays: %w", err)
	}
	defer rows.Close()

	var requests []model.HolidayRequest
	for rows.Next() {
		var hr model.HolidayRequest
		if err := rows.Scan(&hr.ID, &hr.UserID, &hr.StartDate, &hr.EndDate, &hr.Approved, &hr.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgLedgerRepository.queryHolidays: %w", err)
		}
		requests = append(requests, hr)
	}
	return requests, rows.Err()
}
