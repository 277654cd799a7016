package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mvillarin/patrol_dispatch_system/internal/models"
	"github.com/mvillarin/patrol_dispatch_system/internal/service"
)

type DispatchRepository struct {
	db *pgxpool.Pool
}

func NewDispatchRepository(db *pgxpool.Pool) service.DispatchRepository {
	return &DispatchRepository{db: db}
}

const dispatchColumns = `
	id,
	report_id,
	station_id,
	officer_id,
	status,
	dispatched_at,
	accepted_at,
	declined_at,
	en_route_at,
	arrived_at,
	completed_at,
	cancelled_at,
	acceptance_time,
	response_time,
	completion_time,
	three_minute_rule_met,
	three_minute_rule_time,
	decline_reason,
	cancel_reason,
	verdict,
	notes,
	created_at,
	updated_at`

// Create inserts a new dispatch row. The partial unique index on
// (report_id) where status is non-terminal turns a concurrent duplicate into
// service.ErrDuplicateActiveDispatch.
func (r *DispatchRepository) Create(ctx context.Context, dispatch *models.PatrolDispatch) error {
	query := `
		INSERT INTO patrol_dispatches (id, report_id, station_id, officer_id, status, dispatched_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		dispatch.ID,
		dispatch.ReportID,
		dispatch.StationID,
		dispatch.OfficerID,
		dispatch.Status,
		dispatch.DispatchedAt,
	).Scan(&dispatch.CreatedAt, &dispatch.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return service.ErrDuplicateActiveDispatch
		}
		return fmt.Errorf("failed to create dispatch: %w", err)
	}
	return nil
}

// GetByID returns a dispatch by its UUID.
func (r *DispatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PatrolDispatch, error) {
	query := `SELECT ` + dispatchColumns + ` FROM patrol_dispatches WHERE id = $1;`
	dispatch, err := scanDispatch(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", service.ErrDispatchNotFound, id)
		}
		return nil, fmt.Errorf("failed to get dispatch by id: %w", err)
	}
	return dispatch, nil
}

// GetActiveByReport returns the report's non-terminal dispatch, or nil when
// there is none.
func (r *DispatchRepository) GetActiveByReport(ctx context.Context, reportID uuid.UUID) (*models.PatrolDispatch, error) {
	query := `
		SELECT ` + dispatchColumns + `
		FROM patrol_dispatches
		WHERE report_id = $1
		  AND status NOT IN ('declined', 'completed', 'cancelled');
	`
	dispatch, err := scanDispatch(r.db.QueryRow(ctx, query, reportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active dispatch for report: %w", err)
	}
	return dispatch, nil
}

// Update rewrites the mutable dispatch fields in a single atomic update.
func (r *DispatchRepository) Update(ctx context.Context, dispatch *models.PatrolDispatch) error {
	query := `
		UPDATE patrol_dispatches SET
			station_id = $1,
			officer_id = $2,
			status = $3,
			accepted_at = $4,
			declined_at = $5,
			en_route_at = $6,
			arrived_at = $7,
			completed_at = $8,
			cancelled_at = $9,
			acceptance_time = $10,
			response_time = $11,
			completion_time = $12,
			three_minute_rule_met = $13,
			three_minute_rule_time = $14,
			decline_reason = $15,
			cancel_reason = $16,
			verdict = $17,
			notes = $18,
			updated_at = NOW()
		WHERE id = $19;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		dispatch.StationID,
		dispatch.OfficerID,
		dispatch.Status,
		dispatch.AcceptedAt,
		dispatch.DeclinedAt,
		dispatch.EnRouteAt,
		dispatch.ArrivedAt,
		dispatch.CompletedAt,
		dispatch.CancelledAt,
		dispatch.AcceptanceTime,
		dispatch.ResponseTime,
		dispatch.CompletionTime,
		dispatch.ThreeMinuteRuleMet,
		dispatch.ThreeMinuteRuleTime,
		nullIfEmpty(dispatch.DeclineReason),
		nullIfEmpty(dispatch.CancelReason),
		nullIfEmpty(string(dispatch.Verdict)),
		nullIfEmpty(dispatch.Notes),
		dispatch.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update dispatch: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", service.ErrDispatchNotFound, dispatch.ID)
	}
	return nil
}

// List returns dispatches, newest first, with pagination.
func (r *DispatchRepository) List(ctx context.Context, page, pageSize int) ([]*models.PatrolDispatch, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT ` + dispatchColumns + `
		FROM patrol_dispatches
		ORDER BY dispatched_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatches: %w", err)
	}
	defer rows.Close()
	return collectDispatches(rows)
}

// ListByReport returns a report's full dispatch history, oldest first.
func (r *DispatchRepository) ListByReport(ctx context.Context, reportID uuid.UUID) ([]*models.PatrolDispatch, error) {
	query := `
		SELECT ` + dispatchColumns + `
		FROM patrol_dispatches
		WHERE report_id = $1
		ORDER BY dispatched_at ASC;
	`
	rows, err := r.db.Query(ctx, query, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatches for report: %w", err)
	}
	defer rows.Close()
	return collectDispatches(rows)
}

func collectDispatches(rows pgx.Rows) ([]*models.PatrolDispatch, error) {
	dispatches := make([]*models.PatrolDispatch, 0)
	for rows.Next() {
		dispatch, err := scanDispatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dispatch row: %w", err)
		}
		dispatches = append(dispatches, dispatch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return dispatches, nil
}

func scanDispatch(row pgx.Row) (*models.PatrolDispatch, error) {
	dispatch := &models.PatrolDispatch{}
	var declineReason, cancelReason, verdict, notes *string
	err := row.Scan(
		&dispatch.ID,
		&dispatch.ReportID,
		&dispatch.StationID,
		&dispatch.OfficerID,
		&dispatch.Status,
		&dispatch.DispatchedAt,
		&dispatch.AcceptedAt,
		&dispatch.DeclinedAt,
		&dispatch.EnRouteAt,
		&dispatch.ArrivedAt,
		&dispatch.CompletedAt,
		&dispatch.CancelledAt,
		&dispatch.AcceptanceTime,
		&dispatch.ResponseTime,
		&dispatch.CompletionTime,
		&dispatch.ThreeMinuteRuleMet,
		&dispatch.ThreeMinuteRuleTime,
		&declineReason,
		&cancelReason,
		&verdict,
		&notes,
		&dispatch.CreatedAt,
		&dispatch.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if declineReason != nil {
		dispatch.DeclineReason = *declineReason
	}
	if cancelReason != nil {
		dispatch.CancelReason = *cancelReason
	}
	if verdict != nil {
		dispatch.Verdict = models.Verdict(*verdict)
	}
	if notes != nil {
		dispatch.Notes = *notes
	}
	return dispatch, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
