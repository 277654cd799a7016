package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mvillarin/patrol_dispatch_system/internal/models"
	"github.com/mvillarin/patrol_dispatch_system/internal/service"
)

type OfficerRepository struct {
	db *pgxpool.Pool
}

func NewOfficerRepository(db *pgxpool.Pool) service.OfficerRepository {
	return &OfficerRepository{db: db}
}

const officerColumns = `
	id,
	name,
	assigned_station_id,
	is_on_duty,
	push_token,
	last_latitude,
	last_longitude,
	location_updated_at`

// GetByID returns an officer by id.
func (r *OfficerRepository) GetByID(ctx context.Context, id int64) (*models.PatrolOfficer, error) {
	query := `SELECT ` + officerColumns + ` FROM patrol_officers WHERE id = $1;`
	officer, err := scanOfficer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", service.ErrOfficerNotFound, id)
		}
		return nil, fmt.Errorf("failed to get officer by id: %w", err)
	}
	return officer, nil
}

// ListOnDuty returns every officer currently on duty. Location fixes are read
// fresh from the table on every call, they move too often to cache.
func (r *OfficerRepository) ListOnDuty(ctx context.Context) ([]*models.PatrolOfficer, error) {
	query := `SELECT ` + officerColumns + ` FROM patrol_officers WHERE is_on_duty ORDER BY id;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list on-duty officers: %w", err)
	}
	defer rows.Close()

	officers := make([]*models.PatrolOfficer, 0)
	for rows.Next() {
		officer, err := scanOfficer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan officer row: %w", err)
		}
		officers = append(officers, officer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return officers, nil
}

// UpdateLocation stores the most recent location fix for an officer.
func (r *OfficerRepository) UpdateLocation(ctx context.Context, id int64, lat, lng float64, at time.Time) error {
	query := `
		UPDATE patrol_officers SET
			last_latitude = $1,
			last_longitude = $2,
			location_updated_at = $3
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, lat, lng, at, id)
	if err != nil {
		return fmt.Errorf("failed to update officer location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", service.ErrOfficerNotFound, id)
	}
	return nil
}

// SetOnDuty flips the duty flag.
func (r *OfficerRepository) SetOnDuty(ctx context.Context, id int64, onDuty bool) error {
	query := `UPDATE patrol_officers SET is_on_duty = $1 WHERE id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, onDuty, id)
	if err != nil {
		return fmt.Errorf("failed to set officer duty flag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", service.ErrOfficerNotFound, id)
	}
	return nil
}

func scanOfficer(row pgx.Row) (*models.PatrolOfficer, error) {
	officer := &models.PatrolOfficer{}
	var pushToken *string
	err := row.Scan(
		&officer.ID,
		&officer.Name,
		&officer.AssignedStationID,
		&officer.IsOnDuty,
		&pushToken,
		&officer.LastLatitude,
		&officer.LastLongitude,
		&officer.LocationUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if pushToken != nil {
		officer.PushToken = *pushToken
	}
	return officer, nil
}
