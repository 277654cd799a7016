package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mvillarin/patrol_dispatch_system/internal/models"
	"github.com/mvillarin/patrol_dispatch_system/internal/service"
)

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) service.ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts a new incident report row.
func (r *ReportRepository) Create(ctx context.Context, report *models.IncidentReport) error {
	crimeTypes, err := json.Marshal(report.CrimeTypes)
	if err != nil {
		return fmt.Errorf("failed to marshal crime types: %w", err)
	}

	query := `
		INSERT INTO incident_reports (id, description, crime_types, latitude, longitude, barangay_id, verdict)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		report.ID,
		report.Description,
		crimeTypes,
		report.Location.Latitude,
		report.Location.Longitude,
		report.Location.BarangayID,
		report.Verdict,
	).Scan(&report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetByID returns a report by its UUID.
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.IncidentReport, error) {
	query := `
		SELECT
			id,
			description,
			crime_types,
			latitude,
			longitude,
			barangay_id,
			assigned_station_id,
			assigned_by,
			assigned_at,
			verdict,
			created_at,
			updated_at
		FROM incident_reports
		WHERE id = $1;
	`
	report, err := scanReport(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", service.ErrReportNotFound, id)
		}
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}
	return report, nil
}

// List returns reports, newest first, with pagination.
func (r *ReportRepository) List(ctx context.Context, page, pageSize int) ([]*models.IncidentReport, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT
			id,
			description,
			crime_types,
			latitude,
			longitude,
			barangay_id,
			assigned_station_id,
			assigned_by,
			assigned_at,
			verdict,
			created_at,
			updated_at
		FROM incident_reports
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.IncidentReport, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return reports, nil
}

// UpdateAssignment writes the station assignment plus its audit fields in a
// single atomic update.
func (r *ReportRepository) UpdateAssignment(ctx context.Context, id uuid.UUID, stationID int64, assignedBy string, assignedAt time.Time) error {
	query := `
		UPDATE incident_reports SET
			assigned_station_id = $1,
			assigned_by = $2,
			assigned_at = $3,
			updated_at = NOW()
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, stationID, assignedBy, assignedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update report assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", service.ErrReportNotFound, id)
	}
	return nil
}

// UpdateVerdict writes the validity verdict in a single atomic update.
func (r *ReportRepository) UpdateVerdict(ctx context.Context, id uuid.UUID, verdict models.Verdict) error {
	query := `
		UPDATE incident_reports SET
			verdict = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, verdict, id)
	if err != nil {
		return fmt.Errorf("failed to update report verdict: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", service.ErrReportNotFound, id)
	}
	return nil
}

func scanReport(row pgx.Row) (*models.IncidentReport, error) {
	report := &models.IncidentReport{}
	var crimeTypes []byte
	err := row.Scan(
		&report.ID,
		&report.Description,
		&crimeTypes,
		&report.Location.Latitude,
		&report.Location.Longitude,
		&report.Location.BarangayID,
		&report.AssignedStationID,
		&report.AssignedBy,
		&report.AssignedAt,
		&report.Verdict,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(crimeTypes) > 0 {
		if err := json.Unmarshal(crimeTypes, &report.CrimeTypes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal crime types: %w", err)
		}
	}
	return report, nil
}
