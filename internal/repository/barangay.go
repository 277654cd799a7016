package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mvillarin/patrol_dispatch_system/internal/models"
	"github.com/mvillarin/patrol_dispatch_system/internal/service"
	"github.com/redis/go-redis/v9"
)

const barangayRosterKey = "roster:barangays"

type BarangayRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewBarangayRepository(db *pgxpool.Pool, redisClient *redis.Client) service.BarangayRepository {
	return &BarangayRepository{db: db, redisClient: redisClient}
}

// GetByID returns a barangay by id.
func (r *BarangayRepository) GetByID(ctx context.Context, id int64) (*models.Barangay, error) {
	query := `SELECT id, name, station_id, boundary_polygon FROM barangays WHERE id = $1;`
	barangay, err := scanBarangay(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", service.ErrBarangayNotFound, id)
		}
		return nil, fmt.Errorf("failed to get barangay by id: %w", err)
	}
	return barangay, nil
}

// List returns the barangay roster, id-ascending, through the Redis cache.
func (r *BarangayRepository) List(ctx context.Context) ([]*models.Barangay, error) {
	if cached, err := r.fromCache(ctx); err == nil && cached != nil {
		return cached, nil
	}

	query := `SELECT id, name, station_id, boundary_polygon FROM barangays ORDER BY id;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list barangays: %w", err)
	}
	defer rows.Close()

	barangays := make([]*models.Barangay, 0)
	for rows.Next() {
		barangay, err := scanBarangay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan barangay row: %w", err)
		}
		barangays = append(barangays, barangay)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}

	r.toCache(ctx, barangays)
	return barangays, nil
}

// Upsert creates or updates a barangay and invalidates the roster cache.
func (r *BarangayRepository) Upsert(ctx context.Context, barangay *models.Barangay) error {
	var boundary []byte
	if barangay.BoundaryPolygon != nil {
		var err error
		boundary, err = json.Marshal(barangay.BoundaryPolygon)
		if err != nil {
			return fmt.Errorf("failed to marshal boundary polygon: %w", err)
		}
	}

	query := `
		INSERT INTO barangays (id, name, station_id, boundary_polygon)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			station_id = EXCLUDED.station_id,
			boundary_polygon = EXCLUDED.boundary_polygon;
	`
	if _, err := r.db.Exec(ctx, query, barangay.ID, barangay.Name, barangay.StationID, boundary); err != nil {
		return fmt.Errorf("failed to upsert barangay: %w", err)
	}

	if err := r.redisClient.Del(ctx, barangayRosterKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate barangay roster cache: %w", err)
	}
	return nil
}

func (r *BarangayRepository) fromCache(ctx context.Context) ([]*models.Barangay, error) {
	val, err := r.redisClient.Get(ctx, barangayRosterKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var barangays []*models.Barangay
	if err := json.Unmarshal(val, &barangays); err != nil {
		return nil, err
	}
	return barangays, nil
}

func (r *BarangayRepository) toCache(ctx context.Context, barangays []*models.Barangay) {
	val, err := json.Marshal(barangays)
	if err != nil {
		return
	}
	r.redisClient.Set(ctx, barangayRosterKey, val, rosterCacheTTL)
}

func scanBarangay(row pgx.Row) (*models.Barangay, error) {
	barangay := &models.Barangay{}
	var boundary []byte
	err := row.Scan(&barangay.ID, &barangay.Name, &barangay.StationID, &boundary)
	if err != nil {
		return nil, err
	}
	if len(boundary) > 0 {
		// A malformed stored ring is treated as absent, never an error: such
		// barangays simply never match containment.
		if err := json.Unmarshal(boundary, &barangay.BoundaryPolygon); err != nil {
			barangay.BoundaryPolygon = nil
		}
	}
	return barangay, nil
}
