package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mvillarin/patrol_dispatch_system/internal/models"
	"github.com/mvillarin/patrol_dispatch_system/internal/service"
	"github.com/redis/go-redis/v9"
)

const (
	stationRosterKey = "roster:stations"
	rosterCacheTTL   = 5 * time.Minute
)

type StationRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewStationRepository(db *pgxpool.Pool, redisClient *redis.Client) service.StationRepository {
	return &StationRepository{db: db, redisClient: redisClient}
}

// GetByID returns a station by id.
func (r *StationRepository) GetByID(ctx context.Context, id int64) (*models.PoliceStation, error) {
	station := &models.PoliceStation{}
	query := `SELECT id, name, latitude, longitude FROM police_stations WHERE id = $1;`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&station.ID,
		&station.Name,
		&station.Latitude,
		&station.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", service.ErrStationNotFound, id)
		}
		return nil, fmt.Errorf("failed to get station by id: %w", err)
	}
	return station, nil
}

// List returns the station roster, id-ascending, through the Redis cache.
// The roster changes rarely, so a short TTL plus invalidation on edit keeps
// the proximity fallback cheap.
func (r *StationRepository) List(ctx context.Context) ([]*models.PoliceStation, error) {
	if cached, err := r.fromCache(ctx); err == nil && cached != nil {
		return cached, nil
	}

	query := `SELECT id, name, latitude, longitude FROM police_stations ORDER BY id;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}
	defer rows.Close()

	stations := make([]*models.PoliceStation, 0)
	for rows.Next() {
		station := &models.PoliceStation{}
		if err := rows.Scan(&station.ID, &station.Name, &station.Latitude, &station.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan station row: %w", err)
		}
		stations = append(stations, station)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}

	r.toCache(ctx, stations)
	return stations, nil
}

// Upsert creates or updates a station and invalidates the roster cache.
func (r *StationRepository) Upsert(ctx context.Context, station *models.PoliceStation) error {
	query := `
		INSERT INTO police_stations (id, name, latitude, longitude)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude;
	`
	if _, err := r.db.Exec(ctx, query, station.ID, station.Name, station.Latitude, station.Longitude); err != nil {
		return fmt.Errorf("failed to upsert station: %w", err)
	}

	if err := r.redisClient.Del(ctx, stationRosterKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate station roster cache: %w", err)
	}
	return nil
}

func (r *StationRepository) fromCache(ctx context.Context) ([]*models.PoliceStation, error) {
	val, err := r.redisClient.Get(ctx, stationRosterKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var stations []*models.PoliceStation
	if err := json.Unmarshal(val, &stations); err != nil {
		return nil, err
	}
	return stations, nil
}

func (r *StationRepository) toCache(ctx context.Context, stations []*models.PoliceStation) {
	val, err := json.Marshal(stations)
	if err != nil {
		return
	}
	r.redisClient.Set(ctx, stationRosterKey, val, rosterCacheTTL)
}
