package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/mvillarin/patrol_dispatch_system/internal/geo"
	"github.com/mvillarin/patrol_dispatch_system/internal/models"
)

// ContainmentIndex answers point-in-polygon queries over the barangay
// boundary rings. The snapshot is loaded lazily from the repository and must
// be invalidated whenever barangay data is edited.
//
// When several rings contain a point the lowest barangay id wins. That
// tie-break is deterministic but arbitrary; there is no "most specific"
// resolution for overlapping boundaries.
type ContainmentIndex struct {
	repo BarangayRepository

	mu      sync.RWMutex
	entries []*models.Barangay
	loaded  bool
}

// NewContainmentIndex creates an index over the given barangay repository.
func NewContainmentIndex(repo BarangayRepository) *ContainmentIndex {
	return &ContainmentIndex{repo: repo}
}

// Locate returns the first barangay whose boundary ring contains the point,
// or nil when no ring matches. Absent or malformed rings are skipped.
func (i *ContainmentIndex) Locate(ctx context.Context, lat, lng float64) (*models.Barangay, error) {
	entries, err := i.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	for _, b := range entries {
		if geo.PointInRing(lat, lng, b.BoundaryPolygon) {
			return b, nil
		}
	}
	return nil, nil
}

// Invalidate drops the cached snapshot. The next Locate reloads it.
func (i *ContainmentIndex) Invalidate() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.entries = nil
	i.loaded = false
}

func (i *ContainmentIndex) snapshot(ctx context.Context) ([]*models.Barangay, error) {
	i.mu.RLock()
	if i.loaded {
		entries := i.entries
		i.mu.RUnlock()
		return entries, nil
	}
	i.mu.RUnlock()

	i.mu.Lock()
	defer i.mu.Unlock()
	if i.loaded {
		return i.entries, nil
	}

	barangays, err := i.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load barangay boundaries: %w", err)
	}

	entries := make([]*models.Barangay, 0, len(barangays))
	for _, b := range barangays {
		if len(b.BoundaryPolygon) < 3 {
			continue
		}
		entries = append(entries, b)
	}
	sort.Slice(entries, func(a, z int) bool { return entries[a].ID < entries[z].ID })

	i.entries = entries
	i.loaded = true
	return i.entries, nil
}
