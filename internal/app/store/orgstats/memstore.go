// internal/app/store/orgstats/memstore.go
package orgstatstore

import (
	"context"
	"sort"
	"sync"

	"github.com/dalemusser/mediaindex/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemStore keeps records in process memory. It backs store_type=memory
// and handler tests.
type MemStore struct {
	mu    sync.RWMutex
	stats []models.OrganizationStat
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) Save(_ context.Context, stat models.OrganizationStat) (models.OrganizationStat, error) {
	stat.NameCI = text.Fold(stat.Name)

	m.mu.Lock()
	defer m.mu.Unlock()

	if stat.ID.IsZero() {
		stat.ID = primitive.NewObjectID()
		m.stats = append(m.stats, stat)
		return stat, nil
	}
	for i := range m.stats {
		if m.stats[i].ID == stat.ID {
			m.stats[i] = stat
			return stat, nil
		}
	}
	m.stats = append(m.stats, stat)
	return stat, nil
}

func (m *MemStore) Latest(ctx context.Context) (models.OrganizationStat, error) {
	stats, _ := m.Recent(ctx, 1)
	if len(stats) == 0 {
		return models.OrganizationStat{}, ErrNotFound
	}
	return stats[0], nil
}

func (m *MemStore) Recent(_ context.Context, n int) ([]models.OrganizationStat, error) {
	m.mu.RLock()
	sorted := make([]models.OrganizationStat, len(m.stats))
	copy(sorted, m.stats)
	m.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.Hex() > b.ID.Hex()
	})

	if n < 0 {
		n = 0
	}
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted, nil
}

func (m *MemStore) Count(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.stats)), nil
}

func (m *MemStore) Ping(context.Context) error {
	return nil
}
