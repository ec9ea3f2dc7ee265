package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/squaredcircle/ringside/internal/domain/reign"
)

type ReignRepository struct {
	mu     sync.RWMutex
	reigns []reign.Reign
}

func NewReignRepository(reigns []reign.Reign) *ReignRepository {
	return &ReignRepository{reigns: append([]reign.Reign(nil), reigns...)}
}

func (r *ReignRepository) ListAll(_ context.Context) ([]reign.Reign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]reign.Reign(nil), r.reigns...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].WonAt.Equal(out[j].WonAt) {
			return out[i].WonAt.Before(out[j].WonAt)
		}
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].Performer < out[j].Performer
	})

	return out, nil
}

func (r *ReignRepository) Upsert(_ context.Context, item reign.Reign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.reigns {
		if existing.Performer == item.Performer && existing.Title == item.Title && existing.WonAt.Equal(item.WonAt) {
			r.reigns[i] = item
			return nil
		}
	}
	r.reigns = append(r.reigns, item)

	return nil
}
