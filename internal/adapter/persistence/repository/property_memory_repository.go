package repository

import (
	"context"
	"sync"

	"azhub/internal/domain/entities"
	"azhub/internal/usecase/interfaces"
)

// PropertyMemoryRepository is an in-memory IPropertyRepository used when
// PERSISTENCE_MOCK is enabled. Entities are deep-copied on the way in and out
// so callers never share slices with the store.

type PropertyMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Property
	order []string
}

var _ interfaces.IPropertyRepository = (*PropertyMemoryRepository)(nil)

func NewPropertyMemoryRepository(seed []entities.Property) *PropertyMemoryRepository {
	r := &PropertyMemoryRepository{items: make(map[string]entities.Property, len(seed))}
	for _, p := range seed {
		r.items[p.ID] = cloneProperty(p)
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *PropertyMemoryRepository) List(ctx context.Context) ([]entities.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Property, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneProperty(r.items[id]))
	}
	return out, nil
}

func (r *PropertyMemoryRepository) GetByID(ctx context.Context, id string) (entities.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return entities.Property{}, nil
	}
	return cloneProperty(p), nil
}

func (r *PropertyMemoryRepository) Create(ctx context.Context, p entities.Property) (entities.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[p.ID]; !exists {
		r.order = append(r.order, p.ID)
	}
	r.items[p.ID] = cloneProperty(p)
	return p, nil
}

func (r *PropertyMemoryRepository) Update(ctx context.Context, p entities.Property) (entities.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[p.ID]; !exists {
		return entities.Property{}, nil
	}
	r.items[p.ID] = cloneProperty(p)
	return p, nil
}

func cloneProperty(p entities.Property) entities.Property {
	out := p
	out.Log = append([]entities.LogEntry(nil), p.Log...)
	out.Bids = append([]entities.Bid(nil), p.Bids...)
	return out
}
