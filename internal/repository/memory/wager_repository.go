package memory

import (
	"context"
	"sync"

	"match-wager/internal/model"
	"match-wager/internal/repository"
)

var _ repository.WagerRepository = (*WagerRepository)(nil)

type WagerRepository struct {
	mu     sync.RWMutex
	wagers map[string]*model.Wager
	order  []string
}

func NewWagerRepository() *WagerRepository {
	return &WagerRepository{wagers: make(map[string]*model.Wager)}
}

func (r *WagerRepository) CreateWager(_ context.Context, wager *model.Wager) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Last line of defense for the single-active-wager rule; the engine's
	// per-user locks normally make this unreachable.
	for _, id := range r.order {
		existing := r.wagers[id]
		if !existing.Status.Active() {
			continue
		}
		if existing.References(wager.PlayerA.UserID) || existing.References(wager.PlayerB.UserID) {
			return model.ErrActiveWagerExists
		}
	}

	r.wagers[wager.ID] = wager.Clone()
	r.order = append(r.order, wager.ID)
	return nil
}

func (r *WagerRepository) GetWager(_ context.Context, id string) (*model.Wager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wager, ok := r.wagers[id]
	if !ok {
		return nil, model.ErrWagerNotFound
	}
	return wager.Clone(), nil
}

func (r *WagerRepository) UpdateWager(_ context.Context, id string, mutate func(*model.Wager) error) (*model.Wager, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wager, ok := r.wagers[id]
	if !ok {
		return nil, model.ErrWagerNotFound
	}

	// Mutate a copy first so a failing mutator leaves the record intact.
	updated := wager.Clone()
	if err := mutate(updated); err != nil {
		return nil, err
	}
	r.wagers[id] = updated
	return updated.Clone(), nil
}

func (r *WagerRepository) ListWagers(_ context.Context) ([]*model.Wager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Wager, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, r.wagers[r.order[i]].Clone())
	}
	return out, nil
}

func (r *WagerRepository) ListByStatus(_ context.Context, status model.WagerStatus) ([]*model.Wager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*model.Wager
	for i := len(r.order) - 1; i >= 0; i-- {
		wager := r.wagers[r.order[i]]
		if wager.Status == status {
			out = append(out, wager.Clone())
		}
	}
	return out, nil
}

func (r *WagerRepository) ActiveWagerFor(_ context.Context, userID string) (*model.Wager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		wager := r.wagers[id]
		if wager.Status.Active() && wager.References(userID) {
			return wager.Clone(), nil
		}
	}
	return nil, nil
}
