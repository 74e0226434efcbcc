package repositories

import (
	"errors"
	"fmt"
	"sync"

	"dealdesk/internal/models"
)

// ErrNotFound is returned (wrapped) when a record id is absent.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateID is returned (wrapped) when Create receives an id already stored.
var ErrDuplicateID = errors.New("duplicate id")

// DealRepository keeps deals in insertion order.
type DealRepository struct {
	mu    sync.RWMutex
	deals []models.Deal
}

func NewDealRepository() *DealRepository {
	return &DealRepository{}
}

// Create appends a deal.
func (r *DealRepository) Create(deal *models.Deal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(deal.ID) >= 0 {
		return fmt.Errorf("create deal %s: %w", deal.ID, ErrDuplicateID)
	}
	r.deals = append(r.deals, *deal)
	return nil
}

// GetByID returns a copy of the deal, or nil when absent.
func (r *DealRepository) GetByID(id string) (*models.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	d := r.deals[i]
	return &d, nil
}

// List returns copies of the deals accepted by match, in insertion order.
// A nil match accepts everything.
func (r *DealRepository) List(match func(*models.Deal) bool) []models.Deal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Deal, 0, len(r.deals))
	for i := range r.deals {
		if match == nil || match(&r.deals[i]) {
			out = append(out, r.deals[i])
		}
	}
	return out
}

// Update applies mutate to a copy of the stored deal under the write lock and
// stores the copy only if mutate returns nil.
func (r *DealRepository) Update(id string, mutate func(*models.Deal) error) (*models.Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("update deal %s: %w", id, ErrNotFound)
	}
	next := r.deals[i]
	if err := mutate(&next); err != nil {
		return nil, err
	}
	// identity fields stay put whatever mutate did
	next.ID = r.deals[i].ID
	next.CreatedAt = r.deals[i].CreatedAt
	r.deals[i] = next
	out := next
	return &out, nil
}

// Delete removes the deal with the given id.
func (r *DealRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("delete deal %s: %w", id, ErrNotFound)
	}
	r.deals = append(r.deals[:i], r.deals[i+1:]...)
	return nil
}

// CountDeals returns the number of stored deals.
func (r *DealRepository) CountDeals() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.deals)
}

func (r *DealRepository) indexOf(id string) int {
	for i := range r.deals {
		if r.deals[i].ID == id {
			return i
		}
	}
	return -1
}
