package repositories

import (
	"fmt"
	"sync"

	"dealdesk/internal/models"
)

type ContactRepository struct {
	mu       sync.RWMutex
	contacts []models.Contact
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

func (r *ContactRepository) Create(c *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(c.ID) >= 0 {
		return fmt.Errorf("create contact %s: %w", c.ID, ErrDuplicateID)
	}
	r.contacts = append(r.contacts, *c)
	return nil
}

// GetByID returns nil when absent.
func (r *ContactRepository) GetByID(id string) (*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	c := r.contacts[i]
	return &c, nil
}

func (r *ContactRepository) List(match func(*models.Contact) bool) []models.Contact {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Contact, 0, len(r.contacts))
	for i := range r.contacts {
		if match == nil || match(&r.contacts[i]) {
			out = append(out, r.contacts[i])
		}
	}
	return out
}

func (r *ContactRepository) Update(id string, mutate func(*models.Contact) error) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("update contact %s: %w", id, ErrNotFound)
	}
	next := r.contacts[i]
	if err := mutate(&next); err != nil {
		return nil, err
	}
	next.ID = r.contacts[i].ID
	r.contacts[i] = next
	out := next
	return &out, nil
}

func (r *ContactRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("delete contact %s: %w", id, ErrNotFound)
	}
	r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
	return nil
}

func (r *ContactRepository) indexOf(id string) int {
	for i := range r.contacts {
		if r.contacts[i].ID == id {
			return i
		}
	}
	return -1
}
