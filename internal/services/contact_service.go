package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"dealdesk/internal/models"
	"dealdesk/internal/repositories"
)

type ContactService struct {
	Repo *repositories.ContactRepository

	Now   func() time.Time
	NewID func() string
}

func NewContactService(repo *repositories.ContactRepository) *ContactService {
	return &ContactService{Repo: repo, Now: time.Now, NewID: uuid.NewString}
}

// List filters by category and by a case-insensitive match on full name, email or company.
func (s *ContactService) List(filter models.ContactFilter) []models.Contact {
	needle := strings.ToLower(filter.Search)
	return s.Repo.List(func(c *models.Contact) bool {
		if filter.Category != "" && filter.Category != models.CategoryAll && c.Category != filter.Category {
			return false
		}
		if needle == "" {
			return true
		}
		return containsFold(c.FullName(), needle) || containsFold(c.Email, needle) || containsFold(c.Company, needle)
	})
}

func (s *ContactService) GetByID(id string) (*models.Contact, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, &NotFoundError{Kind: "contact", ID: id}
	}
	return c, nil
}

func (s *ContactService) Create(in models.ContactInput) (*models.Contact, error) {
	c := models.Contact{
		Category:  models.CategoryLead,
		Status:    models.ContactActive,
		DateAdded: today(s.Now),
	}
	// required on create even when omitted
	empty := ""
	if in.FirstName == nil {
		in.FirstName = &empty
	}
	if in.LastName == nil {
		in.LastName = &empty
	}
	if in.Email == nil {
		in.Email = &empty
	}
	if err := applyContactInput(&c, in); err != nil {
		return nil, err
	}
	if s.NewID != nil {
		c.ID = s.NewID()
	} else {
		c.ID = uuid.NewString()
	}
	if err := s.Repo.Create(&c); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return &c, nil
}

func (s *ContactService) Update(id string, in models.ContactInput) (*models.Contact, error) {
	c, err := s.Repo.Update(id, func(c *models.Contact) error {
		return applyContactInput(c, in)
	})
	if err != nil {
		return nil, notFoundOr("contact", id, err)
	}
	return c, nil
}

func (s *ContactService) Delete(id string) error {
	return notFoundOr("contact", id, s.Repo.Delete(id))
}

func applyContactInput(c *models.Contact, in models.ContactInput) error {
	v := &ValidationError{}
	if in.FirstName != nil {
		c.FirstName = requiredText(v, "firstName", in.FirstName)
	}
	if in.LastName != nil {
		c.LastName = requiredText(v, "lastName", in.LastName)
	}
	if in.Email != nil {
		email := requiredText(v, "email", in.Email)
		if email != "" && !emailPattern.MatchString(email) {
			v.add("email", "email is invalid")
		}
		c.Email = email
	}
	copyText(&c.Phone, in.Phone)
	copyText(&c.Company, in.Company)
	copyText(&c.Position, in.Position)
	copyText(&c.Address, in.Address)
	copyText(&c.Website, in.Website)
	copyText(&c.Notes, in.Notes)
	if in.Category != nil {
		switch *in.Category {
		case models.CategoryLead, models.CategoryCustomer, models.CategoryPartner, models.CategoryVendor:
			c.Category = *in.Category
		default:
			v.add("category", fmt.Sprintf("category %q is not allowed", *in.Category))
		}
	}
	if in.Status != nil {
		switch *in.Status {
		case models.ContactActive, models.ContactInactive, models.ContactProspect:
			c.Status = *in.Status
		default:
			v.add("status", fmt.Sprintf("status %q is not allowed", *in.Status))
		}
	}
	if in.DateAdded != nil && strings.TrimSpace(*in.DateAdded) != "" {
		c.DateAdded = parseDateField(v, "dateAdded", *in.DateAdded)
	}
	return v.orNil()
}

func copyText(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
