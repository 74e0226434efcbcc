package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealdesk/internal/models"
	"dealdesk/internal/repositories"
	"dealdesk/internal/seed"
)

func newTestContactService(t *testing.T) *ContactService {
	t.Helper()
	repo := repositories.NewContactRepository()
	for _, c := range seed.Contacts() {
		require.NoError(t, repo.Create(&c))
	}
	svc := NewContactService(repo)
	svc.Now = func() time.Time { return fixedNow }
	svc.NewID = func() string { return "c-new" }
	return svc
}

func TestContactService_CreateDefaults(t *testing.T) {
	svc := newTestContactService(t)

	c, err := svc.Create(models.ContactInput{
		FirstName: ptr("Ada"),
		LastName:  ptr("Lovelace"),
		Email:     ptr("ada@engine.org"),
	})
	require.NoError(t, err)
	assert.Equal(t, "c-new", c.ID)
	assert.Equal(t, models.CategoryLead, c.Category)
	assert.Equal(t, models.ContactActive, c.Status)
	assert.Equal(t, "2024-03-15", c.DateAdded.String())
	assert.Len(t, svc.List(models.ContactFilter{}), 4)
}

func TestContactService_CreateValidation(t *testing.T) {
	svc := newTestContactService(t)

	_, err := svc.Create(models.ContactInput{
		LastName: ptr("Lovelace"),
		Email:    ptr("not-an-email"),
		Category: ptr(models.ContactCategory("friend")),
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"firstName", "email", "category"}, verr.Fields)
	assert.Len(t, svc.List(models.ContactFilter{}), 3)
}

func TestContactService_ListFilters(t *testing.T) {
	svc := newTestContactService(t)

	names := func(cs []models.Contact) []string {
		out := []string{}
		for _, c := range cs {
			out = append(out, c.FullName())
		}
		return out
	}

	assert.Equal(t, []string{"John Smith", "Michael Chen"},
		names(svc.List(models.ContactFilter{Category: models.CategoryCustomer})))
	assert.Equal(t, []string{"Sarah Johnson"}, names(svc.List(models.ContactFilter{Search: "TECHFLOW"})))
	assert.Equal(t, []string{"John Smith"}, names(svc.List(models.ContactFilter{Search: "john smith"})))
	assert.Equal(t, []string{"Michael Chen"}, names(svc.List(models.ContactFilter{Category: models.CategoryAll, Search: "mchen@"})))
	assert.Empty(t, svc.List(models.ContactFilter{Category: models.CategoryVendor}))
}

func TestContactService_UpdateAndDelete(t *testing.T) {
	svc := newTestContactService(t)

	c, err := svc.Update("2", models.ContactInput{
		Category: ptr(models.CategoryCustomer),
		Status:   ptr(models.ContactActive),
	})
	require.NoError(t, err)
	assert.Equal(t, "Sarah", c.FirstName)
	assert.Equal(t, models.CategoryCustomer, c.Category)

	_, err = svc.Update("2", models.ContactInput{Email: ptr("")})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Update("42", models.ContactInput{})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete("2"))
	_, err = svc.GetByID("2")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete("2"), ErrNotFound)
}
