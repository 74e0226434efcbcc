package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealdesk/internal/models"
)

func TestDealRepository(t *testing.T) {
	r := NewDealRepository()
	require.NoError(t, r.Create(&models.Deal{ID: "1", Name: "A", CreatedAt: models.MustDate("2023-01-01")}))
	require.NoError(t, r.Create(&models.Deal{ID: "2", Name: "B"}))
	assert.ErrorIs(t, r.Create(&models.Deal{ID: "1"}), ErrDuplicateID)
	assert.Equal(t, 2, r.CountDeals())

	missing, err := r.GetByID("3")
	require.NoError(t, err)
	assert.Nil(t, missing)

	got, err := r.GetByID("1")
	require.NoError(t, err)
	got.Name = "changed"
	again, _ := r.GetByID("1")
	assert.Equal(t, "A", again.Name, "GetByID returns a copy")

	updated, err := r.Update("1", func(d *models.Deal) error {
		d.ID = "hijack"
		d.CreatedAt = models.Date{}
		d.Name = "A2"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "1", updated.ID)
	assert.Equal(t, "2023-01-01", updated.CreatedAt.String())
	assert.Equal(t, "A2", updated.Name)

	boom := errors.New("boom")
	_, err = r.Update("1", func(d *models.Deal) error {
		d.Name = "never stored"
		return boom
	})
	assert.ErrorIs(t, err, boom)
	again, _ = r.GetByID("1")
	assert.Equal(t, "A2", again.Name)

	_, err = r.Update("9", func(*models.Deal) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)

	only := r.List(func(d *models.Deal) bool { return d.Name == "B" })
	require.Len(t, only, 1)
	assert.Equal(t, "2", only[0].ID)

	require.NoError(t, r.Delete("1"))
	assert.ErrorIs(t, r.Delete("1"), ErrNotFound)
	assert.Len(t, r.List(nil), 1)
}

func TestContactRepository(t *testing.T) {
	r := NewContactRepository()
	require.NoError(t, r.Create(&models.Contact{ID: "1", FirstName: "Ada"}))
	assert.ErrorIs(t, r.Create(&models.Contact{ID: "1"}), ErrDuplicateID)

	c, err := r.Update("1", func(c *models.Contact) error {
		c.LastName = "Lovelace"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", c.FullName())

	require.NoError(t, r.Delete("1"))
	got, err := r.GetByID("1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTaskRepository(t *testing.T) {
	ctx := context.Background()
	r := NewTaskRepository()

	for i := 0; i < 3; i++ {
		require.NoError(t, r.Store(ctx, &models.Task{Title: "t"}))
	}
	require.NoError(t, r.Delete(ctx, 2))

	task := &models.Task{Title: "next"}
	require.NoError(t, r.Store(ctx, task))
	assert.Equal(t, int64(4), task.ID, "ids continue from the max")

	all, err := r.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = r.FindByID(cancelled, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
