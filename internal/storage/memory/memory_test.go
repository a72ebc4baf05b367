package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jagritimaurya743-source/college-society-management/internal/domain"
	"github.com/jagritimaurya743-source/college-society-management/internal/search"
	"github.com/jagritimaurya743-source/college-society-management/internal/seed"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ds, err := seed.Default()
	require.NoError(t, err)
	return NewStore(ds)
}

func TestStore_ListSocieties(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	all, err := store.ListSocieties(ctx, search.SocietyCriteria{Category: domain.AllCategories})
	require.NoError(t, err)
	assert.Len(t, all, 8)

	tech, err := store.ListSocieties(ctx, search.SocietyCriteria{Category: "Technology"})
	require.NoError(t, err)
	require.Len(t, tech, 2)
	assert.Equal(t, "Tech Innovators", tech[0].Name)
	assert.Equal(t, "Robotics Guild", tech[1].Name)
}

func TestStore_ListEvents(t *testing.T) {
	store := newTestStore(t)

	got, err := store.ListEvents(context.Background(), search.EventCriteria{Query: "cleanup", Status: "Upcoming", Type: domain.AllTypes})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Campus Cleanup Drive", got[0].Title)

	none, err := store.ListEvents(context.Background(), search.EventCriteria{Status: "Completed", Type: "Workshop"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_Lookups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	soc, err := store.GetSociety(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Design Studio", soc.Name)

	_, err = store.GetSociety(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	evt, err := store.GetEvent(ctx, "5")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, evt.Status)

	_, err = store.GetEvent(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_UpcomingEvents(t *testing.T) {
	store := newTestStore(t)

	got, err := store.UpcomingEvents(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, e := range got {
		assert.Equal(t, domain.StatusUpcoming, e.Status)
	}
	assert.Equal(t, []string{"1", "2", "3"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestStore_Dashboard(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	acts, err := store.Activities(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, acts, 2)

	acts, err = store.Activities(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, acts, 4)

	shares, err := store.CategoryBreakdown(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, shares)
	assert.Equal(t, domain.CategoryShare{Name: "Technology", Value: 2}, shares[0])

	total := 0
	for _, s := range shares {
		total += s.Value
	}
	assert.Equal(t, 8, total)
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	stats[0].Value = -1

	again, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, -1, again[0].Value)
}

func TestStore_SocietyTagsAreCopied(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	soc, err := store.GetSociety(ctx, "1")
	require.NoError(t, err)
	require.NotEmpty(t, soc.Tags)
	soc.Tags[0] = "mutated"

	listed, err := store.ListSocieties(ctx, search.SocietyCriteria{Query: "Tech Innovators"})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "AI", listed[0].Tags[0])
	listed[0].Tags[0] = "mutated"

	again, err := store.GetSociety(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"AI", "Web Dev", "Open Source"}, again.Tags)
}
