package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
)

func TestReservationStore_LoadEmpty(t *testing.T) {
	store := NewReservationStore()

	got, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, ":memory:", store.Location())
}

func TestReservationStore_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	store := NewReservationStore(domain.Reservation{ID: "RES-10000"})

	require.NoError(t, store.Save(ctx, []domain.Reservation{{ID: "RES-10001"}, {ID: "RES-10002"}}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "RES-10001", got[0].ID)
	assert.Equal(t, 1, store.Saves())
}

func TestReservationStore_LoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewReservationStore(domain.Reservation{ID: "RES-10000", Name: "Asha"})

	got, err := store.Load(ctx)
	require.NoError(t, err)
	got[0].Name = "changed"

	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Asha", again[0].Name)
}
