package seed_test

import (
	"testing"

	"grubdash/internal/adapters/out/memory"
	"grubdash/internal/adapters/out/seed"
	"grubdash/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixturesAreValid(t *testing.T) {
	dishes, err := seed.Dishes()
	require.NoError(t, err)
	assert.Len(t, dishes, 4)

	orders, err := seed.Orders()
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, order.Delivered, orders[1].Status())
}

func TestRun_SeedsOnlyEmptyStore(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	factory := memory.NewUnitOfWorkFactory(store)
	dishReader := memory.NewDishReader(store)
	orderReader := memory.NewOrderReader(store)

	seeded, err := seed.Run(ctx, factory, dishReader, orderReader)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = seed.Run(ctx, factory, dishReader, orderReader)
	require.NoError(t, err)
	assert.False(t, seeded)

	dishes, err := dishReader.List(ctx)
	require.NoError(t, err)
	assert.Len(t, dishes, 4)
	assert.Equal(t, "Dolcelatte and chickpea spaghetti", dishes[0].Name())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()
	id, err := uow.DishRepository().NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", id.String())
}
