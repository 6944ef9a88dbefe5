package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wempyhq/wempy-ordering/internal/app/model"
	"github.com/wempyhq/wempy-ordering/internal/app/repository"
)

func burgerLine(quantity int) model.CartLine {
	return model.CartLine{
		Key:       model.LineKey{ItemID: "house-burger", Variant: "Large"},
		Name:      "House Burger (Large)",
		UnitPrice: 12,
		Quantity:  quantity,
	}
}

type recordingObserver struct {
	calls []model.Cart
}

func (o *recordingObserver) CartUpdated(cart model.Cart) {
	o.calls = append(o.calls, cart)
}

func TestCartService_AddLineMergesByKey(t *testing.T) {
	carts := NewCartService(repository.NewMemoryCartRepository())

	require.NoError(t, carts.AddLine(burgerLine(2)))
	require.NoError(t, carts.AddLine(burgerLine(3)))

	cart := carts.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Quantity)
}

func TestCartService_AddLineKeepsFirstUnitPrice(t *testing.T) {
	carts := NewCartService(repository.NewMemoryCartRepository())

	first := burgerLine(1)
	require.NoError(t, carts.AddLine(first))

	repriced := burgerLine(1)
	repriced.UnitPrice = 99
	require.NoError(t, carts.AddLine(repriced))

	cart := carts.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, first.UnitPrice, cart[0].UnitPrice)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestCartService_VariantsAreSeparateLines(t *testing.T) {
	carts := NewCartService(repository.NewMemoryCartRepository())

	large := burgerLine(1)
	regular := burgerLine(1)
	regular.Key.Variant = "Regular"
	regular.Name = "House Burger (Regular)"
	regular.UnitPrice = 9

	require.NoError(t, carts.AddLine(large))
	require.NoError(t, carts.AddLine(regular))

	assert.Len(t, carts.Cart(), 2)
}

func TestCartService_AddLineRejectsInvalid(t *testing.T) {
	carts := NewCartService(repository.NewMemoryCartRepository())

	zeroQty := burgerLine(0)
	assert.ErrorIs(t, carts.AddLine(zeroQty), ErrInvalidLine)

	negativePrice := burgerLine(1)
	negativePrice.UnitPrice = -1
	assert.ErrorIs(t, carts.AddLine(negativePrice), ErrInvalidLine)

	assert.True(t, carts.Cart().IsEmpty())
}

func TestCartService_AdjustQuantity(t *testing.T) {
	carts := NewCartService(repository.NewMemoryCartRepository())
	require.NoError(t, carts.AddLine(burgerLine(2)))

	key := burgerLine(1).Key

	require.NoError(t, carts.AdjustQuantity(key, 1))
	assert.Equal(t, 3, carts.Cart()[0].Quantity)

	require.NoError(t, carts.AdjustQuantity(key, -1))
	assert.Equal(t, 2, carts.Cart()[0].Quantity)
}

func TestCartService_AdjustQuantityToZeroRemovesLine(t *testing.T) {
	carts := NewCartService(repository.NewMemoryCartRepository())
	require.NoError(t, carts.AddLine(burgerLine(1)))

	require.NoError(t, carts.AdjustQuantity(burgerLine(1).Key, -1))
	assert.True(t, carts.Cart().IsEmpty())
}

func TestCartService_AdjustQuantityUnknownKeyIsNoop(t *testing.T) {
	repo := repository.NewMemoryCartRepository()
	carts := NewCartService(repo)
	require.NoError(t, carts.AddLine(burgerLine(1)))

	observer := &recordingObserver{}
	carts.Subscribe(observer)

	require.NoError(t, carts.AdjustQuantity(model.LineKey{ItemID: "ghost"}, 1))
	require.NoError(t, carts.Remove(model.LineKey{ItemID: "ghost"}))

	assert.Len(t, carts.Cart(), 1)
	assert.Empty(t, observer.calls)
}

func TestCartService_RemoveAndClear(t *testing.T) {
	carts := NewCartService(repository.NewMemoryCartRepository())
	require.NoError(t, carts.AddLine(burgerLine(2)))

	espresso := model.CartLine{
		Key:       model.LineKey{ItemID: "espresso"},
		Name:      "Espresso",
		UnitPrice: 2,
		Quantity:  1,
	}
	require.NoError(t, carts.AddLine(espresso))

	require.NoError(t, carts.Remove(espresso.Key))
	assert.Len(t, carts.Cart(), 1)

	require.NoError(t, carts.Clear())
	assert.True(t, carts.Cart().IsEmpty())
}

func TestCartService_NotifiesObserversAfterPersisting(t *testing.T) {
	repo := repository.NewMemoryCartRepository()
	carts := NewCartService(repo)

	observer := &recordingObserver{}
	carts.Subscribe(observer)

	require.NoError(t, carts.AddLine(burgerLine(2)))

	// The snapshot handed to the observer matches what was persisted.
	require.Len(t, observer.calls, 1)
	assert.Equal(t, repo.Load(), observer.calls[0])

	require.NoError(t, carts.Clear())
	require.Len(t, observer.calls, 2)
	assert.True(t, observer.calls[1].IsEmpty())
}

func TestCartService_LoadsPersistedCartAtStartup(t *testing.T) {
	repo := repository.NewMemoryCartRepository()
	require.NoError(t, repo.Save(model.Cart{burgerLine(2)}))

	carts := NewCartService(repo)
	cart := carts.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestCartService_SnapshotIsACopy(t *testing.T) {
	carts := NewCartService(repository.NewMemoryCartRepository())
	require.NoError(t, carts.AddLine(burgerLine(2)))

	snapshot := carts.Cart()
	snapshot[0].Quantity = 99

	assert.Equal(t, 2, carts.Cart()[0].Quantity)
}
