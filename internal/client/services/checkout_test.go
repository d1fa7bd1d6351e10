package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/medicart/internal/client/models"
	"github.com/dmitrijs2005/medicart/internal/common"
)

func TestCheckout_RequiresSession(t *testing.T) {
	db, newKV := setupStore(t)
	cart := NewCartStore(db, newKV)
	svc := NewOrderService(db, newKV)
	ctx := context.Background()

	require.NoError(t, cart.Add(ctx, aspirin()))

	_, err := svc.Checkout(ctx, cart, nil)
	require.ErrorIs(t, err, common.ErrNotAuthenticated)

	// neither cart nor ledger may change
	assert.Equal(t, 1, cart.ItemCount())
	orders, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckout_RequiresNonEmptyCart(t *testing.T) {
	db, newKV := setupStore(t)
	cart := NewCartStore(db, newKV)
	svc := NewOrderService(db, newKV)
	ctx := context.Background()

	user := testProfile()
	_, err := svc.Checkout(ctx, cart, &user)
	require.ErrorIs(t, err, common.ErrEmptyCart)

	orders, err := svc.List(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckout_AppendsOrderAndClearsCart(t *testing.T) {
	db, newKV := setupStore(t)
	cart := NewCartStore(db, newKV)
	svc := NewOrderService(db, newKV)
	ctx := context.Background()

	require.NoError(t, cart.Add(ctx, aspirin()))
	require.NoError(t, cart.Add(ctx, serum()))
	require.NoError(t, cart.Add(ctx, aspirin()))
	totalBefore := cart.TotalPrice()

	user := testProfile()
	order, err := svc.Checkout(ctx, cart, &user)
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)
	assert.Equal(t, totalBefore, order.Total)
	assert.Equal(t, user.ID, order.UserID)
	assert.False(t, order.CreatedAt.IsZero())
	require.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// the cart is empty in memory and in the store
	assert.Equal(t, 0, cart.ItemCount())
	reloaded := NewCartStore(db, newKV)
	require.NoError(t, reloaded.Load(ctx))
	assert.Empty(t, reloaded.Lines())

	// the ledger gained exactly one order
	orders, err := svc.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestCheckout_OrderSnapshotIsImmutable(t *testing.T) {
	db, newKV := setupStore(t)
	cart := NewCartStore(db, newKV)
	svc := NewOrderService(db, newKV)
	ctx := context.Background()

	require.NoError(t, cart.Add(ctx, aspirin()))
	user := testProfile()

	order, err := svc.Checkout(ctx, cart, &user)
	require.NoError(t, err)

	// later cart activity must not leak into the recorded order
	require.NoError(t, cart.Add(ctx, serum()))
	orders, err := svc.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, order.Items, orders[0].Items)
}

func TestList_NewestFirstAndFilteredByUser(t *testing.T) {
	db, newKV := setupStore(t)
	cart := NewCartStore(db, newKV)
	svc := NewOrderService(db, newKV)
	ctx := context.Background()

	ann := models.Profile{ID: "ann"}
	bob := models.Profile{ID: "bob"}

	require.NoError(t, cart.Add(ctx, aspirin()))
	first, err := svc.Checkout(ctx, cart, &ann)
	require.NoError(t, err)

	require.NoError(t, cart.Add(ctx, serum()))
	_, err = svc.Checkout(ctx, cart, &bob)
	require.NoError(t, err)

	require.NoError(t, cart.Add(ctx, serum()))
	require.NoError(t, cart.Add(ctx, serum()))
	second, err := svc.Checkout(ctx, cart, &ann)
	require.NoError(t, err)

	orders, err := svc.List(ctx, "ann")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID, "newest first")
	assert.Equal(t, first.ID, orders[1].ID)

	bobOrders, err := svc.List(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobOrders, 1)
}

func TestCheckout_ConcreteTotal(t *testing.T) {
	db, newKV := setupStore(t)
	cart := NewCartStore(db, newKV)
	svc := NewOrderService(db, newKV)
	ctx := context.Background()

	require.NoError(t, cart.Add(ctx, models.Product{ID: 10, Name: "Kit", Price: 45.50}))
	user := testProfile()

	order, err := svc.Checkout(ctx, cart, &user)
	require.NoError(t, err)
	assert.Equal(t, 45.50, order.Total)

	orders, err := svc.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 45.50, orders[0].Total)
	assert.Empty(t, cart.Lines())
}
