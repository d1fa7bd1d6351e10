package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/medicart/internal/client/models"
	"github.com/dmitrijs2005/medicart/internal/client/repositories/kv"
	"github.com/dmitrijs2005/medicart/internal/common"
	"github.com/dmitrijs2005/medicart/internal/dbx"
)

// ordersKey is the store key holding the global append-only order ledger.
const ordersKey = "orders"

// OrderService is the order ledger: it finalizes carts into immutable
// orders at checkout and lists a user's order history.
type OrderService struct {
	db    *sql.DB
	newKV kv.Factory
}

// NewOrderService constructs an OrderService over the given store.
func NewOrderService(db *sql.DB, newKV kv.Factory) *OrderService {
	return &OrderService{db: db, newKV: newKV}
}

func loadOrders(ctx context.Context, repo kv.Repository) ([]models.Order, error) {
	raw, err := repo.Get(ctx, ordersKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []models.Order{}, nil
	}

	var orders []models.Order
	if err := models.UnmarshalDocument(raw, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Checkout finalizes the cart for the given user.
//
// Preconditions, checked in order: user must be present
// (common.ErrNotAuthenticated), then the cart must be non-empty
// (common.ErrEmptyCart). On success an order with a fresh id, a snapshot
// of the cart lines, the cart total, the current UTC time and the user's
// id is appended to the ledger, and the persisted cart is cleared — both
// writes inside one transaction, so no reader ever observes the order
// without the cleared cart or vice versa. A storage failure surfaces to
// the caller; the cart is left untouched.
func (s *OrderService) Checkout(ctx context.Context, cart *CartStore, user *models.Profile) (*models.Order, error) {
	if user == nil {
		return nil, common.ErrNotAuthenticated
	}
	if cart.ItemCount() == 0 {
		return nil, common.ErrEmptyCart
	}

	order := models.Order{
		ID:        uuid.NewString(),
		Items:     cart.Lines(),
		Total:     cart.TotalPrice(),
		CreatedAt: time.Now().UTC(),
		UserID:    user.ID,
	}

	emptyCart, err := models.MarshalDocument([]models.CartLine{})
	if err != nil {
		return nil, fmt.Errorf("failed to encode empty cart: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.newKV(tx)

		orders, err := loadOrders(ctx, repo)
		if err != nil {
			return fmt.Errorf("failed to load order ledger: %w", err)
		}

		orders = append(orders, order)
		raw, err := models.MarshalDocument(orders)
		if err != nil {
			return fmt.Errorf("failed to encode order ledger: %w", err)
		}

		if err := repo.Set(ctx, ordersKey, raw); err != nil {
			return fmt.Errorf("failed to save order ledger: %w", err)
		}
		if err := repo.Set(ctx, cartKey, emptyCart); err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cart.discard()
	return &order, nil
}

// List returns the user's orders, newest first (reverse of append order).
// Only orders whose userId matches exactly are returned.
func (s *OrderService) List(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := loadOrders(ctx, s.newKV(s.db))
	if err != nil {
		return nil, fmt.Errorf("failed to load order ledger: %w", err)
	}

	result := make([]models.Order, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		if orders[i].UserID == userID {
			result = append(result, orders[i])
		}
	}
	return result, nil
}
