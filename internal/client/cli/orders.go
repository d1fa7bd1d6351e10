package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/medicart/internal/common"
)

// Checkout places an order from the cart for the current user. The order
// append and the cart clear happen in one transaction; on any failure the
// cart is left untouched.
func (a *App) Checkout(ctx context.Context) error {
	order, err := a.orders.Checkout(ctx, a.cart, a.session.Current())
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotAuthenticated):
			printlnFn("Please login to place an order")
			return nil
		case errors.Is(err, common.ErrEmptyCart):
			printlnFn("Please add items to cart before checkout")
			return nil
		default:
			a.log.Error(ctx, "checkout failed", "error", err)
			printlnFn("Checkout failed, please try again")
			return err
		}
	}

	printlnFn(fmt.Sprintf("Order placed! Total: $%.2f", order.Total))
	return nil
}

// Orders lists the current user's orders, newest first. An unreadable
// ledger is reported as an empty history rather than an error.
func (a *App) Orders(ctx context.Context) error {
	p, err := a.session.RequireCurrent()
	if err != nil {
		printlnFn("Please login to see your orders")
		return nil
	}

	orders, err := a.orders.List(ctx, p.ID)
	if err != nil {
		a.log.Warn(ctx, "failed to load order history", "error", err)
		orders = nil
	}

	if len(orders) == 0 {
		printlnFn("No orders yet")
		return nil
	}

	for _, o := range orders {
		printlnFn(fmt.Sprintf("%s  %s  items: %d  total: $%.2f",
			o.CreatedAt.Format("2006-01-02 15:04"), o.ID, len(o.Items), o.Total))
	}
	return nil
}
