package cli

import (
	"context"
	"fmt"
	"strconv"
)

func parseProductID(arg string) (int64, bool) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		printlnFn("Invalid product id:", arg)
		return 0, false
	}
	return id, true
}

// ShowCart prints the cart lines in insertion order with a summary.
func (a *App) ShowCart(ctx context.Context) error {
	lines := a.cart.Lines()
	if len(lines) == 0 {
		printlnFn("Your cart is empty")
		return nil
	}

	for _, l := range lines {
		printlnFn(fmt.Sprintf("%4d  %d x %-40s  $%.2f each = $%.2f",
			l.ID, l.Quantity, l.Name, l.Price, l.Price*float64(l.Quantity)))
	}
	printlnFn(fmt.Sprintf("Items: %d  Total: $%.2f", a.cart.ItemCount(), a.cart.TotalPrice()))
	return nil
}

// AddToCart adds one unit of the product to the cart. Adding does not
// require a session; only checkout does.
func (a *App) AddToCart(ctx context.Context, idArg string) error {
	id, ok := parseProductID(idArg)
	if !ok {
		return nil
	}

	if err := a.ensureCatalog(ctx); err != nil {
		a.log.Error(ctx, "failed to load catalog", "error", err)
		printlnFn("Failed to load products, please try again later")
		return err
	}

	product := a.findProduct(id)
	if product == nil {
		printlnFn("Unknown product id:", idArg)
		return nil
	}

	if err := a.cart.Add(ctx, *product); err != nil {
		a.log.Error(ctx, "failed to add to cart", "error", err)
		return err
	}

	printlnFn(fmt.Sprintf("Added %s to cart", product.Name))
	return nil
}

// RemoveFromCart deletes the cart line for the given product id.
// Removing an absent line is a no-op.
func (a *App) RemoveFromCart(ctx context.Context, idArg string) error {
	id, ok := parseProductID(idArg)
	if !ok {
		return nil
	}

	if err := a.cart.Remove(ctx, id); err != nil {
		a.log.Error(ctx, "failed to remove from cart", "error", err)
		return err
	}

	printlnFn("Removed from cart")
	return nil
}

// SetQuantity sets the quantity of a cart line. Zero or negative removes
// the line.
func (a *App) SetQuantity(ctx context.Context, idArg, quantityArg string) error {
	id, ok := parseProductID(idArg)
	if !ok {
		return nil
	}

	quantity, err := strconv.Atoi(quantityArg)
	if err != nil {
		printlnFn("Invalid quantity:", quantityArg)
		return nil
	}

	if err := a.cart.SetQuantity(ctx, id, quantity); err != nil {
		a.log.Error(ctx, "failed to update cart", "error", err)
		return err
	}

	printlnFn("Cart updated")
	return nil
}

// ClearCart empties the cart.
func (a *App) ClearCart(ctx context.Context) error {
	if err := a.cart.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear cart", "error", err)
		return err
	}
	printlnFn("Cart cleared")
	return nil
}
