package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/medicart/internal/client/catalog"
	"github.com/dmitrijs2005/medicart/internal/client/models"
)

// ensureCatalog loads the product listing on first use and caches it for the
// rest of the session.
func (a *App) ensureCatalog(ctx context.Context) error {
	if a.products != nil {
		return nil
	}
	products, err := a.catalog.List(ctx)
	if err != nil {
		return err
	}
	a.products = products
	return nil
}

func (a *App) findProduct(id int64) *models.Product {
	for i := range a.products {
		if a.products[i].ID == id {
			return &a.products[i]
		}
	}
	return nil
}

// Browse lists the catalog, optionally filtered by a case-insensitive query
// over name and description.
func (a *App) Browse(ctx context.Context, query string) error {
	if err := a.ensureCatalog(ctx); err != nil {
		a.log.Error(ctx, "failed to load catalog", "error", err)
		printlnFn("Failed to load products, please try again later")
		return err
	}

	products := catalog.Search(a.products, query)
	if len(products) == 0 {
		printlnFn("No products found")
		return nil
	}

	for _, p := range products {
		printlnFn(fmt.Sprintf("%4d  %-40s  $%8.2f  %s (stock: %d)", p.ID, p.Name, p.Price, p.Category, p.Stock))
	}
	return nil
}

// Categories lists the distinct product categories.
func (a *App) Categories(ctx context.Context) error {
	if err := a.ensureCatalog(ctx); err != nil {
		a.log.Error(ctx, "failed to load catalog", "error", err)
		printlnFn("Failed to load products, please try again later")
		return err
	}

	for _, c := range catalog.Categories(a.products) {
		printlnFn("- " + c)
	}
	return nil
}
