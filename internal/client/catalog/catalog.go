// Package catalog fetches the read-only product listing from the remote
// demo endpoint and maps it into the client's Product model. The endpoint
// is trusted as-is; a failed fetch surfaces as ErrUnavailable and is shown
// to the user as a failed-to-load notice. There is no retry and no
// pagination: a single bulk GET with a fixed limit.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dmitrijs2005/medicart/internal/client/models"
)

// ErrUnavailable indicates the listing endpoint could not be reached or
// answered with a non-2xx status.
var ErrUnavailable = errors.New("catalog unavailable")

// Provider is the read-only catalog source.
type Provider interface {
	List(ctx context.Context) ([]models.Product, error)
}

// HTTPProvider fetches products over HTTP from a dummyjson-compatible API.
type HTTPProvider struct {
	rc    *resty.Client
	limit int
}

// NewHTTPProvider builds a provider bound to baseURL. The same limit is
// used on every load.
func NewHTTPProvider(baseURL string, timeout time.Duration, limit int) *HTTPProvider {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)
	return &HTTPProvider{rc: rc, limit: limit}
}

// productDTO mirrors the wire shape of one product in the listing response.
type productDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Thumbnail   string  `json:"thumbnail"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Stock       int     `json:"stock"`
}

type listResponse struct {
	Products []productDTO `json:"products"`
}

// List performs GET {base}/products?limit=N and maps the response:
// title becomes Name, thumbnail becomes Image, the rest carries over.
func (p *HTTPProvider) List(ctx context.Context) ([]models.Product, error) {
	var out listResponse

	resp, err := p.rc.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(p.limit)).
		SetResult(&out).
		Get("/products")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrUnavailable, resp.Status())
	}

	products := make([]models.Product, 0, len(out.Products))
	for _, d := range out.Products {
		products = append(products, models.Product{
			ID:          d.ID,
			Name:        d.Title,
			Price:       d.Price,
			Image:       d.Thumbnail,
			Category:    d.Category,
			Description: d.Description,
			Rating:      d.Rating,
			Stock:       d.Stock,
		})
	}
	return products, nil
}

// Search filters products whose name or description contains the query,
// case-insensitively. An empty query returns the input unchanged.
func Search(products []models.Product, query string) []models.Product {
	if query == "" {
		return products
	}
	q := strings.ToLower(query)

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Categories returns the distinct product categories in first-seen order,
// prefixed with "all".
func Categories(products []models.Product) []string {
	seen := make(map[string]struct{}, len(products))
	categories := []string{"all"}
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}
