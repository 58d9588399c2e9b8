package store

import (
	"context"

	"github.com/Kxvin1/life-dashboard/internal/cache"
	"github.com/Kxvin1/life-dashboard/internal/core/domain"
	"github.com/Kxvin1/life-dashboard/internal/core/ports"
)

// CategoriesPath is the backend collection path for finance categories.
const CategoriesPath = "/api/categories"

// Categories is the domain data store for finance categories.
type Categories struct {
	*Collection[domain.Category]
}

// NewCategories creates the categories store and attaches it to the bridge.
func NewCategories(gateway ports.Gateway, bridge *cache.Bridge) *Categories {
	return &Categories{Collection: New[domain.Category]("categories", CategoriesPath, gateway, bridge)}
}

// Add creates a new category from the given input.
func (c *Categories) Add(ctx context.Context, input domain.CategoryInput) (domain.Category, error) {
	return c.Create(ctx, input)
}

// Rename updates a category's name.
func (c *Categories) Rename(ctx context.Context, id, name string) (domain.Category, error) {
	return c.Update(ctx, id, domain.CategoryPatch{Name: &name})
}

// TotalByKind sums the monthly totals of all categories of the given kind.
func (c *Categories) TotalByKind(kind domain.CategoryKind) int64 {
	var total int64
	for _, cat := range c.Items() {
		if cat.Kind == kind {
			total += cat.MonthlyTotal
		}
	}
	return total
}
