package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/tekrabyte/waui-sub001/entity"
	"github.com/tekrabyte/waui-sub001/pkg/logger"
)

const allCategoryIcon = "🍽️"

// Catalog holds the product, category and customer lists of one session.
type Catalog struct {
	Backend CatalogBackend
	Log     *logger.Logger

	mu         sync.RWMutex
	products   []entity.Product
	categories []entity.Category
	customers  []entity.Customer
}

func NewCatalog(backend CatalogBackend, log *logger.Logger) *Catalog {
	return &Catalog{Backend: backend, Log: log}
}

// Load replaces all three lists. If any fetch fails nothing is replaced.
func (c *Catalog) Load(ctx context.Context) error {
	products, err := c.Backend.GetAllProducts(ctx)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	categories, err := c.Backend.GetAllCategories(ctx)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	customers, err := c.Backend.GetAllCustomers(ctx)
	if err != nil {
		return fmt.Errorf("load customers: %w", err)
	}

	kept := make([]entity.Category, 0, len(categories))
	for _, cat := range categories {
		if cat.ID == entity.AllCategoryID {
			continue
		}
		kept = append(kept, cat)
	}

	c.mu.Lock()
	c.products = products
	c.categories = kept
	c.customers = customers
	c.mu.Unlock()

	c.Log.Info("catalog_loaded", "", fmt.Sprintf("%d products, %d categories, %d customers",
		len(products), len(kept), len(customers)))
	return nil
}

func (c *Catalog) Products() []entity.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]entity.Product(nil), c.products...)
}

func (c *Catalog) Customers() []entity.Customer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]entity.Customer(nil), c.customers...)
}

// Product finds a product by id in the loaded list.
func (c *Catalog) Product(id string) (entity.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// Categories returns the "all" pseudo-category followed by the loaded ones,
// each with a count recomputed from the current products.
func (c *Catalog) Categories() []entity.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]entity.Category, 0, len(c.categories)+1)
	out = append(out, entity.Category{
		ID:    entity.AllCategoryID,
		Name:  "All Items",
		Icon:  allCategoryIcon,
		Count: len(c.products),
	})
	for _, cat := range c.categories {
		cat.Count = 0
		for _, p := range c.products {
			if MatchesCategory(p, cat.ID, cat.Name, true) {
				cat.Count++
			}
		}
		out = append(out, cat)
	}
	return out
}

// Visible is the product list for the selected category.
func (c *Catalog) Visible(selected string) []entity.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := FilterProducts(selected, c.products, c.categories)
	if selected == entity.AllCategoryID {
		out = append([]entity.Product(nil), out...)
	}
	return out
}
