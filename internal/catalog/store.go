package catalog

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("product not found")

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

// Fields are the business attributes of a product, everything but the id.
type Fields struct {
	Name        string
	Description string
	Price       float64
	Category    string
	InStock     bool
}

func (f Fields) product(id string) Product {
	return Product{
		ID:          id,
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Category:    f.Category,
		InStock:     f.InStock,
	}
}

// Store owns the product collection. Lookups by unknown id return ErrNotFound.
type Store interface {
	// List returns every product in insertion order. The slice is a copy.
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (Product, error)
	// Insert assigns a fresh id and appends the product.
	Insert(ctx context.Context, f Fields) (Product, error)
	// Replace overwrites all business fields; id and position are kept.
	Replace(ctx context.Context, id string, f Fields) (Product, error)
	Remove(ctx context.Context, id string) (Product, error)
	Len(ctx context.Context) int
	Ping(ctx context.Context) error
}

// SampleProducts is the catalog a fresh server starts with.
func SampleProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Laptop",
			Description: "High-performance laptop with 16GB RAM",
			Price:       1200,
			Category:    "electronics",
			InStock:     true,
		},
		{
			ID:          "2",
			Name:        "Smartphone",
			Description: "Latest model with 128GB storage",
			Price:       800,
			Category:    "electronics",
			InStock:     true,
		},
		{
			ID:          "3",
			Name:        "Coffee Maker",
			Description: "Programmable coffee maker with timer",
			Price:       50,
			Category:    "kitchen",
			InStock:     false,
		},
	}
}
