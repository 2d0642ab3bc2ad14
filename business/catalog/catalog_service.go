package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"dealScout/domain"
	"dealScout/pkg/logger"
)

// CatalogRepository contract interface
type CatalogRepository interface {
	FindAllWithOffers(ctx context.Context) ([]domain.Product, error)
	ReplaceAll(ctx context.Context, products []domain.Product) error
}

// Snapshot is an immutable view of the catalog. Serving code only ever
// reads a snapshot, so concurrent requests need no locking.
type Snapshot struct {
	products []domain.Product
	names    []string
	byName   map[string]int
}

func (s *Snapshot) Products() []domain.Product {
	return s.products
}

func (s *Snapshot) ProductNames() []string {
	return s.names
}

func (s *Snapshot) ByName(name string) (domain.Product, bool) {
	idx, ok := s.byName[name]
	if !ok {
		return domain.Product{}, false
	}
	return s.products[idx], true
}

func newSnapshot(products []domain.Product) *Snapshot {
	snap := &Snapshot{
		products: products,
		names:    make([]string, len(products)),
		byName:   make(map[string]int, len(products)),
	}
	for i, p := range products {
		snap.names[i] = p.ProductName
		snap.byName[p.ProductName] = i
	}
	return snap
}

type CatalogService struct {
	repo CatalogRepository
	snap atomic.Pointer[Snapshot]
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Load reads the full catalog once and installs it as the serving
// snapshot. Called at startup and after an admin import.
func (s *CatalogService) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	products, err := s.repo.FindAllWithOffers(ctx)
	if err != nil {
		logger.Error("Failed to load catalog", err)
		return fmt.Errorf("load catalog: %w", err)
	}

	s.snap.Store(newSnapshot(products))
	logger.Info("catalog loaded", "products", len(products))
	return nil
}

// Snapshot returns the current immutable catalog view.
func (s *CatalogService) Snapshot() *Snapshot {
	snap := s.snap.Load()
	if snap == nil {
		return newSnapshot(nil)
	}
	return snap
}

// Products implements ranking.Catalog against the live snapshot.
func (s *CatalogService) Products() []domain.Product {
	return s.Snapshot().Products()
}

func (s *CatalogService) ProductNames() []string {
	return s.Snapshot().ProductNames()
}

func (s *CatalogService) ByName(name string) (domain.Product, bool) {
	return s.Snapshot().ByName(name)
}

// Import replaces the stored catalog with the given nested document and
// swaps in a fresh snapshot. In-flight requests keep reading the old one.
func (s *CatalogService) Import(ctx context.Context, products []domain.Product) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	if len(products) == 0 {
		return 0, errors.New("import document has no products")
	}

	for _, p := range products {
		if p.ProductName == "" {
			return 0, errors.New("every product needs a product_name")
		}
	}

	if err := s.repo.ReplaceAll(ctx, products); err != nil {
		logger.Error("Failed to import catalog", err)
		return 0, fmt.Errorf("import catalog: %w", err)
	}

	if err := s.Load(ctx); err != nil {
		return 0, err
	}

	logger.Info("catalog imported", "products", len(products))
	return len(products), nil
}
