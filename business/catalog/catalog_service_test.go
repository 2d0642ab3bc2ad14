package catalog

import (
	"context"
	"testing"

	"dealScout/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	stored    []domain.Product
	findErr   error
	replErr   error
	findCalls int
}

func (f *fakeRepo) FindAllWithOffers(context.Context) ([]domain.Product, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.stored, nil
}

func (f *fakeRepo) ReplaceAll(_ context.Context, products []domain.Product) error {
	if f.replErr != nil {
		return f.replErr
	}
	f.stored = products
	return nil
}

func namedProducts(names ...string) []domain.Product {
	out := make([]domain.Product, len(names))
	for i, n := range names {
		out[i] = domain.Product{ProductName: n}
	}
	return out
}

func TestLoadInstallsSnapshot(t *testing.T) {
	repo := &fakeRepo{stored: namedProducts("Acme Phone X", "Bolt Laptop Pro")}
	svc := NewCatalogService(repo)

	require.NoError(t, svc.Load(t.Context()))

	assert.Equal(t, []string{"Acme Phone X", "Bolt Laptop Pro"}, svc.ProductNames())

	p, ok := svc.ByName("Bolt Laptop Pro")
	assert.True(t, ok)
	assert.Equal(t, "Bolt Laptop Pro", p.ProductName)

	_, ok = svc.ByName("Nope")
	assert.False(t, ok)
}

func TestLoadErrorKeepsPreviousSnapshot(t *testing.T) {
	repo := &fakeRepo{stored: namedProducts("Acme Phone X")}
	svc := NewCatalogService(repo)
	require.NoError(t, svc.Load(t.Context()))

	repo.findErr = assert.AnError
	assert.Error(t, svc.Load(t.Context()))

	// the old snapshot keeps serving
	assert.Equal(t, []string{"Acme Phone X"}, svc.ProductNames())
}

func TestSnapshotBeforeLoadIsEmpty(t *testing.T) {
	svc := NewCatalogService(&fakeRepo{})

	assert.Empty(t, svc.Products())
	assert.Empty(t, svc.ProductNames())
	_, ok := svc.ByName("anything")
	assert.False(t, ok)
}

func TestImportReplacesAndReloads(t *testing.T) {
	repo := &fakeRepo{stored: namedProducts("Old Product")}
	svc := NewCatalogService(repo)
	require.NoError(t, svc.Load(t.Context()))

	count, err := svc.Import(t.Context(), namedProducts("New A", "New B"))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Equal(t, []string{"New A", "New B"}, svc.ProductNames())
}

func TestImportValidation(t *testing.T) {
	svc := NewCatalogService(&fakeRepo{})

	_, err := svc.Import(t.Context(), nil)
	assert.Error(t, err)

	_, err = svc.Import(t.Context(), []domain.Product{{Brand: "NoName"}})
	assert.Error(t, err)
}

func TestImportRepoErrorLeavesSnapshot(t *testing.T) {
	repo := &fakeRepo{stored: namedProducts("Stable")}
	svc := NewCatalogService(repo)
	require.NoError(t, svc.Load(t.Context()))

	repo.replErr = assert.AnError
	_, err := svc.Import(t.Context(), namedProducts("Doomed"))
	assert.Error(t, err)
	assert.Equal(t, []string{"Stable"}, svc.ProductNames())
}
