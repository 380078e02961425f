package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/domain/repository"
	"github.com/yourusername/product-catalog/internal/infrastructure/storage"
)

type stubParser struct {
	products []entity.Product
	err      error
	path     string
}

func (s *stubParser) ParseProducts(ctx context.Context, filePath string) ([]entity.Product, error) {
	s.path = filePath
	return s.products, s.err
}

type failingRepo struct{}

var errRepoDown = errors.New("repository unavailable")

func (failingRepo) SaveProduct(context.Context, entity.Product) error { return errRepoDown }

func (failingRepo) SaveMany(context.Context, []entity.Product) error { return errRepoDown }

func (failingRepo) GetAll(context.Context) ([]entity.Product, error) { return nil, errRepoDown }

func (failingRepo) Count(context.Context) (int, error) { return 0, errRepoDown }

func (failingRepo) FindByName(context.Context, string) ([]entity.Product, error) {
	return nil, errRepoDown
}

// countFailingRepo saqlaydi, lekin sanashda xato qaytaradi
type countFailingRepo struct {
	repository.ProductRepository
}

func (countFailingRepo) Count(context.Context) (int, error) { return 0, errRepoDown }

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func prices(products []entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Price.String())
	}
	return out
}

func TestAddProduct_TrimsAndAssignsID(t *testing.T) {
	uc := NewProductUseCase(storage.NewMemoryProductRepository(), nil, nil)

	p, err := uc.AddProduct(context.Background(), "  Electronics ", " Laptop  ", price("1200"))
	require.NoError(t, err)
	assert.Equal(t, "Electronics", p.Category)
	assert.Equal(t, "Laptop", p.Name)
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestAddProduct_Validation(t *testing.T) {
	uc := NewProductUseCase(storage.NewMemoryProductRepository(), nil, nil)
	ctx := context.Background()

	_, err := uc.AddProduct(ctx, "   ", "Laptop", price("10"))
	assert.ErrorIs(t, err, entity.ErrEmptyInput)

	_, err = uc.AddProduct(ctx, "Electronics", "", price("10"))
	assert.ErrorIs(t, err, entity.ErrEmptyInput)

	_, err = uc.AddProduct(ctx, "Electronics", "Laptop", decimal.Zero)
	assert.ErrorIs(t, err, entity.ErrInvalidPrice)

	_, err = uc.AddProduct(ctx, "Electronics", "Laptop", price("-5"))
	assert.ErrorIs(t, err, entity.ErrInvalidPrice)

	catalog, err := uc.ListByPrice(ctx)
	require.NoError(t, err)
	assert.Empty(t, catalog.Products)
}

func TestListByPrice_SortsAndTotals(t *testing.T) {
	uc := NewProductUseCase(storage.NewMemoryProductRepository(), nil, nil)
	ctx := context.Background()

	for _, p := range []struct{ name, price string }{
		{"Laptop", "1200"},
		{"Phone", "900"},
		{"Mouse", "50"},
	} {
		_, err := uc.AddProduct(ctx, "Electronics", p.name, price(p.price))
		require.NoError(t, err)
	}

	catalog, err := uc.ListByPrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"50", "900", "1200"}, prices(catalog.Products))
	assert.True(t, catalog.Total.Equal(price("2150")), "total %s", catalog.Total)
}

func TestListByPrice_StableForEqualPrices(t *testing.T) {
	uc := NewProductUseCase(storage.NewMemoryProductRepository(), nil, nil)
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		_, err := uc.AddProduct(ctx, "Misc", name, price("10"))
		require.NoError(t, err)
	}
	_, err := uc.AddProduct(ctx, "Misc", "Cheap", price("1"))
	require.NoError(t, err)

	catalog, err := uc.ListByPrice(ctx)
	require.NoError(t, err)
	require.Len(t, catalog.Products, 4)
	assert.Equal(t, "Cheap", catalog.Products[0].Name)
	assert.Equal(t, "First", catalog.Products[1].Name)
	assert.Equal(t, "Second", catalog.Products[2].Name)
	assert.Equal(t, "Third", catalog.Products[3].Name)
}

func TestListByPrice_EmptyTotalIsZero(t *testing.T) {
	uc := NewProductUseCase(storage.NewMemoryProductRepository(), nil, nil)

	catalog, err := uc.ListByPrice(context.Background())
	require.NoError(t, err)
	assert.Empty(t, catalog.Products)
	assert.Equal(t, "0", catalog.Total.String())
}

func TestSearchByName(t *testing.T) {
	uc := NewProductUseCase(storage.NewMemoryProductRepository(), nil, nil)
	ctx := context.Background()

	for _, name := range []string{"Laptop", "Phone", "Mouse"} {
		_, err := uc.AddProduct(ctx, "Electronics", name, price("10"))
		require.NoError(t, err)
	}

	found, err := uc.SearchByName(ctx, "phone")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Phone", found[0].Name)

	found, err = uc.SearchByName(ctx, "Tablet")
	require.NoError(t, err)
	assert.Empty(t, found)

	_, err = uc.SearchByName(ctx, "  ")
	assert.ErrorIs(t, err, entity.ErrEmptyInput)
}

func TestRepositoryErrorsAreWrapped(t *testing.T) {
	uc := NewProductUseCase(failingRepo{}, nil, nil)
	ctx := context.Background()

	_, err := uc.AddProduct(ctx, "Electronics", "Laptop", price("1"))
	assert.ErrorIs(t, err, errRepoDown)

	_, err = uc.ListByPrice(ctx)
	assert.ErrorIs(t, err, errRepoDown)

	_, err = uc.SearchByName(ctx, "Laptop")
	assert.ErrorIs(t, err, errRepoDown)
}

func TestImportCatalog(t *testing.T) {
	repo := storage.NewMemoryProductRepository()
	parser := &stubParser{products: []entity.Product{
		{ID: "1", Category: "Books", Name: "Go", Price: price("30")},
		{ID: "2", Category: "Books", Name: "Rust", Price: price("25")},
	}}
	uc := NewProductUseCase(repo, parser, nil)

	n, err := uc.ImportCatalog(context.Background(), "seed.xlsx")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "seed.xlsx", parser.path)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestImportCatalog_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewProductUseCase(storage.NewMemoryProductRepository(), nil, nil).ImportCatalog(ctx, "seed.xlsx")
	assert.ErrorIs(t, err, errNoImporter)

	parseErr := errors.New("corrupt workbook")
	_, err = NewProductUseCase(storage.NewMemoryProductRepository(), &stubParser{err: parseErr}, nil).ImportCatalog(ctx, "seed.xlsx")
	assert.ErrorIs(t, err, parseErr)

	_, err = NewProductUseCase(storage.NewMemoryProductRepository(), &stubParser{}, nil).ImportCatalog(ctx, "seed.xlsx")
	assert.Error(t, err)
}

func TestImportCatalog_AppendsToExistingProducts(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryProductRepository()
	uc := NewProductUseCase(repo, &stubParser{products: []entity.Product{
		{ID: "1", Category: "Books", Name: "Go", Price: price("30")},
	}}, nil)

	_, err := uc.AddProduct(ctx, "Electronics", "Laptop", price("1200"))
	require.NoError(t, err)

	n, err := uc.ImportCatalog(ctx, "seed.xlsx")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestImportCatalog_CountError(t *testing.T) {
	repo := countFailingRepo{ProductRepository: storage.NewMemoryProductRepository()}
	uc := NewProductUseCase(repo, &stubParser{products: []entity.Product{
		{ID: "1", Category: "Books", Name: "Go", Price: price("30")},
	}}, nil)

	_, err := uc.ImportCatalog(context.Background(), "seed.xlsx")
	assert.ErrorIs(t, err, errRepoDown)
}
