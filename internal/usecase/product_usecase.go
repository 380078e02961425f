package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/domain/repository"
)

var errNoImporter = errors.New("excel importer is not configured")

// ProductUseCase mahsulot bilan bog'liq business logic
type ProductUseCase interface {
	// AddProduct yangi mahsulot qo'shish
	AddProduct(ctx context.Context, category, name string, price decimal.Decimal) (*entity.Product, error)

	// ListByPrice narx bo'yicha o'sish tartibida katalog va jami summa
	ListByPrice(ctx context.Context) (*entity.ProductCatalog, error)

	// SearchByName nom bo'yicha qidirish
	SearchByName(ctx context.Context, name string) ([]entity.Product, error)

	// ImportCatalog Excel fayldan boshlang'ich mahsulotlarni yuklash
	ImportCatalog(ctx context.Context, filePath string) (int, error)
}

type productUseCase struct {
	productRepo repository.ProductRepository
	excelParser repository.ExcelParser
	logger      *zap.Logger
	now         func() time.Time
}

// NewProductUseCase yangi ProductUseCase yaratish. excelParser nil bo'lishi mumkin.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	excelParser repository.ExcelParser,
	logger *zap.Logger,
) ProductUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &productUseCase{
		productRepo: productRepo,
		excelParser: excelParser,
		logger:      logger,
		now:         time.Now,
	}
}

// AddProduct yangi mahsulot qo'shish
func (u *productUseCase) AddProduct(ctx context.Context, category, name string, price decimal.Decimal) (*entity.Product, error) {
	category = strings.TrimSpace(category)
	name = strings.TrimSpace(name)

	if category == "" {
		return nil, fmt.Errorf("category: %w", entity.ErrEmptyInput)
	}
	if name == "" {
		return nil, fmt.Errorf("name: %w", entity.ErrEmptyInput)
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidPrice, price)
	}

	product := entity.Product{
		ID:        uuid.New().String(),
		Category:  category,
		Name:      name,
		Price:     price,
		CreatedAt: u.now(),
	}

	if err := u.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	u.logger.Debug("product added",
		zap.String("id", product.ID),
		zap.String("category", product.Category),
		zap.String("name", product.Name),
		zap.String("price", product.Price.String()),
	)
	return &product, nil
}

// ListByPrice narx bo'yicha tartiblangan katalog
func (u *productUseCase) ListByPrice(ctx context.Context) (*entity.ProductCatalog, error) {
	products, err := u.productRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	// Teng narxlarda qo'shilish tartibi saqlanadi
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Price.LessThan(products[j].Price)
	})

	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}

	return &entity.ProductCatalog{
		Products: products,
		Total:    total,
	}, nil
}

// SearchByName nom bo'yicha qidirish
func (u *productUseCase) SearchByName(ctx context.Context, name string) ([]entity.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("search: %w", entity.ErrEmptyInput)
	}

	products, err := u.productRepo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	u.logger.Debug("search executed", zap.String("query", name), zap.Int("matches", len(products)))
	return products, nil
}

// ImportCatalog Excel fayldan boshlang'ich mahsulotlarni yuklash
func (u *productUseCase) ImportCatalog(ctx context.Context, filePath string) (int, error) {
	if u.excelParser == nil {
		return 0, errNoImporter
	}

	products, err := u.excelParser.ParseProducts(ctx, filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to parse excel: %w", err)
	}
	if len(products) == 0 {
		return 0, fmt.Errorf("no products found in excel file %s", filePath)
	}

	if err := u.productRepo.SaveMany(ctx, products); err != nil {
		return 0, fmt.Errorf("failed to save catalog: %w", err)
	}

	total, err := u.productRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count catalog: %w", err)
	}

	u.logger.Info("catalog imported",
		zap.String("source", filePath),
		zap.Int("products", len(products)),
		zap.Int("catalog_size", total),
	)
	return len(products), nil
}
