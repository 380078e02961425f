package repository

import (
	"context"

	"github.com/yourusername/product-catalog/internal/domain/entity"
)

// ExcelParser Excel fayllardan boshlang'ich katalogni o'qish uchun interface
type ExcelParser interface {
	// ParseProducts Excel fayldan mahsulotlarni o'qish
	ParseProducts(ctx context.Context, filePath string) ([]entity.Product, error)
}
