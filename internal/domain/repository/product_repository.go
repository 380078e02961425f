package repository

import (
	"context"

	"github.com/yourusername/product-catalog/internal/domain/entity"
)

// ProductRepository mahsulotlar bilan ishlash uchun interface
type ProductRepository interface {
	// SaveProduct mahsulotni saqlash
	SaveProduct(ctx context.Context, product entity.Product) error

	// SaveMany ko'p mahsulotlarni saqlash
	SaveMany(ctx context.Context, products []entity.Product) error

	// GetAll barcha mahsulotlarni qo'shilish tartibida olish
	GetAll(ctx context.Context) ([]entity.Product, error)

	// FindByName nomi aynan mos keladigan mahsulotlar (katta-kichik harf farqsiz)
	FindByName(ctx context.Context, name string) ([]entity.Product, error)

	// Count mahsulotlar soni
	Count(ctx context.Context) (int, error)
}
