package storage

import (
	"context"
	"strings"
	"sync"

	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/domain/repository"
)

type memoryProductRepository struct {
	mu       sync.RWMutex
	products []entity.Product // qo'shilish tartibida
}

// NewMemoryProductRepository in-memory product repository yaratish
func NewMemoryProductRepository() repository.ProductRepository {
	return &memoryProductRepository{
		products: []entity.Product{},
	}
}

// SaveProduct mahsulotni saqlash
func (m *memoryProductRepository) SaveProduct(ctx context.Context, product entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.products = append(m.products, product)
	return nil
}

// SaveMany ko'p mahsulotlarni saqlash
func (m *memoryProductRepository) SaveMany(ctx context.Context, products []entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.products = append(m.products, products...)
	return nil
}

// GetAll barcha mahsulotlarni olish
func (m *memoryProductRepository) GetAll(ctx context.Context) ([]entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := make([]entity.Product, len(m.products))
	copy(products, m.products)
	return products, nil
}

// FindByName nom bo'yicha qidirish
func (m *memoryProductRepository) FindByName(ctx context.Context, name string) ([]entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	var results []entity.Product
	for _, product := range m.products {
		if strings.EqualFold(product.Name, name) {
			results = append(results, product)
		}
	}

	return results, nil
}

// Count mahsulotlar soni
func (m *memoryProductRepository) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.products), nil
}
