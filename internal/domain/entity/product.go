package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Product mahsulot entity
type Product struct {
	ID        string
	Category  string
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
}

// String "category, name, price" ko'rinishida
func (p Product) String() string {
	return fmt.Sprintf("%s, %s, %s", p.Category, p.Name, p.Price.String())
}

// ProductCatalog narx bo'yicha tartiblangan mahsulotlar va jami summa
type ProductCatalog struct {
	Products []Product
	Total    decimal.Decimal
}
