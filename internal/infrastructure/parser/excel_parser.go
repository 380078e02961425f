package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/domain/repository"
)

// Ustunlar tartibi header bo'lmaganda: kategoriya | nom | narx
const (
	defaultCategoryCol = 0
	defaultNameCol     = 1
	defaultPriceCol    = 2
)

var errNoSheets = errors.New("excel file has no sheets")

type excelParser struct {
	logger *zap.Logger
}

// NewExcelParser yangi Excel parser yaratish
func NewExcelParser(logger *zap.Logger) repository.ExcelParser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &excelParser{logger: logger}
}

// ParseProducts Excel fayldan mahsulotlarni o'qish
func (e *excelParser) ParseProducts(ctx context.Context, filePath string) ([]entity.Product, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	return e.parseExcelFile(ctx, f, filePath)
}

// parseExcelFile birinchi sheet dan mahsulotlarni o'qish
func (e *excelParser) parseExcelFile(ctx context.Context, f *excelize.File, source string) ([]entity.Product, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errNoSheets
	}

	// Raw qiymatlar: raqam formatlari (1,200.00 kabi) narxni buzmasin
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("excel file is empty")
	}

	columns, hasHeader := mapColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
	}
	e.logger.Debug("excel column mapping",
		zap.String("source", source),
		zap.Bool("header", hasHeader),
		zap.Int("category_col", columns.category),
		zap.Int("name_col", columns.name),
		zap.Int("price_col", columns.price),
		zap.Int("rows", len(rows)),
	)

	var products []entity.Product
	now := time.Now()

	for i := startRow; i < len(rows); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		category := cell(row, columns.category)
		name := cell(row, columns.name)
		rawPrice := cell(row, columns.price)

		if category == "" || name == "" {
			e.logger.Warn("skipping row with blank category or name",
				zap.String("source", source), zap.Int("row", i+1))
			continue
		}

		price, err := entity.ParsePrice(rawPrice)
		if err != nil {
			e.logger.Warn("skipping row with invalid price",
				zap.String("source", source), zap.Int("row", i+1), zap.Error(err))
			continue
		}

		products = append(products, entity.Product{
			ID:        uuid.New().String(),
			Category:  category,
			Name:      name,
			Price:     price,
			CreatedAt: now,
		})
	}

	return products, nil
}

type columnMap struct {
	category int
	name     int
	price    int
}

// mapColumns header qatoridan ustunlarni aniqlash. Uchala ustun topilmasa
// birinchi qator ma'lumot deb hisoblanadi.
func mapColumns(header []string) (columnMap, bool) {
	columns := columnMap{category: -1, name: -1, price: -1}

	for i, col := range header {
		colName := strings.ToLower(strings.TrimSpace(col))

		// Kategoriya birinchi: "product category" nom emas
		switch {
		case columns.category < 0 && contains(colName, "category", "kategoriya", "type"):
			columns.category = i
		case columns.name < 0 && contains(colName, "name", "nomi", "product", "mahsulot"):
			columns.name = i
		case columns.price < 0 && contains(colName, "price", "narx", "cost"):
			columns.price = i
		}
	}

	if columns.category < 0 || columns.name < 0 || columns.price < 0 {
		return columnMap{
			category: defaultCategoryCol,
			name:     defaultNameCol,
			price:    defaultPriceCol,
		}, false
	}

	return columns, true
}

func contains(str string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(str, kw) {
			return true
		}
	}
	return false
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow bo'sh qatorlarni aniqlash
func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
