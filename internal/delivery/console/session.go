package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/yourusername/product-catalog/internal/domain/entity"
	"github.com/yourusername/product-catalog/internal/usecase"
)

const (
	promptCategory = "Enter a Category: "
	promptName     = "Enter a Product Name: "
	promptPrice    = "Enter a Price: "
	promptSearch   = "Enter a Product Name to search: "

	addBanner     = `To enter a new product - follow the steps | To quit - enter: "Q"`
	tableHeader   = "Category, Product, Price"
	addedMessage  = "The product was successfully added!"
	notFoundLabel = "Product not found: %s"
	totalLabel    = "Total amount: %s"
)

var menuText = fmt.Sprintf(`To enter a new product - enter: "%s" | To search for a product - enter: "%s" | To quit - enter: "%s"`,
	entity.CommandAddProduct, entity.CommandSearch, entity.CommandQuit)

type state int

const (
	stateAdding state = iota
	stateDisplaying
	stateSearching
	stateChoosing
	stateTerminated
)

// Session interaktiv katalog sessiyasi: kiritishni o'qish, tekshirish,
// katalogni o'zgartirish va natijani ko'rsatish.
type Session struct {
	products usecase.ProductUseCase
	in       LineSource
	out      Renderer
	logger   *zap.Logger
}

// NewSession yangi sessiya yaratish
func NewSession(products usecase.ProductUseCase, in LineSource, out Renderer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		products: products,
		in:       in,
		out:      out,
		logger:   logger,
	}
}

// Run Q buyrug'i yoki kiritish tugaguncha ishlaydi. Holatlar tsikl orqali
// almashadi, shuning uchun stack chuqurligi o'zgarmaydi.
func (s *Session) Run(ctx context.Context) error {
	current := stateAdding
	for current != stateTerminated {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch current {
		case stateAdding:
			s.addProducts(ctx)
			current = stateDisplaying
		case stateDisplaying:
			s.displayProducts(ctx)
			current = stateChoosing
		case stateSearching:
			s.searchProduct(ctx)
			current = stateChoosing
		case stateChoosing:
			current = s.handleChoice()
		}
	}

	s.logger.Debug("session terminated")
	return nil
}

// addProducts Q kiritilguncha mahsulot qo'shish
func (s *Session) addProducts(ctx context.Context) {
	s.out.Clear()
	for ctx.Err() == nil {
		s.out.Banner(addBanner)

		category, ok := s.readLine(promptCategory)
		if !ok {
			return
		}
		name, ok := s.readLine(promptName)
		if !ok {
			return
		}
		price, ok := s.readPrice(promptPrice)
		if !ok {
			return
		}

		if _, err := s.products.AddProduct(ctx, category, name, price); err != nil {
			s.logger.Warn("failed to add product", zap.Error(err))
			s.out.Error(userMessage(err))
			continue
		}
		s.out.Success(addedMessage)
	}
}

// readLine bo'sh bo'lmagan qatorni o'qish. ok=false Q yoki kiritish tugaganini bildiradi.
func (s *Session) readLine(prompt string) (string, bool) {
	for {
		s.out.Prompt(prompt)
		line, err := s.in.ReadLine()
		if err != nil {
			s.endOfInput(err)
			return "", false
		}

		input := strings.TrimSpace(line)
		if entity.IsQuit(input) {
			return "", false
		}
		if input == "" {
			s.out.Error(userMessage(entity.ErrEmptyInput))
			continue
		}
		return input, true
	}
}

// readPrice musbat narx kiritilguncha qayta so'raydi, urinishlar soni cheklanmagan
func (s *Session) readPrice(prompt string) (decimal.Decimal, bool) {
	for {
		s.out.Prompt(prompt)
		line, err := s.in.ReadLine()
		if err != nil {
			s.endOfInput(err)
			return decimal.Zero, false
		}

		input := strings.TrimSpace(line)
		if entity.IsQuit(input) {
			return decimal.Zero, false
		}

		price, err := entity.ParsePrice(input)
		if err != nil {
			s.logger.Debug("price rejected", zap.String("input", input), zap.Error(err))
			s.out.Error(userMessage(err))
			continue
		}
		return price, true
	}
}

// displayProducts narx bo'yicha tartiblangan ro'yxat, jami summa va menyu
func (s *Session) displayProducts(ctx context.Context) {
	catalog, err := s.products.ListByPrice(ctx)
	if err != nil {
		s.logger.Warn("failed to list products", zap.Error(err))
		s.out.Error(userMessage(err))
		s.showMenu()
		return
	}

	s.out.Clear()
	s.out.Header(tableHeader)
	for _, p := range catalog.Products {
		s.out.Line(p.String())
	}
	s.out.Line("")
	s.out.Line(fmt.Sprintf(totalLabel, catalog.Total.String()))
	s.showMenu()
}

// searchProduct nom bo'yicha qidirish. Q kiritilsa darhol menyuga qaytadi.
func (s *Session) searchProduct(ctx context.Context) {
	query, ok := s.readLine(promptSearch)
	if !ok {
		s.showMenu()
		return
	}

	found, err := s.products.SearchByName(ctx, query)
	if err != nil {
		s.logger.Warn("search failed", zap.String("query", query), zap.Error(err))
		s.out.Error(userMessage(err))
		s.showMenu()
		return
	}

	s.out.Clear()
	if len(found) == 0 {
		s.out.Error(fmt.Sprintf(notFoundLabel, query))
	} else {
		s.out.Header(tableHeader)
		for _, p := range found {
			s.out.Highlight(p.String())
		}
	}
	s.showMenu()
}

// handleChoice tanilgan buyruq kiritilguncha o'qiydi
func (s *Session) handleChoice() state {
	for {
		line, err := s.in.ReadLine()
		if err != nil {
			s.endOfInput(err)
			return stateTerminated
		}

		switch entity.ParseCommand(line) {
		case entity.CommandAddProduct:
			return stateAdding
		case entity.CommandSearch:
			return stateSearching
		case entity.CommandQuit:
			return stateTerminated
		default:
			s.logger.Debug("unknown command", zap.String("input", line))
			s.out.Error(userMessage(entity.ErrInvalidCommand))
		}
	}
}

func (s *Session) showMenu() {
	s.out.Line("")
	s.out.Banner(menuText)
}

func (s *Session) endOfInput(err error) {
	if !errors.Is(err, io.EOF) {
		s.logger.Warn("input read failed", zap.Error(err))
	}
}

// userMessage xatoni foydalanuvchiga tushunarli matnga aylantirish
func userMessage(err error) string {
	switch {
	case errors.Is(err, entity.ErrEmptyInput):
		return "Input cannot be empty. Please try again."
	case errors.Is(err, entity.ErrInvalidPrice):
		return "Invalid price. Please enter a positive number."
	case errors.Is(err, entity.ErrInvalidCommand):
		return "Invalid choice. Please try again."
	default:
		return "Something went wrong: " + err.Error()
	}
}
