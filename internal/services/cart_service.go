package services

import (
	"errors"

	"garutech/internal/catalog"
	"garutech/internal/repos"
)

var (
	ErrUnknownProduct = errors.New("unknown product")
	ErrOutOfStock     = errors.New("product out of stock")
)

// CartService resolves products through the catalog engine so the cart only
// ever references what the storefront currently shows.
type CartService struct {
	Carts   *repos.CartRepo
	Catalog *catalog.Engine
}

func NewCartService(carts *repos.CartRepo, eng *catalog.Engine) *CartService {
	return &CartService{Carts: carts, Catalog: eng}
}

func (s *CartService) Add(sessionID, productID string, qty int) error {
	if qty < 1 {
		qty = 1
	}
	p, ok := s.Catalog.ByID(productID)
	if !ok {
		return ErrUnknownProduct
	}
	if !p.InStock {
		return ErrOutOfStock
	}
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	return s.Carts.UpsertItem(cartID, productID, qty, p.Price)
}

func (s *CartService) SetQty(sessionID, productID string, qty int) error {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	return s.Carts.SetQty(cartID, productID, qty)
}

// CartLine is a cart row joined with the catalog snapshot for display.
// Products that have vanished from the catalog keep their captured price and
// show the raw product id as the name.
type CartLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Brand     string `json:"brand,omitempty"`
	Qty       int    `json:"qty"`
	Price     int64  `json:"price"`
	Subtotal  int64  `json:"subtotal"`
}

type CartView struct {
	Items []CartLine `json:"items"`
	Total int64      `json:"total"`
}

func (s *CartService) View(sessionID string) (CartView, error) {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return CartView{}, err
	}
	rows, err := s.Carts.Items(cartID)
	if err != nil {
		return CartView{}, err
	}
	cv := CartView{Items: make([]CartLine, 0, len(rows))}
	for _, r := range rows {
		line := CartLine{
			ProductID: r.ProductID,
			Name:      r.ProductID,
			Qty:       r.Qty,
			Price:     r.PriceAtAdd,
			Subtotal:  int64(r.Qty) * r.PriceAtAdd,
		}
		if p, ok := s.Catalog.ByID(r.ProductID); ok {
			line.Name = p.Name
			line.Brand = p.Brand
		}
		cv.Items = append(cv.Items, line)
		cv.Total += line.Subtotal
	}
	return cv, nil
}

func (s *CartService) Clear(sessionID string) error {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	return s.Carts.Clear(cartID)
}
