package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"garutech/internal/repos"
)

var ErrEmptyCart = errors.New("cart empty")

// OrderService turns a cart into a persisted order and composes the WhatsApp
// handoff the store's team completes the sale through. There is no payment
// step here; confirmation and payment instructions happen in the chat.
type OrderService struct {
	Cart           *CartService
	Orders         *repos.OrderRepo
	WhatsAppNumber string // digits only, no plus sign
}

func NewOrderService(cart *CartService, orders *repos.OrderRepo, waNumber string) *OrderService {
	return &OrderService{Cart: cart, Orders: orders, WhatsAppNumber: waNumber}
}

type PlacedOrder struct {
	OrderID     string `json:"orderId"`
	Total       int64  `json:"total"`
	WhatsAppURL string `json:"whatsappUrl"`
}

func (s *OrderService) Place(sessionID string, c repos.Customer) (PlacedOrder, error) {
	cv, err := s.Cart.View(sessionID)
	if err != nil {
		return PlacedOrder{}, err
	}
	if len(cv.Items) == 0 {
		return PlacedOrder{}, ErrEmptyCart
	}

	orderID := uuid.NewString()
	if err := s.Orders.Create(orderID, sessionID, c, cv.Total); err != nil {
		return PlacedOrder{}, err
	}
	for _, it := range cv.Items {
		if err := s.Orders.InsertItem(orderID, it.ProductID, it.Name, it.Brand, it.Qty, it.Price); err != nil {
			return PlacedOrder{}, err
		}
	}
	_ = s.Cart.Clear(sessionID)

	return PlacedOrder{
		OrderID:     orderID,
		Total:       cv.Total,
		WhatsAppURL: s.handoffURL(c, cv),
	}, nil
}

// handoffURL builds the wa.me link with the order summary prefilled.
func (s *OrderService) handoffURL(c repos.Customer, cv CartView) string {
	var b strings.Builder
	b.WriteString("*New Order from Garutech*\n\n")
	b.WriteString("*Customer Information:*\n")
	fmt.Fprintf(&b, "Name: %s\n", c.Name)
	fmt.Fprintf(&b, "Email: %s\n", c.Email)
	phone := c.Phone
	if phone == "" {
		phone = "Not provided"
	}
	fmt.Fprintf(&b, "Phone: %s\n\n", phone)

	if c.Address != "" {
		b.WriteString("*Shipping Address:*\n")
		fmt.Fprintf(&b, "%s\n", c.Address)
		fmt.Fprintf(&b, "%s, %s %s\n\n", c.City, c.State, c.Zip)
	}

	b.WriteString("*Order Items:*\n")
	itemCount := 0
	for i, it := range cv.Items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, it.Name)
		brand := it.Brand
		if brand == "" {
			brand = "N/A"
		}
		fmt.Fprintf(&b, "   Brand: %s\n", brand)
		fmt.Fprintf(&b, "   Qty: %d x %s = %s\n\n", it.Qty, Naira(it.Price), Naira(it.Subtotal))
		itemCount += it.Qty
	}

	b.WriteString("*Order Summary:*\n")
	fmt.Fprintf(&b, "Subtotal (%d items): %s\n", itemCount, Naira(cv.Total))
	fmt.Fprintf(&b, "*Total: %s*\n\n", Naira(cv.Total))
	b.WriteString("Please confirm this order and provide payment instructions. Thank you!")

	return "https://wa.me/" + s.WhatsAppNumber + "?text=" + url.QueryEscape(b.String())
}

// Naira formats a whole-naira amount with thousands separators.
func Naira(v int64) string {
	s := fmt.Sprintf("%d", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := "₦" + strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
