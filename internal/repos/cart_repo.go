package repos

import (
	"time"

	"github.com/jmoiron/sqlx"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// CartItemRow carries what the cart page renders. Name and brand come from
// the line itself at view time via the product document join in the service
// layer, so the row only stores ids and the captured price.
type CartItemRow struct {
	ProductID  string `db:"product_id"`
	Qty        int    `db:"qty"`
	PriceAtAdd int64  `db:"price_at_add"`
}

func (r *CartRepo) EnsureCart(sessionID string) (string, error) {
	var cartID string
	if err := r.db.Get(&cartID, `SELECT id FROM carts WHERE session_id = ?`, sessionID); err == nil {
		return cartID, nil
	}
	_, err := r.db.Exec(`INSERT INTO carts(id,session_id,updated_at) VALUES(?,?,?)`,
		sessionID, sessionID, time.Now().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

func (r *CartRepo) UpsertItem(cartID, productID string, qty int, price int64) error {
	_, err := r.db.Exec(`
		INSERT INTO cart_items(cart_id,product_id,qty,price_at_add,created_at)
		VALUES(?,?,?,?,CURRENT_TIMESTAMP)
		ON CONFLICT(cart_id,product_id) DO UPDATE
		SET qty = cart_items.qty + excluded.qty, updated_at = CURRENT_TIMESTAMP
	`, cartID, productID, qty, price)
	return err
}

func (r *CartRepo) SetQty(cartID, productID string, qty int) error {
	if qty < 1 {
		_, err := r.db.Exec(`DELETE FROM cart_items WHERE cart_id=? AND product_id=?`, cartID, productID)
		return err
	}
	_, err := r.db.Exec(`
		UPDATE cart_items SET qty = ?, updated_at = CURRENT_TIMESTAMP
		WHERE cart_id = ? AND product_id = ?
	`, qty, cartID, productID)
	return err
}

func (r *CartRepo) Items(cartID string) ([]CartItemRow, error) {
	var out []CartItemRow
	err := r.db.Select(&out, `
	  SELECT product_id, qty, price_at_add
	  FROM cart_items
	  WHERE cart_id = ?
	  ORDER BY datetime(created_at), product_id
	`, cartID)
	return out, err
}

func (r *CartRepo) Clear(cartID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE cart_id = ?`, cartID)
	return err
}
