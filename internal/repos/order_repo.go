package repos

import "github.com/jmoiron/sqlx"

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// Customer is the checkout form payload persisted with the order header.
type Customer struct {
	Name  string `db:"customer_name"`
	Email string `db:"customer_email"`
	Phone string `db:"customer_phone"`
	// Shipping address
	Address string `db:"address"`
	City    string `db:"city"`
	State   string `db:"state"`
	Zip     string `db:"zip"`
}

type OrderRow struct {
	ID        string `db:"id"`
	SessionID string `db:"session_id"`
	Customer
	Total     int64  `db:"total"`
	Status    string `db:"status"`
	CreatedAt string `db:"created_at"`
}

type OrderItemRow struct {
	ProductID string `db:"product_id"`
	Name      string `db:"name"`
	Brand     string `db:"brand"`
	Qty       int    `db:"qty"`
	Price     int64  `db:"price"`
	Subtotal  int64  `db:"subtotal"`
}

func (r *OrderRepo) Create(orderID, sessionID string, c Customer, total int64) error {
	_, err := r.db.Exec(`
	  INSERT INTO orders
	    (id, session_id, customer_name, customer_email, customer_phone, address, city, state, zip, total, status, created_at)
	  VALUES
	    (?,  ?,          ?,             ?,              ?,              ?,       ?,    ?,     ?,   ?,     'PLACED', CURRENT_TIMESTAMP)
	`, orderID, sessionID, c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.Zip, total)
	return err
}

func (r *OrderRepo) InsertItem(orderID, productID, name, brand string, qty int, price int64) error {
	_, err := r.db.Exec(`
	  INSERT INTO order_items(order_id, product_id, name, brand, qty, price)
	  VALUES(?, ?, ?, ?, ?, ?)
	`, orderID, productID, name, brand, qty, price)
	return err
}

func (r *OrderRepo) Get(orderID string) (OrderRow, []OrderItemRow, error) {
	var o OrderRow
	if err := r.db.Get(&o, `
		SELECT id, session_id, customer_name, customer_email,
		       COALESCE(customer_phone,'') AS customer_phone,
		       COALESCE(address,'') AS address, COALESCE(city,'') AS city,
		       COALESCE(state,'') AS state, COALESCE(zip,'') AS zip,
		       total, status, created_at
		FROM orders WHERE id = ?
	`, orderID); err != nil {
		return OrderRow{}, nil, err
	}

	var items []OrderItemRow
	if err := r.db.Select(&items, `
		SELECT product_id, name, COALESCE(brand,'') AS brand, qty, price, (qty * price) AS subtotal
		FROM order_items
		WHERE order_id = ?
		ORDER BY name
	`, orderID); err != nil {
		return OrderRow{}, nil, err
	}

	return o, items, nil
}

func (r *OrderRepo) ListLatest(limit int) ([]OrderRow, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []OrderRow
	err := r.db.Select(&out, `
		SELECT id, session_id, customer_name, customer_email,
		       COALESCE(customer_phone,'') AS customer_phone,
		       COALESCE(address,'') AS address, COALESCE(city,'') AS city,
		       COALESCE(state,'') AS state, COALESCE(zip,'') AS zip,
		       total, status, created_at
		FROM orders
		ORDER BY datetime(created_at) DESC
		LIMIT ?
	`, limit)
	return out, err
}

func (r *OrderRepo) UpdateStatus(id, status string) error {
	res, err := r.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
