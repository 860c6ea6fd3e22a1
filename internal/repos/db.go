package repos

import (
	"encoding/json"
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"garutech/internal/domain"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer at a time, and an in-memory DSN exists
	// per-connection, so the pool must stay at a single connection.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline catalog if the DB is empty (idempotent)
	if err := seedProducts(db); err != nil {
		return nil, err
	}
	// Ensure an admin account exists (idempotent; safe to run every start)
	if err := seedAdmin(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Product documents. The catalog record itself lives in doc as JSON; the
-- extracted columns exist only for listing order and soft deletion.
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  doc TEXT NOT NULL,
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_active     ON products(active);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

-- Contact messages
CREATE TABLE IF NOT EXISTS contacts(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT,
  subject TEXT,
  message TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'new' CHECK (status IN ('new','read','replied')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_contacts_status ON contacts(status);

-- Carts
CREATE TABLE IF NOT EXISTS carts(
  id TEXT PRIMARY KEY,
  session_id TEXT UNIQUE NOT NULL,
  updated_at TEXT
);

CREATE TABLE IF NOT EXISTS cart_items(
  cart_id    TEXT NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
  qty INTEGER NOT NULL CHECK (qty >= 1),
  price_at_add INTEGER NOT NULL,
  created_at TEXT,
  updated_at TEXT,
  PRIMARY KEY (cart_id, product_id)
);

-- Orders. Line items snapshot name/brand/price because product records are
-- documents that may change or be soft-deleted after the order is placed.
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  session_id TEXT,
  customer_name TEXT,
  customer_email TEXT,
  customer_phone TEXT,
  address TEXT,
  city TEXT,
  state TEXT,
  zip TEXT,
  total INTEGER NOT NULL,
  status TEXT NOT NULL DEFAULT 'PLACED',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);

CREATE TABLE IF NOT EXISTS order_items(
  order_id  TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL,
  name TEXT NOT NULL,
  brand TEXT,
  qty INTEGER NOT NULL,
  price INTEGER NOT NULL,
  PRIMARY KEY (order_id, product_id)
);

-- Admin users & sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('USER','ADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedProducts(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog")

	orig := func(v int64) *int64 { return &v }
	seed := []domain.Product{
		{
			ID: "spraybooth-semi-downdraft", Name: "Garutech Spray Booth", Brand: "Garutech",
			Description: "Semi-down draft: air enters the booth cabin through the top front filtered plenum and is exhausted from the rear centered exhaust plenum",
			Price:       27000000, Image: "media/products/spraybooth/main.png",
			Category: domain.IDList{"spraybooth", "bodyparts"},
			InStock:  true, StockCount: 20, Rating: 4.8, Reviews: 156,
			Specifications: map[string]string{
				"Wall panel":     "sandwich style, 50mm polystyrene; rock wool optional",
				"Basement":       "steel structure, 3 rows of vein board and 2 rows of grids",
				"Heat exchanger": "stainless steel, Riello G20 burner",
			},
			Features: []string{
				"Spraying/baking transition damper, automatically air controlled",
				"Constant temperature spraying",
				"Quiet operation",
			},
			Featured: true,
		},
		{
			ID: "twopost-lift-4t", Name: "Two-Post Hydraulic Lift 4T", Brand: "Garutech",
			Description: "Clear-floor two-post lift rated for 4 tonnes with dual safety locks",
			Price:       3500000, OriginalPrice: orig(3900000), Image: "media/products/twopost-lift-4t/main.jpg",
			Category:    domain.IDList{"garagetools"},
			SubCategory: domain.IDList{"lifting-equipment"},
			InStock:     true, StockCount: 6, Rating: 4.6, Reviews: 42,
		},
		{
			ID: "thinkcar-max", Name: "Thinkcar Thinktool Max", Brand: "Thinkcar",
			Description: "Full-system diagnostic scanner with 2 years of free updates",
			Price:       850000, Image: "media/products/thinkcar-max/main.jpg",
			Category:    domain.IDList{"diagnosticscanners"},
			SubCategory: domain.IDList{"thinkcar"},
			InStock:     true, StockCount: 15, Rating: 4.7, Reviews: 89,
		},
		{
			ID: "socket-set-108", Name: "108-Piece Socket Set", Brand: "Garutech",
			Description: "Chrome vanadium socket and ratchet set, 1/4 to 1/2 inch drive",
			Price:       95000, Image: "media/products/socket-set-108/main.jpg",
			Category:    domain.IDList{"handtools", "accessories"},
			SubCategory: domain.IDList{"socket-sets"},
			InStock:     true, StockCount: 40, Rating: 4.5, Reviews: 210,
		},
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()
	for _, p := range seed {
		doc, err := json.Marshal(p)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`INSERT INTO products(id, doc, active, created_at) VALUES(?,?,1,CURRENT_TIMESTAMP)`, p.ID, string(doc)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// seedAdmin ensures the back-office account exists (idempotent).
func seedAdmin(db *sqlx.DB) error {
	h, err := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), 12)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO users(id,email,name,password_hash,role)
		VALUES('u-admin','admin@garutech.test','Admin',?,'ADMIN')
		ON CONFLICT(email) DO NOTHING
	`, string(h))
	return err
}
