package repos

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"garutech/internal/domain"
)

// ProductRepo stores catalog records as JSON documents, one row per product.
// It is the catalog store's fetch source and the admin write path.
type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// FetchProducts returns all active products, newest first. Rows whose
// document fails to decode are skipped rather than failing the whole fetch;
// the storefront prefers a shorter catalog over none.
func (r *ProductRepo) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	var docs []string
	err := r.db.SelectContext(ctx, &docs, `
	  SELECT doc FROM products
	  WHERE active = 1
	  ORDER BY datetime(created_at) DESC, id
	`)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(docs))
	for _, d := range docs {
		var p domain.Product
		if err := json.Unmarshal([]byte(d), &p); err != nil {
			log.Printf("[catalog] skipping malformed product doc: %v", err)
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Get returns a product regardless of its active flag (admin view).
func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var doc string
	if err := r.db.Get(&doc, `SELECT doc FROM products WHERE id = ?`, id); err != nil {
		return domain.Product{}, err
	}
	var p domain.Product
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// Add inserts a new product. New products start with a perfect rating, no
// reviews, and InStock derived from the submitted stock count.
func (r *ProductRepo) Add(p domain.Product) (string, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.InStock = p.StockCount > 0
	p.Rating = 5.0
	p.Reviews = 0
	doc, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	_, err = r.db.Exec(`
	  INSERT INTO products(id, doc, active, created_at)
	  VALUES(?, ?, 1, CURRENT_TIMESTAMP)
	`, p.ID, string(doc))
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

// Update merges patch into the stored document. When the patch carries a
// stockCount but no explicit inStock, InStock is derived from it; otherwise
// the two fields stay independent.
func (r *ProductRepo) Update(id string, patch map[string]any) error {
	var doc string
	if err := r.db.Get(&doc, `SELECT doc FROM products WHERE id = ?`, id); err != nil {
		return err
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(doc), &m); err != nil {
		return err
	}
	for k, v := range patch {
		if k == "id" {
			continue
		}
		m[k] = v
	}
	if sc, ok := patch["stockCount"]; ok {
		if _, explicit := patch["inStock"]; !explicit {
			if f, ok := sc.(float64); ok {
				m["inStock"] = f > 0
			}
		}
	}
	merged, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return r.save(id, string(merged))
}

// UpdateStock sets the stock count and derives InStock from it.
func (r *ProductRepo) UpdateStock(id string, count int) error {
	p, err := r.Get(id)
	if err != nil {
		return err
	}
	p.StockCount = count
	p.InStock = count > 0
	doc, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.save(id, string(doc))
}

// SoftDelete hides a product from fetches while keeping the row for orders
// that reference it.
func (r *ProductRepo) SoftDelete(id string) error {
	res, err := r.db.Exec(`UPDATE products SET active = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *ProductRepo) save(id, doc string) error {
	res, err := r.db.Exec(`UPDATE products SET doc = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, doc, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
