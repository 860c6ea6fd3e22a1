package repos_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"garutech/internal/domain"
	"garutech/internal/repos"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func insertDoc(t *testing.T, db *sqlx.DB, p domain.Product, createdAt string) {
	t.Helper()
	doc, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`INSERT INTO products(id, doc, active, created_at) VALUES(?,?,1,?)`, p.ID, string(doc), createdAt); err != nil {
		t.Fatal(err)
	}
}

func TestFetchProductsNewestFirstActiveOnly(t *testing.T) {
	db := memdb(t)
	if _, err := db.Exec(`DELETE FROM products`); err != nil {
		t.Fatal(err)
	}
	insertDoc(t, db, domain.Product{ID: "old", Name: "Old", Category: domain.IDList{"handtools"}}, "2024-01-01 10:00:00")
	insertDoc(t, db, domain.Product{ID: "new", Name: "New", Category: domain.IDList{"handtools"}}, "2024-06-01 10:00:00")
	insertDoc(t, db, domain.Product{ID: "mid", Name: "Mid", Category: domain.IDList{"handtools"}}, "2024-03-01 10:00:00")

	repo := repos.NewProductRepo(db)
	got, err := repo.FetchProducts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0].ID != "new" || got[1].ID != "mid" || got[2].ID != "old" {
		t.Fatalf("unexpected order: %+v", got)
	}

	if err := repo.SoftDelete("mid"); err != nil {
		t.Fatal(err)
	}
	got, err = repo.FetchProducts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("soft-deleted product still fetched: %+v", got)
	}
	for _, p := range got {
		if p.ID == "mid" {
			t.Fatal("soft-deleted product still fetched")
		}
	}
}

func TestFetchSkipsMalformedDocs(t *testing.T) {
	db := memdb(t)
	if _, err := db.Exec(`DELETE FROM products`); err != nil {
		t.Fatal(err)
	}
	insertDoc(t, db, domain.Product{ID: "good", Name: "Good"}, "2024-01-02 00:00:00")
	if _, err := db.Exec(`INSERT INTO products(id, doc, active, created_at) VALUES('bad','{not json',1,'2024-01-03 00:00:00')`); err != nil {
		t.Fatal(err)
	}

	got, err := repos.NewProductRepo(db).FetchProducts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "good" {
		t.Fatalf("expected the malformed row to be skipped, got %+v", got)
	}
}

func TestAddDerivesStockFields(t *testing.T) {
	repo := repos.NewProductRepo(memdb(t))

	id, err := repo.Add(domain.Product{Name: "Impact Wrench", Category: domain.IDList{"handtools"}, StockCount: 3, Rating: 1.0, Reviews: 99})
	if err != nil {
		t.Fatal(err)
	}
	p, err := repo.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if !p.InStock || p.StockCount != 3 {
		t.Fatalf("want inStock derived from stockCount, got %+v", p)
	}
	// new products always start with a clean rating
	if p.Rating != 5.0 || p.Reviews != 0 {
		t.Fatalf("want rating reset on create, got %+v", p)
	}

	id, err = repo.Add(domain.Product{Name: "Backordered", Category: domain.IDList{"handtools"}, StockCount: 0})
	if err != nil {
		t.Fatal(err)
	}
	p, _ = repo.Get(id)
	if p.InStock {
		t.Fatal("zero stockCount should derive inStock=false")
	}
}

func TestUpdateStockAndPatchSemantics(t *testing.T) {
	repo := repos.NewProductRepo(memdb(t))
	id, err := repo.Add(domain.Product{Name: "Jack", Category: domain.IDList{"garagetools"}, StockCount: 5})
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.UpdateStock(id, 0); err != nil {
		t.Fatal(err)
	}
	p, _ := repo.Get(id)
	if p.InStock || p.StockCount != 0 {
		t.Fatalf("UpdateStock should derive inStock, got %+v", p)
	}

	// patch with stockCount derives inStock...
	if err := repo.Update(id, map[string]any{"stockCount": float64(7)}); err != nil {
		t.Fatal(err)
	}
	p, _ = repo.Get(id)
	if !p.InStock || p.StockCount != 7 {
		t.Fatalf("patch should derive inStock, got %+v", p)
	}

	// ...but an explicit inStock wins: the two fields stay independent
	if err := repo.Update(id, map[string]any{"stockCount": float64(9), "inStock": false}); err != nil {
		t.Fatal(err)
	}
	p, _ = repo.Get(id)
	if p.InStock || p.StockCount != 9 {
		t.Fatalf("explicit inStock should be preserved, got %+v", p)
	}

	// patches never touch unrelated fields
	if p.Name != "Jack" {
		t.Fatalf("patch clobbered name: %+v", p)
	}
}

func TestUpdateUnknownProduct(t *testing.T) {
	repo := repos.NewProductRepo(memdb(t))
	if err := repo.SoftDelete("ghost"); err == nil {
		t.Fatal("expected error for unknown product")
	}
	if err := repo.Update("ghost", map[string]any{"name": "x"}); err == nil {
		t.Fatal("expected error for unknown product")
	}
}
