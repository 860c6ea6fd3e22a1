package domain

// Product is a catalog entry as stored in the product document database.
// Prices are whole naira. InStock and StockCount are independent fields: some
// admin write paths derive InStock from StockCount, others set it directly,
// and read paths never reconcile the two.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Brand          string            `json:"brand"`
	Description    string            `json:"description"`
	Price          int64             `json:"price"`
	OriginalPrice  *int64            `json:"originalPrice,omitempty"`
	Image          string            `json:"image"`
	Category       IDList            `json:"category"`
	SubCategory    IDList            `json:"subCategory,omitempty"`
	InStock        bool              `json:"inStock"`
	StockCount     int               `json:"stockCount"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Features       []string          `json:"features,omitempty"`
	Priority       *int              `json:"priority,omitempty"`
	Videos         []string          `json:"videos,omitempty"`
	Featured       bool              `json:"featured,omitempty"`
}

// CategoryFilter narrows a product listing to a category, optionally to one of
// its sub-categories.
type CategoryFilter struct {
	Category    string `json:"category"`
	SubCategory string `json:"subCategory,omitempty"`
}

// Availability is the stock summary shown on product pages.
type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Qty    int    `json:"qty,omitempty"`
}
