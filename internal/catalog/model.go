package catalog

import "github.com/shopspring/decimal"

// Product is a catalog item. Identity is the numeric ID; the two core
// components never mutate a Product, only the admin workflow does.
type Product struct {
	ID            int64           `json:"productId"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	ImageData     []byte          `json:"-"`
	ImageMimeType string          `json:"-"`
}
