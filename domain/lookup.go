package domain

import (
	"encoding/json"
	"errors"
)

var (
	MessageSuccessSearchProducts = "products retrieved successfully"
	MessageFailedSearchProducts  = "failed to search products"
	MessageProductNotFound       = "product not found"

	ErrLookupFailed      = errors.New("food database lookup failed")
	ErrProductNotFound   = errors.New("product not found")
	ErrMissingSearchTerm = errors.New("barcode or name is required")
)

// Product is the subset of an Open Food Facts record the inventory cares
// about. Unknown fields from the upstream payload are dropped.
type Product struct {
	Code            string          `json:"code"`
	ProductName     string          `json:"product_name"`
	Brands          string          `json:"brands"`
	NutriscoreGrade string          `json:"nutriscore_grade,omitempty"`
	Nutriments      json.RawMessage `json:"nutriments,omitempty"`
	ImageSmallURL   string          `json:"image_small_url,omitempty"`
}
