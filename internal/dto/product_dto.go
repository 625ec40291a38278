package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ProductRequest is the body of both POST /products and PUT /products/:id.
// Price and Available are pointers so that "absent" is distinguishable from a
// legitimate zero/false value.
type ProductRequest struct {
	Name        string           `json:"name"        validate:"required,min=1,max=120"`
	Description string           `json:"description" validate:"omitempty,max=500"`
	Price       *decimal.Decimal `json:"price"       validate:"required"`
	Available   *bool            `json:"available"   validate:"required"`
	Category    string           `json:"category"    validate:"required"`
}

// ─── Filters ─────────────────────────────────────────────────────────────────

// ProductFilter carries the listing query parameters. At most one filter is
// honored per request: name wins over category, category over availability.
type ProductFilter struct {
	Name         string `form:"name"`
	Category     string `form:"category"`
	Availability string `form:"availability"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
	Category    string          `json:"category"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
