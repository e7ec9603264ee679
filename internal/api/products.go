package api

import "github.com/giftharmony/giftharmony/internal/domain"

// ProductFilters narrows a catalog listing. Zero-valued fields are
// omitted from the query string entirely.
type ProductFilters struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

type ProductsResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total,omitempty"`
	Page     int              `json:"page,omitempty"`
	Limit    int              `json:"limit,omitempty"`
}
