package domain

import "time"

type Order struct {
	Id              int64       `json:"id"`
	Status          string      `json:"status,omitempty"`
	Total           float64     `json:"total,omitempty"`
	ShippingAddress string      `json:"shipping_address,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
	CreatedAt       time.Time   `json:"created_at,omitempty"`
}

type OrderItem struct {
	ProductId int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price,omitempty"`
}
