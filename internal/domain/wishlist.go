package domain

import "time"

type WishlistItem struct {
	Id        int64     `json:"id"`
	ProductId int64     `json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
