package api

type AddToCartRequest struct {
	ProductId int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type AddToWishlistRequest struct {
	ProductId int64 `json:"product_id"`
}
