package domain

type CartItem struct {
	Id        int64    `json:"id"`
	ProductId int64    `json:"product_id"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product,omitempty"`
}
