package domain

// Product as the catalog endpoints return it. The client does not
// validate these shapes; missing fields simply stay zero-valued.
type Product struct {
	Id          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Category    string  `json:"category,omitempty"`
	ImageUrl    string  `json:"image_url,omitempty"`
	Stock       int     `json:"stock,omitempty"`
}
