package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/giftharmony/giftharmony/internal/api"
	"github.com/giftharmony/giftharmony/internal/domain"
)

// Cart fetches the authenticated user's cart.
func (c *Client) Cart(ctx context.Context) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := c.do(ctx, http.MethodGet, "/cart", nil, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	return items, nil
}

// AddToCart puts a product into the cart. A quantity below one falls
// back to the default of a single unit.
func (c *Client) AddToCart(ctx context.Context, productId int64, quantity int) (*domain.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	body := api.AddToCartRequest{ProductId: productId, Quantity: quantity}

	var item domain.CartItem
	if err := c.do(ctx, http.MethodPost, "/cart", nil, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateCartItem changes the quantity of one cart line.
func (c *Client) UpdateCartItem(ctx context.Context, itemId int64, quantity int) (*domain.CartItem, error) {
	body := api.UpdateCartItemRequest{Quantity: quantity}

	var item domain.CartItem
	path := fmt.Sprintf("/cart/%d", itemId)
	if err := c.do(ctx, http.MethodPut, path, nil, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveFromCart deletes one cart line.
func (c *Client) RemoveFromCart(ctx context.Context, itemId int64) error {
	path := fmt.Sprintf("/cart/%d", itemId)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// ClearCart empties the cart.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/cart", nil, nil, nil)
}
