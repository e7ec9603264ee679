package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/giftharmony/giftharmony/internal/api"
	"github.com/giftharmony/giftharmony/internal/domain"
)

// Wishlist fetches the authenticated user's wishlist.
func (c *Client) Wishlist(ctx context.Context) ([]domain.WishlistItem, error) {
	var items []domain.WishlistItem
	if err := c.do(ctx, http.MethodGet, "/wishlist", nil, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.WishlistItem{}
	}
	return items, nil
}

// AddToWishlist saves a product for later.
func (c *Client) AddToWishlist(ctx context.Context, productId int64) (*domain.WishlistItem, error) {
	body := api.AddToWishlistRequest{ProductId: productId}

	var item domain.WishlistItem
	if err := c.do(ctx, http.MethodPost, "/wishlist", nil, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveFromWishlistByProduct removes the wishlist entry for a product,
// addressed by product id rather than entry id.
func (c *Client) RemoveFromWishlistByProduct(ctx context.Context, productId int64) error {
	path := fmt.Sprintf("/wishlist/product/%d", productId)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
