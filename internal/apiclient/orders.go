package apiclient

import (
	"context"
	"net/http"

	"github.com/giftharmony/giftharmony/internal/api"
	"github.com/giftharmony/giftharmony/internal/domain"
)

// Orders lists the authenticated user's past orders.
func (c *Client) Orders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// CreateOrder places an order from the given items.
func (c *Client) CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*domain.Order, error) {
	if err := api.Validate(&req); err != nil {
		return nil, err
	}
	var order domain.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
