package apiclient

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftharmony/giftharmony/internal/api"
)

func TestProducts_QueryContainsOnlySuppliedFilters(t *testing.T) {
	client, _, captured := newTestClient(t, jsonHandler(http.StatusOK, `{"products":[]}`))

	_, err := client.Products(context.Background(), api.ProductFilters{Page: 2, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "/products", captured.Path)
	assert.Equal(t, []string{"2"}, captured.Query["page"])
	assert.Equal(t, []string{"10"}, captured.Query["limit"])
	assert.NotContains(t, captured.Query, "category")
	assert.NotContains(t, captured.Query, "search")
	assert.Len(t, captured.Query, 2)
}

func TestProducts_NoFiltersMeansNoQueryString(t *testing.T) {
	client, _, captured := newTestClient(t, jsonHandler(http.StatusOK, `{"products":[]}`))

	_, err := client.Products(context.Background(), api.ProductFilters{})
	require.NoError(t, err)

	assert.Empty(t, captured.RawQuery)
}

func TestProducts_AllFilters(t *testing.T) {
	client, _, captured := newTestClient(t, jsonHandler(http.StatusOK, `{"products":[]}`))

	_, err := client.Products(context.Background(), api.ProductFilters{
		Category: "mugs",
		Search:   "birthday gift",
		Page:     1,
		Limit:    25,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"mugs"}, captured.Query["category"])
	assert.Equal(t, []string{"birthday gift"}, captured.Query["search"])
	assert.Equal(t, []string{"1"}, captured.Query["page"])
	assert.Equal(t, []string{"25"}, captured.Query["limit"])
}

func TestProducts_NilProductListNormalizedToEmpty(t *testing.T) {
	client, _, _ := newTestClient(t, jsonHandler(http.StatusOK, `{"total":0}`))

	resp, err := client.Products(context.Background(), api.ProductFilters{})
	require.NoError(t, err)
	assert.NotNil(t, resp.Products)
	assert.Empty(t, resp.Products)
}

func TestProduct_PathCarriesId(t *testing.T) {
	client, _, captured := newTestClient(t, jsonHandler(http.StatusOK, `{"id":42,"name":"Scented Candle"}`))

	product, err := client.Product(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "/products/42", captured.Path)
	assert.Equal(t, int64(42), product.Id)
	assert.Equal(t, "Scented Candle", product.Name)
}
