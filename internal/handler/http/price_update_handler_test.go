package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceUpdateAppliesToProduct(t *testing.T) {
	env := newTestEnv()

	doRequest(t, env.mux, http.MethodPost, "/api/products",
		`{"name":"Marlboro Gold 20","sku":"X1","price":10}`)

	rec := doRequest(t, env.mux, http.MethodPost, "/api/price-updates",
		`{"product_sku":"X1","old_price":10,"new_price":12.5}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, decodeBody[map[string]string](t, rec)["id"])

	stored := env.products.bySKU("X1")
	require.NotNil(t, stored)
	assert.Equal(t, 12.5, *stored.Price)
}

func TestPriceUpdateDanglingSKUStillRecorded(t *testing.T) {
	env := newTestEnv()

	rec := doRequest(t, env.mux, http.MethodPost, "/api/price-updates",
		`{"product_sku":"GHOST","old_price":1,"new_price":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, env.mux, http.MethodGet, "/api/price-updates", "")
	updates := decodeBody[[]map[string]any](t, rec)
	require.Len(t, updates, 1)
	assert.Equal(t, "GHOST", updates[0]["product_sku"])
	assert.Equal(t, "done", updates[0]["status"])
}

func TestPriceUpdateNegativePriceRejected(t *testing.T) {
	env := newTestEnv()

	rec := doRequest(t, env.mux, http.MethodPost, "/api/price-updates",
		`{"product_sku":"X1","old_price":-1,"new_price":2}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doRequest(t, env.mux, http.MethodGet, "/api/price-updates", "")
	assert.Empty(t, decodeBody[[]map[string]any](t, rec))
}

func TestPriceUpdateMissingSKURejected(t *testing.T) {
	env := newTestEnv()

	rec := doRequest(t, env.mux, http.MethodPost, "/api/price-updates",
		`{"old_price":1,"new_price":2}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
