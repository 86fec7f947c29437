package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func doRequest(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestProductCreateThenSearch(t *testing.T) {
	env := newTestEnv()

	rec := doRequest(t, env.mux, http.MethodPost, "/api/products",
		`{"name":"Marlboro Gold 20","sku":"MG20","price":5.50}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeBody[map[string]string](t, rec)
	_, err := primitive.ObjectIDFromHex(created["id"])
	require.NoError(t, err, "id must be a valid ObjectID hex token")

	rec = doRequest(t, env.mux, http.MethodGet, "/api/products?q=marlboro", "")
	require.Equal(t, http.StatusOK, rec.Code)

	products := decodeBody[[]map[string]any](t, rec)
	require.Len(t, products, 1)
	p := products[0]
	assert.Equal(t, "MG20", p["sku"])
	assert.Equal(t, 5.5, p["price"])
	assert.Equal(t, true, p["active"])
	assert.Equal(t, float64(0), p["stock"])
	assert.Equal(t, "Tabacco", p["category"])
	assert.Equal(t, "AAMS", p["tax_class"])
	assert.Equal(t, created["id"], p["id"])
}

func TestProductCreateNegativePriceRejected(t *testing.T) {
	env := newTestEnv()

	rec := doRequest(t, env.mux, http.MethodPost, "/api/products",
		`{"name":"Bad","sku":"B1","price":-2}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody[map[string]any](t, rec)
	assert.Contains(t, body, "detail")

	rec = doRequest(t, env.mux, http.MethodGet, "/api/products", "")
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestProductCreateMalformedJSON(t *testing.T) {
	env := newTestEnv()

	rec := doRequest(t, env.mux, http.MethodPost, "/api/products", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductBulkCreate(t *testing.T) {
	env := newTestEnv()

	rec := doRequest(t, env.mux, http.MethodPost, "/api/products/bulk",
		`{"items":[
			{"name":"A","sku":"A1","price":1},
			{"name":"B","sku":"B1","price":2},
			{"name":"C","sku":"C1","price":3}
		]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, float64(3), body["count"])

	ids := body["inserted"].([]any)
	require.Len(t, ids, 3)
	seen := map[any]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "identifiers must be distinct")
		seen[id] = true
	}
}

func TestProductBulkCreateAllOrNothing(t *testing.T) {
	env := newTestEnv()

	rec := doRequest(t, env.mux, http.MethodPost, "/api/products/bulk",
		`{"items":[
			{"name":"A","sku":"A1","price":1},
			{"name":"B","sku":"B1","price":-2}
		]}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doRequest(t, env.mux, http.MethodGet, "/api/products", "")
	products := decodeBody[[]map[string]any](t, rec)
	assert.Empty(t, products, "no item may be persisted when one fails validation")
}

func TestProductPatchPartialUpdate(t *testing.T) {
	env := newTestEnv()

	rec := doRequest(t, env.mux, http.MethodPost, "/api/products",
		`{"name":"Camel Blue","sku":"CB10","price":5.20,"brand":"Camel"}`)
	id := decodeBody[map[string]string](t, rec)["id"]

	rec = doRequest(t, env.mux, http.MethodPatch, "/api/products/"+id, `{"price":5.70}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeBody[map[string]any](t, rec)["updated"])

	stored := env.products.bySKU("CB10")
	require.NotNil(t, stored)
	assert.Equal(t, 5.70, *stored.Price)
	assert.Equal(t, "Camel", stored.Brand, "absent fields stay untouched")
}

func TestProductPatchEmptyBodyIsNoOp(t *testing.T) {
	env := newTestEnv()

	rec := doRequest(t, env.mux, http.MethodPost, "/api/products",
		`{"name":"Lucky Strike","sku":"LS1","price":5}`)
	id := decodeBody[map[string]string](t, rec)["id"]

	rec = doRequest(t, env.mux, http.MethodPatch, "/api/products/"+id, `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decodeBody[map[string]any](t, rec)["updated"])

	stored := env.products.bySKU("LS1")
	require.NotNil(t, stored)
	assert.Equal(t, 5.0, *stored.Price)
}

func TestProductPatchMalformedID(t *testing.T) {
	env := newTestEnv()

	rec := doRequest(t, env.mux, http.MethodPatch, "/api/products/not-hex", `{"price":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductDeleteNonexistent(t *testing.T) {
	env := newTestEnv()

	rec := doRequest(t, env.mux, http.MethodDelete, "/api/products/"+primitive.NewObjectID().Hex(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decodeBody[map[string]any](t, rec)["deleted"])
}

func TestProductDelete(t *testing.T) {
	env := newTestEnv()

	rec := doRequest(t, env.mux, http.MethodPost, "/api/products",
		`{"name":"Gone","sku":"G1","price":1}`)
	id := decodeBody[map[string]string](t, rec)["id"]

	rec = doRequest(t, env.mux, http.MethodDelete, "/api/products/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeBody[map[string]any](t, rec)["deleted"])

	assert.Nil(t, env.products.bySKU("G1"))
}

func TestProductListLimit(t *testing.T) {
	env := newTestEnv()

	for _, payload := range []string{
		`{"name":"A","sku":"A1","price":1}`,
		`{"name":"B","sku":"B1","price":2}`,
		`{"name":"C","sku":"C1","price":3}`,
	} {
		doRequest(t, env.mux, http.MethodPost, "/api/products", payload)
	}

	rec := doRequest(t, env.mux, http.MethodGet, "/api/products?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]map[string]any](t, rec), 2)
}
