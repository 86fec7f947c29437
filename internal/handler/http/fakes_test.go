package http

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"tabadigit-esl/internal/model"
	"tabadigit-esl/internal/service"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes, so handler tests exercise the full
// handler -> service -> repository path without a running store.

type fakeProductRepo struct {
	mu   sync.Mutex
	docs []model.TobaccoProduct
}

func (f *fakeProductRepo) Insert(_ context.Context, product *model.TobaccoProduct) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	product.ID = primitive.NewObjectID()
	f.docs = append(f.docs, *product)
	return product.ID, nil
}

func (f *fakeProductRepo) Find(_ context.Context, filter bson.M, limit int64) ([]model.TobaccoProduct, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var q string
	if or, ok := filter["$or"].([]bson.M); ok && len(or) > 0 {
		if rx, ok := or[0]["name"].(primitive.Regex); ok {
			q = strings.ToLower(rx.Pattern)
		}
	}

	out := make([]model.TobaccoProduct, 0)
	for _, d := range f.docs {
		if q != "" &&
			!strings.Contains(strings.ToLower(d.Name), q) &&
			!strings.Contains(strings.ToLower(d.Brand), q) &&
			!strings.Contains(strings.ToLower(d.SKU), q) {
			continue
		}
		out = append(out, d)
		if int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (f *fakeProductRepo) UpdateByID(_ context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.docs {
		if f.docs[i].ID != id {
			continue
		}
		applyProductFields(&f.docs[i], fields)
		return 1, nil
	}
	return 0, nil
}

func (f *fakeProductRepo) DeleteByID(_ context.Context, id primitive.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeProductRepo) SetPriceBySKU(_ context.Context, sku string, price float64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.docs {
		if f.docs[i].SKU == sku {
			p := price
			f.docs[i].Price = &p
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeProductRepo) bySKU(sku string) *model.TobaccoProduct {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.docs {
		if f.docs[i].SKU == sku {
			d := f.docs[i]
			return &d
		}
	}
	return nil
}

func applyProductFields(p *model.TobaccoProduct, fields bson.M) {
	for k, v := range fields {
		switch k {
		case "name":
			p.Name = v.(string)
		case "sku":
			p.SKU = v.(string)
		case "brand":
			p.Brand = v.(string)
		case "category":
			p.Category = v.(string)
		case "barcode":
			p.Barcode = v.(string)
		case "price":
			f := v.(float64)
			p.Price = &f
		case "tax_class":
			p.TaxClass = v.(string)
		case "esl_id":
			p.ESLID = v.(string)
		case "stock":
			n := v.(int)
			p.Stock = &n
		case "active":
			b := v.(bool)
			p.Active = &b
		}
	}
}

type fakeLabelRepo struct {
	mu      sync.Mutex
	docs    []model.Label
	patches map[primitive.ObjectID]bson.M
}

func newFakeLabelRepo() *fakeLabelRepo {
	return &fakeLabelRepo{patches: make(map[primitive.ObjectID]bson.M)}
}

func (f *fakeLabelRepo) Insert(_ context.Context, label *model.Label) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	label.ID = primitive.NewObjectID()
	f.docs = append(f.docs, *label)
	return label.ID, nil
}

func (f *fakeLabelRepo) Find(_ context.Context, limit int64) ([]model.Label, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Label, 0)
	for _, d := range f.docs {
		out = append(out, d)
		if int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (f *fakeLabelRepo) UpdateByID(_ context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.docs {
		if f.docs[i].ID != id {
			continue
		}
		f.patches[id] = fields
		if v, ok := fields["status"].(string); ok {
			f.docs[i].Status = v
		}
		if v, ok := fields["battery"].(float64); ok {
			n := int(v)
			f.docs[i].Battery = &n
		}
		if v, ok := fields["product_sku"].(string); ok {
			f.docs[i].ProductSKU = v
		}
		return 1, nil
	}
	return 0, nil
}

type fakePriceUpdateRepo struct {
	mu   sync.Mutex
	docs []model.PriceUpdate
}

func (f *fakePriceUpdateRepo) Insert(_ context.Context, update *model.PriceUpdate) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	update.ID = primitive.NewObjectID()
	f.docs = append(f.docs, *update)
	return update.ID, nil
}

func (f *fakePriceUpdateRepo) Find(_ context.Context, limit int64) ([]model.PriceUpdate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.PriceUpdate, 0)
	for _, d := range f.docs {
		out = append(out, d)
		if int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

type testEnv struct {
	products     *fakeProductRepo
	labels       *fakeLabelRepo
	priceUpdates *fakePriceUpdateRepo
	mux          *http.ServeMux
}

// newTestEnv wires fakes through real services and handlers with the same
// routing patterns cmd/server registers.
func newTestEnv() *testEnv {
	env := &testEnv{
		products:     &fakeProductRepo{},
		labels:       newFakeLabelRepo(),
		priceUpdates: &fakePriceUpdateRepo{},
	}

	productHandler := NewProductHandler(service.NewProductService(env.products))
	labelHandler := NewLabelHandler(service.NewLabelService(env.labels))
	priceUpdateHandler := NewPriceUpdateHandler(service.NewPriceUpdateService(env.priceUpdates, env.products))
	healthHandler := NewHealthHandler("tabadigit-esl-api", service.NewHealthService(nil, nil, true))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", healthHandler.Root)
	mux.HandleFunc("GET /test", healthHandler.Test)
	mux.HandleFunc("GET /schema", healthHandler.Schema)
	mux.HandleFunc("POST /api/products", productHandler.Create)
	mux.HandleFunc("POST /api/products/bulk", productHandler.CreateBulk)
	mux.HandleFunc("GET /api/products", productHandler.List)
	mux.HandleFunc("PATCH /api/products/{id}", productHandler.Update)
	mux.HandleFunc("DELETE /api/products/{id}", productHandler.Delete)
	mux.HandleFunc("POST /api/labels", labelHandler.Create)
	mux.HandleFunc("GET /api/labels", labelHandler.List)
	mux.HandleFunc("PATCH /api/labels/{id}", labelHandler.Update)
	mux.HandleFunc("POST /api/price-updates", priceUpdateHandler.Create)
	mux.HandleFunc("GET /api/price-updates", priceUpdateHandler.List)
	env.mux = mux

	return env
}
