package model

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TobaccoProduct is one catalog item. Collection: "tobaccoproduct".
// SKU is intended to be unique but uniqueness is not enforced by the store.
type TobaccoProduct struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name" validate:"required"`
	SKU      string             `json:"sku" bson:"sku" validate:"required"`
	Brand    string             `json:"brand,omitempty" bson:"brand,omitempty"`
	Category string             `json:"category,omitempty" bson:"category,omitempty"`
	Barcode  string             `json:"barcode,omitempty" bson:"barcode,omitempty"`
	Price    *float64           `json:"price" bson:"price" validate:"required,gte=0"`
	TaxClass string             `json:"tax_class,omitempty" bson:"tax_class,omitempty"`
	ESLID    string             `json:"esl_id,omitempty" bson:"esl_id,omitempty"`
	Stock    *int               `json:"stock" bson:"stock" validate:"omitempty,gte=0"`
	Active   *bool              `json:"active" bson:"active"`
}

// ApplyDefaults fills the optional fields the catalog expects on every stored
// document: category "Tabacco", tax class "AAMS", stock 0, active true.
func (p *TobaccoProduct) ApplyDefaults() {
	if p.Category == "" {
		p.Category = "Tabacco"
	}
	if p.TaxClass == "" {
		p.TaxClass = "AAMS"
	}
	if p.Stock == nil {
		zero := 0
		p.Stock = &zero
	}
	if p.Active == nil {
		active := true
		p.Active = &active
	}
}

// BulkProducts is the payload of POST /api/products/bulk.
type BulkProducts struct {
	Items []TobaccoProduct `json:"items" validate:"required,dive"`
}

// ProductUpdate is the partial-update body for PATCH /api/products/{id}.
// Only present, non-null fields are written; absent fields stay untouched.
type ProductUpdate struct {
	Name     *string  `json:"name"`
	SKU      *string  `json:"sku"`
	Brand    *string  `json:"brand"`
	Category *string  `json:"category"`
	Barcode  *string  `json:"barcode"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
	TaxClass *string  `json:"tax_class"`
	ESLID    *string  `json:"esl_id"`
	Stock    *int     `json:"stock" validate:"omitempty,gte=0"`
	Active   *bool    `json:"active"`
}

// Fields returns the effective $set document. An empty result means the
// request was a no-op.
func (u *ProductUpdate) Fields() bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.SKU != nil {
		set["sku"] = *u.SKU
	}
	if u.Brand != nil {
		set["brand"] = *u.Brand
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Barcode != nil {
		set["barcode"] = *u.Barcode
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.TaxClass != nil {
		set["tax_class"] = *u.TaxClass
	}
	if u.ESLID != nil {
		set["esl_id"] = *u.ESLID
	}
	if u.Stock != nil {
		set["stock"] = *u.Stock
	}
	if u.Active != nil {
		set["active"] = *u.Active
	}
	return set
}
