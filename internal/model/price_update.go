package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriceUpdate records a scheduled or executed price change. Collection:
// "priceupdate". Status is informally pending|done|failed, not enforced.
type PriceUpdate struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductSKU  string             `json:"product_sku" bson:"product_sku" validate:"required"`
	OldPrice    *float64           `json:"old_price" bson:"old_price" validate:"required,gte=0"`
	NewPrice    *float64           `json:"new_price" bson:"new_price" validate:"required,gte=0"`
	ScheduledAt *time.Time         `json:"scheduled_at,omitempty" bson:"scheduled_at,omitempty"`
	Status      string             `json:"status,omitempty" bson:"status"`
	Note        string             `json:"note,omitempty" bson:"note,omitempty"`
}

func (u *PriceUpdate) ApplyDefaults() {
	if u.Status == "" {
		u.Status = "done"
	}
}
