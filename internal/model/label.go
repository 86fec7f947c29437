package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Label is one physical ESL device. Collection: "label".
// Status is informally idle|assigned|error; the value is not enforced.
type Label struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ESLID      string             `json:"esl_id" bson:"esl_id" validate:"required"`
	Status     string             `json:"status,omitempty" bson:"status"`
	Battery    *int               `json:"battery,omitempty" bson:"battery,omitempty" validate:"omitempty,gte=0,lte=100"`
	LastSync   *time.Time         `json:"last_sync,omitempty" bson:"last_sync,omitempty"`
	ProductSKU string             `json:"product_sku,omitempty" bson:"product_sku,omitempty"`
}

func (l *Label) ApplyDefaults() {
	if l.Status == "" {
		l.Status = "idle"
	}
}
