package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Store is the tobacconist shop profile. Collection: "store".
// The collection is listed by /schema but no REST routes exist for it yet.
type Store struct {
	ID      primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name" validate:"required"`
	Address string             `json:"address,omitempty" bson:"address,omitempty"`
	City    string             `json:"city,omitempty" bson:"city,omitempty"`
	Country string             `json:"country,omitempty" bson:"country,omitempty"`
}

func (s *Store) ApplyDefaults() {
	if s.Country == "" {
		s.Country = "IT"
	}
}
