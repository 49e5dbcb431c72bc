package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property is a real-estate listing document.
// Field names match the persisted schema (shared with the seed data),
// so every field carries an explicit bson tag.
type Property struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	IdOwner      primitive.ObjectID   `bson:"IdOwner"`
	Name         string               `bson:"Name"`
	Address      string               `bson:"Address"`
	Price        primitive.Decimal128 `bson:"Price"`
	CodeInternal string               `bson:"CodeInternal"`
	Year         int                  `bson:"Year"`
	CreatedAt    time.Time            `bson:"CreatedAt"`
	UpdatedAt    time.Time            `bson:"UpdatedAt"`
}

// PropertyImage is a related image document. Only Enabled images are
// ever surfaced through the API.
type PropertyImage struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	IdProperty primitive.ObjectID `bson:"IdProperty"`
	File       string             `bson:"File"`
	Enabled    bool               `bson:"Enabled"`
}

// Owner is referenced by Property.IdOwner. The API exposes the reference
// opaquely and never expands it.
type Owner struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"Name"`
	Address  string             `bson:"Address,omitempty"`
	Photo    string             `bson:"Photo,omitempty"`
	Birthday *time.Time         `bson:"Birthday,omitempty"`
}

// PropertyTrace records a historical sale of a property.
type PropertyTrace struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	IdProperty primitive.ObjectID   `bson:"IdProperty"`
	DateSale   time.Time            `bson:"DateSale"`
	Name       string               `bson:"Name"`
	Value      primitive.Decimal128 `bson:"Value"`
	Tax        primitive.Decimal128 `bson:"Tax"`
}
