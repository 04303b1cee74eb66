package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem is a purchasable product shown in the storefront. Category is
// restricted to the two storefront sections.
type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Item_id     string             `json:"item_id" bson:"item_id"`
	Title       *string            `json:"title" bson:"title" validate:"required,min=2,max=100"`
	Description *string            `json:"description" bson:"description"`
	Base_price  *string            `json:"base_price" bson:"base_price" validate:"required"`
	Image       *string            `json:"image" bson:"image"`
	Category    *string            `json:"category" bson:"category" validate:"required,oneof=drink cake"`
	Created_at  time.Time          `json:"created_at" bson:"created_at"`
	Updated_at  time.Time          `json:"updated_at" bson:"updated_at"`
}

// MenuItemCategories lists the valid category values for query filtering.
var MenuItemCategories = map[string]bool{
	"drink": true,
	"cake":  true,
}
