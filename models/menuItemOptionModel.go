package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItemOption is an add-on belonging to a single menu item.
type MenuItemOption struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	Option_id            string             `json:"option_id" bson:"option_id"`
	Menu_item            *string            `json:"menu_item" bson:"menu_item" validate:"required"`
	Title                *string            `json:"title" bson:"title" validate:"required,min=2,max=100"`
	Additional_price     *string            `json:"additional_price" bson:"additional_price"`
	Optional_description *string            `json:"optional_description" bson:"optional_description"`
	Created_at           time.Time          `json:"created_at" bson:"created_at"`
	Updated_at           time.Time          `json:"updated_at" bson:"updated_at"`
}
