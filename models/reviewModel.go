package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a customer feedback record. The product it refers to is either a
// cataloged menu item (menuItem set) or free text (productText set), never
// both; with neither set the review is general feedback.
type Review struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Review_id    string             `json:"review_id" bson:"review_id"`
	User         *string            `json:"user" bson:"user"`
	Menu_item    *string            `json:"menuItem" bson:"menu_item"`
	Product_text *string            `json:"productText" bson:"product_text"`
	Rating       *int               `json:"rating" bson:"rating" validate:"required,min=1,max=5"`
	Image        *string            `json:"image" bson:"image"`
	Comment      *string            `json:"comment" bson:"comment"`
	Created_at   time.Time          `json:"created_at" bson:"created_at"`
	Updated_at   time.Time          `json:"updated_at" bson:"updated_at"`
}
