package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	User_id      string             `json:"user_id" bson:"user_id"`
	Name         *string            `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email        *string            `json:"email" bson:"email" validate:"required,email"`
	Password     *string            `json:"password,omitempty" bson:"password" validate:"required,min=6"`
	Phone        *string            `json:"phone" bson:"phone"`
	Address      *string            `json:"address" bson:"address"`
	Image        *string            `json:"image" bson:"image"`
	Role         *string            `json:"role" bson:"role"`
	Account_type *string            `json:"account_type" bson:"account_type"`
	Is_active    *bool              `json:"is_active" bson:"is_active"`
	Code_id      *string            `json:"code_id" bson:"code_id"`
	Code_expired *time.Time         `json:"code_expired" bson:"code_expired"`
	Created_at   time.Time          `json:"created_at" bson:"created_at"`
	Updated_at   time.Time          `json:"updated_at" bson:"updated_at"`
}
