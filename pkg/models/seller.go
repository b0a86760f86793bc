package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SellerApplication is a pending request to be promoted to the seller role.
type SellerApplication struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	ShopName    string             `bson:"shopName,omitempty" json:"shopName,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address     string             `bson:"address,omitempty" json:"address,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Role        string             `bson:"role" json:"role"`
	Timestamp   int64              `bson:"timestamp" json:"timestamp"`
}

type SellerProfile struct {
	Name        string `json:"name"`
	ShopName    string `json:"shopName"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Description string `json:"description"`
}
