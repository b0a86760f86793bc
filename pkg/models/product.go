package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductSeller struct {
	Email    string `bson:"email" json:"email"`
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	ShopName string `bson:"shopName,omitempty" json:"shopName,omitempty"`
}

type Product struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductName     string             `bson:"productName" json:"productName"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	Price           float64            `bson:"price" json:"price"`
	DiscountedPrice float64            `bson:"discountedPrice,omitempty" json:"discountedPrice,omitempty"`
	Quantity        int64              `bson:"quantity" json:"quantity"`
	Category        string             `bson:"category,omitempty" json:"category,omitempty"`
	Sizes           []string           `bson:"sizes,omitempty" json:"sizes,omitempty"`
	DeliveryPrice   float64            `bson:"deliveryPrice,omitempty" json:"deliveryPrice,omitempty"`
	Seller          ProductSeller      `bson:"seller" json:"seller"`
	Timestamp       int64              `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
}

// ProductInput is the writable part of a product listing.
type ProductInput struct {
	ProductName     string        `json:"productName" binding:"required"`
	Description     string        `json:"description"`
	Image           string        `json:"image"`
	Price           float64       `json:"price" binding:"gte=0"`
	DiscountedPrice float64       `json:"discountedPrice" binding:"gte=0"`
	Quantity        int64         `json:"quantity" binding:"gte=0"`
	Category        string        `json:"category"`
	Sizes           []string      `json:"sizes"`
	DeliveryPrice   float64       `json:"deliveryPrice" binding:"gte=0"`
	Seller          ProductSeller `json:"seller"`
}

// ProductFilter narrows the public product listing.
type ProductFilter struct {
	Category string
	Search   string
}
