package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderPending    = "Pending"
	OrderProcessing = "Processing"
	OrderShipped    = "Shipped"
	// OrderDelivered is terminal: a delivered order is never changed or deleted.
	OrderDelivered = "Delivered"
)

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered:
		return true
	}
	return false
}

type Customer struct {
	Email   string `bson:"email" json:"email"`
	Name    string `bson:"name,omitempty" json:"name,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
}

type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Customer  Customer           `bson:"customer" json:"customer"`
	Seller    string             `bson:"seller" json:"seller"`
	ProductID string             `bson:"productId" json:"productId"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int64              `bson:"quantity" json:"quantity"`
	Size      string             `bson:"size,omitempty" json:"size,omitempty"`
	Status    string             `bson:"status" json:"status"`
	OrderDate time.Time          `bson:"orderDate" json:"orderDate"`
}

// OrderView is an order joined with the name and image of its product.
type OrderView struct {
	Order `bson:",inline"`
	Name  string `bson:"name" json:"name"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

type OrderInput struct {
	Customer  Customer `json:"customer"`
	Seller    string   `json:"seller" binding:"required"`
	ProductID string   `json:"productId" binding:"required"`
	Price     float64  `json:"price" binding:"gte=0"`
	Quantity  int64    `json:"quantity" binding:"gte=1"`
	Size      string   `json:"size"`
}
