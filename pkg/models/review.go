package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID string             `bson:"productId" json:"productId"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Review    string             `bson:"review" json:"review"`
	Rating    int                `bson:"rating,omitempty" json:"rating,omitempty"`
	Date      time.Time          `bson:"date" json:"date"`
}

type ReviewInput struct {
	ProductID string `json:"productId" binding:"required"`
	Name      string `json:"name"`
	Review    string `json:"review" binding:"required"`
	Rating    int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

type ReviewUpdate struct {
	Review string `json:"review" binding:"required"`
	Rating int    `json:"rating" binding:"omitempty,min=1,max=5"`
}
