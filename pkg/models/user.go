package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
	RoleAdmin    = "admin"
)

const (
	StatusRequested = "Requested"
	StatusVerified  = "Verified"
)

// ValidRole reports whether role is one an admin may assign.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role      string             `bson:"role" json:"role"`
	Status    string             `bson:"status,omitempty" json:"status,omitempty"`
	Timestamp int64              `bson:"timestamp" json:"timestamp"`
}

// UserProfile is the client-supplied part of a user document.
type UserProfile struct {
	Name  string `json:"name"`
	Photo string `json:"photo"`
}
