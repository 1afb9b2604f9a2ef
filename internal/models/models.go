package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name"          json:"name"`
	Email        string             `bson:"email"         json:"email"`
	PasswordHash string             `bson:"password"      json:"-"`
	Role         string             `bson:"role"          json:"role"`
}

// Product is an open document: whatever fields the caller submitted,
// plus the storage-assigned _id. No schema is enforced.
type Product = bson.M
