package repo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"easy-shop/internal/mongodb"
)

type UserRepo struct {
	Col *mongo.Collection
}

type ProductRepo struct {
	Col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{Col: db.Collection(mongodb.UsersCollection)}
}

func NewProductRepo(db *mongo.Database) *ProductRepo {
	return &ProductRepo{Col: db.Collection(mongodb.ProductsCollection)}
}
