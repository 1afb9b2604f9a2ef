package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"easy-shop/internal/models"
)

// UserStore is the account persistence needed by the credential gate.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// ProductStore is the catalog collection surface.
type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	ListLimited(ctx context.Context, limit int64) ([]models.Product, error)
	Get(ctx context.Context, id primitive.ObjectID) (models.Product, error)
	Insert(ctx context.Context, doc models.Product) (primitive.ObjectID, error)
}

// EventPublisher emits domain events. Publishing is best-effort: a
// failed publish is logged and never fails the request.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event interface{}) error
}
