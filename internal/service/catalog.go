package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"easy-shop/internal/apperr"
	"easy-shop/internal/logging"
	"easy-shop/internal/models"
)

const productEventsTopic = "product_events"

// HomePreviewSize bounds the home page product preview.
const HomePreviewSize = 6

type CatalogService struct {
	Products ProductStore
	Events   EventPublisher
}

func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	return s.Products.List(ctx)
}

func (s *CatalogService) ListHome(ctx context.Context) ([]models.Product, error) {
	return s.Products.ListLimited(ctx, HomePreviewSize)
}

// Get returns nil for an absent product; a malformed hex id is a
// validation failure, not an unhandled fault.
func (s *CatalogService) Get(ctx context.Context, hexID string) (models.Product, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "invalid product id", err)
	}
	return s.Products.Get(ctx, id)
}

// Create stores the caller's document verbatim. No shape validation.
func (s *CatalogService) Create(ctx context.Context, doc models.Product) (primitive.ObjectID, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.create")

	id, err := s.Products.Insert(ctx, doc)
	if err != nil {
		l.Error("create_product_failed", "error", err)
		return primitive.NilObjectID, err
	}

	s.publish(ctx, productEventsTopic, id.Hex(), map[string]interface{}{
		"type":      "product_created",
		"productID": id.Hex(),
	})

	l.Info("create_product_success")
	return id, nil
}

func (s *CatalogService) publish(ctx context.Context, topic, key string, event map[string]interface{}) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "topic", topic, "error", err)
	}
}
