package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"easy-shop/internal/apperr"
	"easy-shop/internal/models"
)

func (r *ProductRepo) List(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, nil)
}

// ListLimited returns at most limit products, for bounded previews.
func (r *ProductRepo) ListLimited(ctx context.Context, limit int64) ([]models.Product, error) {
	return r.find(ctx, options.Find().SetLimit(limit))
}

func (r *ProductRepo) find(ctx context.Context, opts *options.FindOptions) ([]models.Product, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.Col.Find(ctx, bson.M{}, opts)
	} else {
		cursor, err = r.Col.Find(ctx, bson.M{})
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "cannot list products", err)
	}
	defer cursor.Close(ctx)

	items := []models.Product{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "cannot decode products", err)
	}
	return items, nil
}

// Get returns nil without error when no product has the given id.
func (r *ProductRepo) Get(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var product models.Product
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, apperr.Wrap(apperr.KindInternal, "cannot get product", err)
	}
	return product, nil
}

// Insert stores the document verbatim and returns the assigned id.
func (r *ProductRepo) Insert(ctx context.Context, doc models.Product) (primitive.ObjectID, error) {
	res, err := r.Col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, apperr.Wrap(apperr.KindInternal, "cannot insert product", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, apperr.New(apperr.KindInternal, "unexpected inserted id type")
	}
	return id, nil
}
