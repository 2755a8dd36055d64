package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/07piyush/wardrobeai/domain"
	"github.com/07piyush/wardrobeai/mongo"
)

type wardrobeRepository struct {
	database   mongo.Database
	collection string
}

func NewWardrobeRepository(db mongo.Database, collection string) domain.WardrobeRepository {
	return &wardrobeRepository{
		database:   db,
		collection: collection,
	}
}

func (r *wardrobeRepository) Create(ctx context.Context, item *domain.WardrobeItem) error {
	coll := r.database.Collection(r.collection)
	id, err := coll.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to create wardrobe item: %w", err)
	}
	if oid, ok := id.(primitive.ObjectID); ok {
		item.ID = oid
	}
	return nil
}

func (r *wardrobeRepository) FetchByUser(ctx context.Context, userID string) ([]domain.WardrobeItem, error) {
	coll := r.database.Collection(r.collection)

	cursor, err := coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wardrobe: %w", err)
	}

	var items []domain.WardrobeItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode wardrobe items: %w", err)
	}
	if items == nil {
		items = []domain.WardrobeItem{}
	}
	return items, nil
}

func (r *wardrobeRepository) GetByID(ctx context.Context, userID string, id string) (*domain.WardrobeItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid wardrobe item id: %w", err)
	}

	coll := r.database.Collection(r.collection)
	var item domain.WardrobeItem
	err = coll.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&item)
	if err != nil {
		return nil, fmt.Errorf("wardrobe item not found: %w", err)
	}
	return &item, nil
}

func (r *wardrobeRepository) Delete(ctx context.Context, userID string, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid wardrobe item id: %w", err)
	}

	coll := r.database.Collection(r.collection)
	count, err := coll.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete wardrobe item: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("wardrobe item not found with id: %s", id)
	}
	return nil
}
