package repository

import (
	"context"

	"athos-learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ContentRepository struct {
	Col *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{Col: db.Collection("content")}
}

func (r *ContentRepository) FindByModule(ctx context.Context, moduleID int) ([]models.ContentItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{"module_id": moduleID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var items []models.ContentItem
	for cur.Next(ctx) {
		var item models.ContentItem
		if err := cur.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, cur.Err()
}

func (r *ContentRepository) FindByID(ctx context.Context, id string) (*models.ContentItem, error) {
	var item models.ContentItem
	err := r.Col.FindOne(ctx, idFilter(id)).Decode(&item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ContentRepository) Create(ctx context.Context, item *models.ContentItem) error {
	if item.ID == "" {
		item.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, item)
	return err
}

func (r *ContentRepository) Update(ctx context.Context, id string, update map[string]interface{}) error {
	_, err := r.Col.UpdateOne(ctx, idFilter(id), bson.M{"$set": update})
	return err
}

func (r *ContentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, idFilter(id))
	return err
}

// idFilter matches documents by id in either representation. Everything
// this service writes stores _id as a string (seeded ids and generated
// hex), but the auth-owned users collection may carry typed ObjectIDs,
// so hex ids match both.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{id, oid}}}
	}
	return bson.M{"_id": id}
}
