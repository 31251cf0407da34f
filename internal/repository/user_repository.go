package repository

import (
	"context"

	"athos-learning-service/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository is read-only here: the auth service owns the users
// collection, this service only needs the explicit learning style.
type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, idFilter(id)).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
