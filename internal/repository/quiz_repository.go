package repository

import (
	"context"

	"athos-learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuizRepository struct {
	Col *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{Col: db.Collection("quizzes")}
}

func (r *QuizRepository) FindByModule(ctx context.Context, moduleID int) ([]models.Quiz, error) {
	cur, err := r.Col.Find(ctx, bson.M{"module_id": moduleID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var quizzes []models.Quiz
	for cur.Next(ctx) {
		var quiz models.Quiz
		if err := cur.Decode(&quiz); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, quiz)
	}
	return quizzes, cur.Err()
}

func (r *QuizRepository) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.Col.FindOne(ctx, idFilter(id)).Decode(&quiz)
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	if quiz.ID == "" {
		quiz.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, quiz)
	return err
}

func (r *QuizRepository) Update(ctx context.Context, id string, update map[string]interface{}) error {
	_, err := r.Col.UpdateOne(ctx, idFilter(id), bson.M{"$set": update})
	return err
}

func (r *QuizRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, idFilter(id))
	return err
}
