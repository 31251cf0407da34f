package repository

import (
	"context"
	"errors"
	"time"

	"athos-learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProgressRepository owns the one-document-per-user progress collection.
// Behavior events are appended with an atomic $push so concurrent tracker
// requests cannot lose updates; content-progress and quiz-result mutations
// use positional array updates for the same reason.
type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("progress")}
}

// FindOrCreateByUser returns the user's progress document, creating the
// zeroed default on first access. The unique index on user_id absorbs the
// create race: on a duplicate-key error the winner's document is re-read.
func (r *ProgressRepository) FindOrCreateByUser(ctx context.Context, userID string) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&progress)
	if err == nil {
		return &progress, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	fresh := models.NewUserProgress(userID)
	fresh.ID = primitive.NewObjectID().Hex()
	if _, err := r.Col.InsertOne(ctx, fresh); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			err = r.Col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&progress)
			if err != nil {
				return nil, err
			}
			return &progress, nil
		}
		return nil, err
	}
	return fresh, nil
}

// AppendBehaviorEvent atomically pushes one event and returns the updated
// document, so the caller can count events for the learner trigger.
func (r *ProgressRepository) AppendBehaviorEvent(ctx context.Context, userID string, event models.BehaviorEvent) (*models.UserProgress, error) {
	if _, err := r.FindOrCreateByUser(ctx, userID); err != nil {
		return nil, err
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{
		"$push": bson.M{"behavior_data": event},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	var progress models.UserProgress
	err := r.Col.FindOneAndUpdate(ctx, bson.M{"user_id": userID}, update, opts).Decode(&progress)
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// contentProgressFilter matches the user's existing record for a content
// id; contentProgressAbsentFilter matches only when no such record exists,
// which keeps the push branch atomic under concurrent first reports.
func contentProgressFilter(userID, contentID string) bson.M {
	return bson.M{"user_id": userID, "content_progress.content_id": contentID}
}

func contentProgressAbsentFilter(userID, contentID string) bson.M {
	return bson.M{"user_id": userID, "content_progress.content_id": bson.M{"$ne": contentID}}
}

func contentProgressUpdate(completed bool, timeSpent float64, interactions int, now time.Time) bson.M {
	set := bson.M{
		"content_progress.$.last_accessed": now,
		"updated_at":                       now,
	}
	if completed {
		set["content_progress.$.completed"] = true
	}
	return bson.M{
		"$set": set,
		"$inc": bson.M{
			"content_progress.$.time_spent":   timeSpent,
			"content_progress.$.interactions": interactions,
		},
	}
}

// UpsertContentProgress accumulates time and interactions on the record for
// contentID, creating it if absent. Completed only ever flips to true. The
// create branch pushes only when the record is still absent; a writer that
// loses that race falls back to the positional update against the record
// the winner created.
func (r *ProgressRepository) UpsertContentProgress(ctx context.Context, userID, contentID string, completed bool, timeSpent float64, interactions int) error {
	if _, err := r.FindOrCreateByUser(ctx, userID); err != nil {
		return err
	}
	now := time.Now()
	update := contentProgressUpdate(completed, timeSpent, interactions, now)

	res, err := r.Col.UpdateOne(ctx, contentProgressFilter(userID, contentID), update)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	record := models.ContentProgress{
		ContentID:    contentID,
		Completed:    completed,
		LastAccessed: now,
		TimeSpent:    timeSpent,
		Interactions: interactions,
	}
	res, err = r.Col.UpdateOne(ctx, contentProgressAbsentFilter(userID, contentID), bson.M{
		"$push": bson.M{"content_progress": record},
		"$set":  bson.M{"updated_at": now},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	_, err = r.Col.UpdateOne(ctx, contentProgressFilter(userID, contentID), update)
	return err
}

func quizResultFilter(userID, quizID string) bson.M {
	return bson.M{"user_id": userID, "quiz_results.quiz_id": quizID}
}

func quizResultAbsentFilter(userID, quizID string) bson.M {
	return bson.M{"user_id": userID, "quiz_results.quiz_id": bson.M{"$ne": quizID}}
}

// ReplaceQuizResult stores the latest attempt for a quiz, replacing any
// prior one and bumping the attempt counter. Same race shape as
// UpsertContentProgress: the push is guarded on absence and the loser
// retries the positional replace.
func (r *ProgressRepository) ReplaceQuizResult(ctx context.Context, userID string, result models.QuizResult) error {
	if _, err := r.FindOrCreateByUser(ctx, userID); err != nil {
		return err
	}
	now := time.Now()

	update := bson.M{
		"$set": bson.M{
			"quiz_results.$.score":      result.Score,
			"quiz_results.$.answers":    result.Answers,
			"quiz_results.$.date_taken": result.DateTaken,
			"updated_at":                now,
		},
		"$inc": bson.M{"quiz_results.$.attempts": 1},
	}
	res, err := r.Col.UpdateOne(ctx, quizResultFilter(userID, result.QuizID), update)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	first := result
	first.Attempts = 1
	res, err = r.Col.UpdateOne(ctx, quizResultAbsentFilter(userID, result.QuizID), bson.M{
		"$push": bson.M{"quiz_results": first},
		"$set":  bson.M{"updated_at": now},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	_, err = r.Col.UpdateOne(ctx, quizResultFilter(userID, result.QuizID), update)
	return err
}

// SetModuleProgress writes the recomputed progress value for one module.
func (r *ProgressRepository) SetModuleProgress(ctx context.Context, userID string, moduleID, progress int) error {
	now := time.Now()
	filter := bson.M{"user_id": userID, "module_progress.module_id": moduleID}
	update := bson.M{
		"$set": bson.M{
			"module_progress.$.progress":     progress,
			"module_progress.$.last_updated": now,
			"updated_at":                     now,
		},
	}
	_, err := r.Col.UpdateOne(ctx, filter, update)
	return err
}

// SetDerivedPreferences swaps in a freshly built preference struct as one
// value. Never used for partial updates.
func (r *ProgressRepository) SetDerivedPreferences(ctx context.Context, userID string, prefs models.DerivedPreferences) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{
		"$set": bson.M{
			"derived_preferences": prefs,
			"updated_at":          time.Now(),
		},
	})
	return err
}
