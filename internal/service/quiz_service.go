package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"athos-learning-service/internal/cache"
	"athos-learning-service/internal/models"
	"athos-learning-service/internal/repository"
)

type QuizService struct {
	Repo  *repository.QuizRepository
	Cache *cache.Cache
}

func NewQuizService(repo *repository.QuizRepository, c *cache.Cache) *QuizService {
	return &QuizService{Repo: repo, Cache: c}
}

// ListByModule returns the module's quizzes with correctness flags intact;
// callers serving learners must sanitize.
func (s *QuizService) ListByModule(ctx context.Context, moduleID int) ([]models.Quiz, error) {
	key := cache.ModuleQuizKey(moduleID)
	var cached []models.Quiz
	if s.Cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}
	quizzes, err := s.Repo.FindByModule(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	s.Cache.SetJSON(ctx, key, quizzes)
	return quizzes, nil
}

func (s *QuizService) Get(ctx context.Context, id string) (*models.Quiz, error) {
	return s.Repo.FindByID(ctx, id)
}

// Grade checks submitted option choices against the quiz and returns the
// percentage score with per-question correctness.
func (s *QuizService) Grade(quiz *models.Quiz, submitted map[string]string) (int, []models.Answer, error) {
	if len(quiz.Questions) == 0 {
		return 0, nil, fmt.Errorf("quiz %s has no questions", quiz.ID)
	}

	answers := make([]models.Answer, 0, len(quiz.Questions))
	correct := 0
	for _, question := range quiz.Questions {
		optionID := submitted[question.ID]
		answer := models.Answer{QuestionID: question.ID, OptionID: optionID}
		for _, opt := range question.Options {
			if opt.ID == optionID && opt.IsCorrect {
				answer.Correct = true
				correct++
				break
			}
		}
		answers = append(answers, answer)
	}

	score := int(math.Round(100 * float64(correct) / float64(len(quiz.Questions))))
	return score, answers, nil
}

func (s *QuizService) Create(ctx context.Context, quiz *models.Quiz) error {
	now := time.Now()
	quiz.CreatedAt = now
	quiz.UpdatedAt = now
	if err := s.Repo.Create(ctx, quiz); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, cache.ModuleQuizKey(quiz.ModuleID))
	return nil
}

func (s *QuizService) Update(ctx context.Context, id string, update map[string]interface{}) error {
	quiz, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	update["updated_at"] = time.Now()
	if err := s.Repo.Update(ctx, id, update); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, cache.ModuleQuizKey(quiz.ModuleID))
	return nil
}

func (s *QuizService) Delete(ctx context.Context, id string) error {
	quiz, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, cache.ModuleQuizKey(quiz.ModuleID))
	return nil
}
