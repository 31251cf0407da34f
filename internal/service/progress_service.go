package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"athos-learning-service/internal/adaptive"
	"athos-learning-service/internal/models"
	"athos-learning-service/internal/repository"
)

// ProgressService owns every mutation of the per-user progress document:
// behavior tracking, content-progress reports, quiz submissions, and the
// module-progress recompute they all feed.
type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	ContentRepo  *repository.ContentRepository
	QuizRepo     *repository.QuizRepository
	Quizzes      *QuizService
	Engine       *adaptive.Engine
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	contentRepo *repository.ContentRepository,
	quizRepo *repository.QuizRepository,
	quizzes *QuizService,
	engine *adaptive.Engine,
) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		ContentRepo:  contentRepo,
		QuizRepo:     quizRepo,
		Quizzes:      quizzes,
		Engine:       engine,
	}
}

func (s *ProgressService) GetProgress(ctx context.Context, userID string) (*models.UserProgress, error) {
	return s.ProgressRepo.FindOrCreateByUser(ctx, userID)
}

// TrackBehavior appends one behavior event and runs its side effects: a
// completion event upserts content progress and recomputes the module's
// progress value, and every fifth event re-derives preferences. The side
// effects are best effort; only the append itself can fail the request.
func (s *ProgressService) TrackBehavior(ctx context.Context, userID string, event models.BehaviorEvent) (*models.UserProgress, error) {
	if event.ActionType == "" {
		return nil, fmt.Errorf("action_type is required")
	}
	if event.TimeSpent < 0 || event.Interactions < 0 {
		return nil, fmt.Errorf("time_spent and interactions must be non-negative")
	}
	if event.RecordedAt.IsZero() {
		event.RecordedAt = time.Now()
	}

	progress, err := s.ProgressRepo.AppendBehaviorEvent(ctx, userID, event)
	if err != nil {
		return nil, err
	}

	if event.ContentID != "" && (event.ActionType == models.ActionComplete || event.ActionType == models.ActionDeepEngagement) {
		completed := event.ActionType == models.ActionComplete
		if err := s.ProgressRepo.UpsertContentProgress(ctx, userID, event.ContentID, completed, event.TimeSpent, event.Interactions); err != nil {
			log.Printf("Behavior tracking: content progress update failed for user %s: %v", userID, err)
		} else if completed {
			if item, err := s.ContentRepo.FindByID(ctx, event.ContentID); err == nil {
				s.RecomputeModuleProgress(ctx, userID, item.ModuleID)
			}
		}
	}

	if s.Engine.ShouldRecompute(len(progress.BehaviorData)) {
		s.RecomputePreferences(ctx, userID, progress.BehaviorData)
	}

	return progress, nil
}

// RecomputePreferences rebuilds the derived-preference value from the
// behavior window and swaps it in whole. Background refinement: failures
// are logged, never surfaced.
func (s *ProgressService) RecomputePreferences(ctx context.Context, userID string, events []models.BehaviorEvent) {
	prefs, ok := s.Engine.DeriveFromBehavior(events, time.Now())
	if !ok {
		return
	}
	if err := s.ProgressRepo.SetDerivedPreferences(ctx, userID, prefs); err != nil {
		log.Printf("Preference recompute failed for user %s: %v", userID, err)
	}
}

// ReportContentProgress records a completion or time-spent report and
// recomputes the affected module's progress value.
func (s *ProgressService) ReportContentProgress(ctx context.Context, userID, contentID string, completed bool, timeSpent float64, interactions int) error {
	item, err := s.ContentRepo.FindByID(ctx, contentID)
	if err != nil {
		return fmt.Errorf("unknown content %s: %w", contentID, err)
	}
	if timeSpent < 0 || interactions < 0 {
		return fmt.Errorf("time_spent and interactions must be non-negative")
	}
	if err := s.ProgressRepo.UpsertContentProgress(ctx, userID, contentID, completed, timeSpent, interactions); err != nil {
		return err
	}
	s.RecomputeModuleProgress(ctx, userID, item.ModuleID)
	return nil
}

// SubmitQuiz grades a submission, stores it with replace semantics, and
// recomputes the module progress. Returns the stored result.
func (s *ProgressService) SubmitQuiz(ctx context.Context, userID, quizID string, submitted map[string]string) (*models.QuizResult, error) {
	quiz, err := s.QuizRepo.FindByID(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("unknown quiz %s: %w", quizID, err)
	}

	score, answers, err := s.Quizzes.Grade(quiz, submitted)
	if err != nil {
		return nil, err
	}

	result := models.QuizResult{
		QuizID:    quizID,
		Score:     score,
		Answers:   answers,
		DateTaken: time.Now(),
	}
	if err := s.ProgressRepo.ReplaceQuizResult(ctx, userID, result); err != nil {
		return nil, err
	}
	s.RecomputeModuleProgress(ctx, userID, quiz.ModuleID)
	return &result, nil
}

// RecomputeModuleProgress rewrites the stored progress value for one
// module from the fixed content/quiz weighting. The value is advisory, so
// failures are logged and swallowed.
func (s *ProgressService) RecomputeModuleProgress(ctx context.Context, userID string, moduleID int) {
	content, err := s.ContentRepo.FindByModule(ctx, moduleID)
	if err != nil {
		log.Printf("Module progress recompute: content lookup failed for module %d: %v", moduleID, err)
		return
	}
	quizzes, err := s.QuizRepo.FindByModule(ctx, moduleID)
	if err != nil {
		log.Printf("Module progress recompute: quiz lookup failed for module %d: %v", moduleID, err)
		return
	}
	progress, err := s.ProgressRepo.FindOrCreateByUser(ctx, userID)
	if err != nil {
		log.Printf("Module progress recompute: progress lookup failed for user %s: %v", userID, err)
		return
	}

	analysis := s.Engine.AnalyzeModule(moduleID, content, quizzes, progress)
	value := s.Engine.ModuleProgressValue(analysis)
	if err := s.ProgressRepo.SetModuleProgress(ctx, userID, moduleID, value); err != nil {
		log.Printf("Module progress recompute: write failed for user %s module %d: %v", userID, moduleID, err)
	}
}
