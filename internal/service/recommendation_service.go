package service

import (
	"context"
	"fmt"
	"log"

	"athos-learning-service/internal/adaptive"
	"athos-learning-service/internal/models"
	"athos-learning-service/internal/repository"
)

// Recommendations is the aggregated adaptive-learning payload served to
// the learner dashboard.
type Recommendations struct {
	NextContent         []models.RankedContent `json:"next_content"`
	RemedialContent     []models.RankedContent `json:"remedial_content"`
	AdvancedContent     []models.RankedContent `json:"advanced_content"`
	SuggestedQuizzes    []models.RankedQuiz    `json:"suggested_quizzes"`
	LearningPath        []string               `json:"learning_path"`
	PerformanceInsights PerformanceInsights    `json:"performance_insights"`
}

type PerformanceInsights struct {
	Modules             map[int]adaptive.ModuleAnalysis `json:"modules"`
	OverallAverageScore int                             `json:"overall_average_score"`
	StruggleAreas       []string                        `json:"struggle_areas"`
	StrengthAreas       []string                        `json:"strength_areas"`
}

const (
	maxNextPerModule    = 3
	maxSectionItems     = 3
	maxSuggestedQuizzes = 5
)

// RecommendationService wires the reference stores, the per-user progress
// record, and the scoring engine together. Lookup failures degrade to
// neutral output here; nothing in this service returns an error to the
// HTTP layer except a missing user id.
type RecommendationService struct {
	Users    *repository.UserRepository
	Progress *repository.ProgressRepository
	Content  *ContentService
	Quizzes  *QuizService
	Engine   *adaptive.Engine
}

func NewRecommendationService(
	users *repository.UserRepository,
	progress *repository.ProgressRepository,
	content *ContentService,
	quizzes *QuizService,
	engine *adaptive.Engine,
) *RecommendationService {
	return &RecommendationService{
		Users:    users,
		Progress: progress,
		Content:  content,
		Quizzes:  quizzes,
		Engine:   engine,
	}
}

// AnalyzeModule fetches the module's reference data and the user's
// progress and summarizes performance. Any lookup failure is absorbed into
// a zeroed, false-flagged analysis.
func (s *RecommendationService) AnalyzeModule(ctx context.Context, userID string, moduleID int) adaptive.ModuleAnalysis {
	content, err := s.Content.ListByModule(ctx, moduleID)
	if err != nil {
		log.Printf("Performance analysis: content lookup failed for module %d: %v", moduleID, err)
		return adaptive.ModuleAnalysis{ModuleID: moduleID, StruggleAreas: []string{}, StrengthAreas: []string{}}
	}
	quizzes, err := s.Quizzes.ListByModule(ctx, moduleID)
	if err != nil {
		log.Printf("Performance analysis: quiz lookup failed for module %d: %v", moduleID, err)
		return adaptive.ModuleAnalysis{ModuleID: moduleID, StruggleAreas: []string{}, StrengthAreas: []string{}}
	}
	progress, err := s.Progress.FindOrCreateByUser(ctx, userID)
	if err != nil {
		log.Printf("Performance analysis: progress lookup failed for user %s: %v", userID, err)
		return adaptive.ModuleAnalysis{ModuleID: moduleID, StruggleAreas: []string{}, StrengthAreas: []string{}}
	}
	return s.Engine.AnalyzeModule(moduleID, content, quizzes, progress)
}

// RankedContent returns the module's content ordered and annotated for
// this user. On lookup failure the list keeps its stored order with
// uniform neutral metadata.
func (s *RecommendationService) RankedContent(ctx context.Context, userID string, moduleID int) []models.RankedContent {
	content, err := s.Content.ListByModule(ctx, moduleID)
	if err != nil {
		log.Printf("Content ranking: content lookup failed for module %d: %v", moduleID, err)
		return []models.RankedContent{}
	}

	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		log.Printf("Content ranking: user lookup failed for %s: %v", userID, err)
		return s.Engine.DegradedContent(content)
	}
	progress, err := s.Progress.FindOrCreateByUser(ctx, userID)
	if err != nil {
		log.Printf("Content ranking: progress lookup failed for %s: %v", userID, err)
		return s.Engine.DegradedContent(content)
	}

	quizzes, err := s.Quizzes.ListByModule(ctx, moduleID)
	if err != nil {
		log.Printf("Content ranking: quiz lookup failed for module %d: %v", moduleID, err)
		return s.Engine.DegradedContent(content)
	}

	analysis := s.Engine.AnalyzeModule(moduleID, content, quizzes, progress)
	priority := s.Engine.BuildPriorityTable(user.LearningStyle, progress.DerivedPreferences)
	return s.Engine.RankContent(content, progress, user, analysis, priority)
}

// RankedQuizzes returns the module's quizzes, sanitized and annotated.
func (s *RecommendationService) RankedQuizzes(ctx context.Context, userID string, moduleID int) []models.RankedQuiz {
	quizzes, err := s.Quizzes.ListByModule(ctx, moduleID)
	if err != nil {
		log.Printf("Quiz ranking: quiz lookup failed for module %d: %v", moduleID, err)
		return []models.RankedQuiz{}
	}
	analysis := s.AnalyzeModule(ctx, userID, moduleID)
	progress, err := s.Progress.FindOrCreateByUser(ctx, userID)
	if err != nil {
		progress = nil
	}
	return s.Engine.RankQuizzes(quizzes, progress, analysis)
}

// Recommendations assembles the full adaptive payload across all three
// modules.
func (s *RecommendationService) Recommendations(ctx context.Context, userID string) *Recommendations {
	out := &Recommendations{
		NextContent:      []models.RankedContent{},
		RemedialContent:  []models.RankedContent{},
		AdvancedContent:  []models.RankedContent{},
		SuggestedQuizzes: []models.RankedQuiz{},
		LearningPath:     []string{},
		PerformanceInsights: PerformanceInsights{
			Modules:       map[int]adaptive.ModuleAnalysis{},
			StruggleAreas: []string{},
			StrengthAreas: []string{},
		},
	}

	progress, err := s.Progress.FindOrCreateByUser(ctx, userID)
	if err != nil {
		log.Printf("Recommendations: progress lookup failed for %s: %v", userID, err)
		progress = nil
	}

	scoreSum, scored := 0, 0
	for _, moduleID := range models.ModuleIDs {
		analysis := s.AnalyzeModule(ctx, userID, moduleID)
		out.PerformanceInsights.Modules[moduleID] = analysis
		out.PerformanceInsights.StruggleAreas = append(out.PerformanceInsights.StruggleAreas, analysis.StruggleAreas...)
		out.PerformanceInsights.StrengthAreas = append(out.PerformanceInsights.StrengthAreas, analysis.StrengthAreas...)
		if analysis.CompletedQuizzes > 0 {
			scoreSum += analysis.AverageScore
			scored++
		}

		ranked := s.RankedContent(ctx, userID, moduleID)
		out.NextContent = append(out.NextContent, nextContent(ranked, progress, maxNextPerModule)...)
		if analysis.NeedsRemediation {
			out.RemedialContent = append(out.RemedialContent, filterByDifficulty(ranked, models.DifficultyBasic, maxSectionItems)...)
		}
		if analysis.ReadyForAdvanced {
			out.AdvancedContent = append(out.AdvancedContent, filterByDifficulty(ranked, models.DifficultyAdvanced, maxSectionItems)...)
		}

		for _, quiz := range s.RankedQuizzes(ctx, userID, moduleID) {
			if quiz.Recommended && len(out.SuggestedQuizzes) < maxSuggestedQuizzes {
				out.SuggestedQuizzes = append(out.SuggestedQuizzes, quiz)
			}
		}

		out.LearningPath = append(out.LearningPath, pathStep(moduleID, analysis))
	}
	if scored > 0 {
		out.PerformanceInsights.OverallAverageScore = scoreSum / scored
	}

	return out
}

// nextContent picks the highest-ranked items the user has not completed.
func nextContent(ranked []models.RankedContent, progress *models.UserProgress, limit int) []models.RankedContent {
	picked := []models.RankedContent{}
	for _, item := range ranked {
		if len(picked) >= limit {
			break
		}
		if progress != nil {
			if record := progress.FindContentProgress(item.ID); record != nil && record.Completed {
				continue
			}
		}
		picked = append(picked, item)
	}
	return picked
}

func filterByDifficulty(ranked []models.RankedContent, difficulty models.Difficulty, limit int) []models.RankedContent {
	picked := []models.RankedContent{}
	for _, item := range ranked {
		if len(picked) >= limit {
			break
		}
		if item.Difficulty == difficulty {
			picked = append(picked, item)
		}
	}
	return picked
}

// pathStep phrases one learning-path suggestion for a module.
func pathStep(moduleID int, analysis adaptive.ModuleAnalysis) string {
	title := models.ModuleTitles[moduleID]
	switch {
	case analysis.NeedsRemediation && analysis.CompletedQuizzes > 0:
		return fmt.Sprintf("Revisit the basics of %s - your average quiz score is %d%%", title, analysis.AverageScore)
	case analysis.CompletionRate < 100:
		return fmt.Sprintf("Continue exploring %s (%d%% complete)", title, analysis.CompletionRate)
	case analysis.ReadyForAdvanced:
		return fmt.Sprintf("Take on the advanced material in %s", title)
	default:
		return fmt.Sprintf("Review and consolidate %s", title)
	}
}
