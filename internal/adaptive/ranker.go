package adaptive

import (
	"sort"

	"athos-learning-service/internal/models"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Recommendation reason messages. First matching rule wins.
const (
	reasonVisualMatch   = "Visual content matched to your learning style"
	reasonTextualMatch  = "Text content matched to your learning style"
	reasonNewContent    = "New content for you to explore"
	reasonEngagement    = "You engage well with this type of content"
	reasonReview        = "Recommended review to strengthen the fundamentals"
	reasonChallenge     = "Advanced material to challenge your strong performance"
	reasonVisualGeneric = "Visual content suited to your learning style"
	reasonFallback      = "Additional learning opportunity"
	reasonDegraded      = "error"
)

// RankContent orders a module's content by the priority table and the
// performance summary, annotating every item with why it landed where it
// did. The sort is stable: ties without a remediation or advanced override
// keep their original relative order.
func (e *Engine) RankContent(items []models.ContentItem, progress *models.UserProgress, user *models.User, analysis ModuleAnalysis, priority PriorityTable) []models.RankedContent {
	ranked := make([]models.RankedContent, len(items))
	for i, item := range items {
		ranked[i] = models.RankedContent{
			ContentItem:      item,
			AdaptiveMetadata: e.annotate(item, progress, user, analysis, priority),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		pi, pj := priority[ranked[i].Type], priority[ranked[j].Type]
		if pi != pj {
			return pi > pj
		}
		if analysis.NeedsRemediation {
			return ranked[i].Difficulty == models.DifficultyBasic && ranked[j].Difficulty == models.DifficultyAdvanced
		}
		if analysis.ReadyForAdvanced {
			return ranked[i].Difficulty == models.DifficultyAdvanced && ranked[j].Difficulty == models.DifficultyBasic
		}
		return false
	})

	return ranked
}

// DegradedContent returns the input order with uniform neutral metadata.
// Used when a lookup failed: recommendations degrade, they never block.
func (e *Engine) DegradedContent(items []models.ContentItem) []models.RankedContent {
	ranked := make([]models.RankedContent, len(items))
	for i, item := range items {
		ranked[i] = models.RankedContent{
			ContentItem: item,
			AdaptiveMetadata: models.AdaptiveMetadata{
				Recommended: false,
				Reason:      reasonDegraded,
				Priority:    PriorityMedium,
			},
		}
	}
	return ranked
}

func (e *Engine) annotate(item models.ContentItem, progress *models.UserProgress, user *models.User, analysis ModuleAnalysis, priority PriorityTable) models.AdaptiveMetadata {
	completed := false
	if progress != nil {
		if record := progress.FindContentProgress(item.ID); record != nil {
			completed = record.Completed
		}
	}

	style := models.LearningStyle("")
	if user != nil {
		style = user.LearningStyle
	}
	visual := style == models.StyleVisual
	textual := style == models.StyleTextual
	nonText := item.Type != models.ContentText

	derivedType := models.ContentType("")
	if progress != nil && progress.DerivedPreferences != nil {
		derivedType = progress.DerivedPreferences.PreferredContentType
	}

	remedialBasic := analysis.NeedsRemediation && item.Difficulty == models.DifficultyBasic
	advancedReady := analysis.ReadyForAdvanced && item.Difficulty == models.DifficultyAdvanced

	meta := models.AdaptiveMetadata{
		Recommended:        !completed || (visual && nonText) || remedialBasic || advancedReady,
		LearningStyleMatch: priority[item.Type],
		VisualLearnerBoost: visual && nonText,
		BehaviorMatch:      derivedType != "" && derivedType == item.Type,
	}

	switch {
	case !completed && visual && nonText:
		meta.Reason = reasonVisualMatch
	case !completed && textual && item.Type == models.ContentText:
		meta.Reason = reasonTextualMatch
	case !completed:
		meta.Reason = reasonNewContent
	case item.Type == derivedType && derivedType != "":
		meta.Reason = reasonEngagement
	case remedialBasic:
		meta.Reason = reasonReview
	case advancedReady:
		meta.Reason = reasonChallenge
	case visual && nonText:
		meta.Reason = reasonVisualGeneric
	default:
		meta.Reason = reasonFallback
	}

	// Bucket assignment: uncompleted lifts to high, the type score then
	// overrides, and the remediation/advanced condition has the final say.
	meta.Priority = PriorityMedium
	if !completed {
		meta.Priority = PriorityHigh
	}
	score := priority[item.Type]
	switch {
	case score >= e.config.HighPriorityScore:
		meta.Priority = PriorityHigh
	case score >= e.config.MediumPriorityScore:
		meta.Priority = PriorityMedium
	default:
		meta.Priority = PriorityLow
	}
	if remedialBasic || advancedReady {
		meta.Priority = PriorityHigh
	}

	return meta
}

// Quiz ranker reason messages.
const (
	reasonNotAttempted = "Not attempted yet"
	reasonRetake       = "Retake recommended to improve your score"
	reasonExcellent    = "Excellent score - consider advanced material"
)

// RankQuizzes flags quizzes for retake or recommendation from past scores
// and the module performance summary. Quizzes are sanitized: correctness
// flags never reach learner payloads.
func (e *Engine) RankQuizzes(quizzes []models.Quiz, progress *models.UserProgress, analysis ModuleAnalysis) []models.RankedQuiz {
	ranked := make([]models.RankedQuiz, len(quizzes))
	for i, quiz := range quizzes {
		entry := models.RankedQuiz{Quiz: quiz.Sanitized()}

		var result *models.QuizResult
		if progress != nil {
			result = progress.FindQuizResult(quiz.ID)
		}

		switch {
		case result == nil:
			entry.Recommended = true
			entry.Reason = reasonNotAttempted
		case result.Score < e.config.RetakeScore:
			score := result.Score
			entry.Recommended = true
			entry.ShouldRetake = true
			entry.Reason = reasonRetake
			entry.LastScore = &score
		case result.Score > e.config.StrengthScore && analysis.ReadyForAdvanced:
			score := result.Score
			entry.Reason = reasonExcellent
			entry.LastScore = &score
		default:
			score := result.Score
			entry.LastScore = &score
		}

		ranked[i] = entry
	}
	return ranked
}
