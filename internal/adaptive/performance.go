package adaptive

import (
	"math"

	"athos-learning-service/internal/models"
)

// AnalyzeModule summarizes the user's mastery of one module from the
// module's reference data and the user's progress document. Quiz results
// and content records are matched by id membership; records for other
// modules are ignored.
func (e *Engine) AnalyzeModule(moduleID int, content []models.ContentItem, quizzes []models.Quiz, progress *models.UserProgress) ModuleAnalysis {
	analysis := ModuleAnalysis{
		ModuleID:      moduleID,
		TotalQuizzes:  len(quizzes),
		TotalContent:  len(content),
		StruggleAreas: []string{},
		StrengthAreas: []string{},
	}
	if progress == nil {
		analysis.NeedsRemediation = analysis.AverageScore < e.config.RemediationScore
		return analysis
	}

	scoreSum := 0
	for _, quiz := range quizzes {
		result := progress.FindQuizResult(quiz.ID)
		if result == nil {
			continue
		}
		analysis.CompletedQuizzes++
		scoreSum += result.Score
		if result.Score < e.config.RemediationScore {
			analysis.StruggleAreas = append(analysis.StruggleAreas, quiz.ID)
		}
		if result.Score > e.config.StrengthScore {
			analysis.StrengthAreas = append(analysis.StrengthAreas, quiz.ID)
		}
	}
	if analysis.CompletedQuizzes > 0 {
		analysis.AverageScore = int(math.Round(float64(scoreSum) / float64(analysis.CompletedQuizzes)))
	}

	timeSum := 0.0
	tracked := 0
	for _, item := range content {
		record := progress.FindContentProgress(item.ID)
		if record == nil {
			continue
		}
		tracked++
		timeSum += record.TimeSpent
		if record.Completed {
			analysis.CompletedContent++
		}
	}
	if analysis.TotalContent > 0 {
		analysis.CompletionRate = int(math.Round(100 * float64(analysis.CompletedContent) / float64(analysis.TotalContent)))
	}
	if tracked > 0 {
		analysis.AvgTimePerContent = timeSum / float64(tracked)
	}

	analysis.NeedsRemediation = analysis.AverageScore < e.config.RemediationScore
	analysis.ReadyForAdvanced = analysis.AverageScore > e.config.StrengthScore &&
		float64(analysis.CompletedContent) >= e.config.AdvancedCompletionRatio*float64(analysis.TotalContent)

	return analysis
}

// ModuleProgressValue computes the stored per-module progress percentage:
// a fixed 70/30 weighting of content completion and quiz completion.
func (e *Engine) ModuleProgressValue(analysis ModuleAnalysis) int {
	contentRatio := 0.0
	if analysis.TotalContent > 0 {
		contentRatio = float64(analysis.CompletedContent) / float64(analysis.TotalContent)
	}
	quizRatio := 0.0
	if analysis.TotalQuizzes > 0 {
		quizRatio = float64(analysis.CompletedQuizzes) / float64(analysis.TotalQuizzes)
	}
	return int(math.Round(e.config.ContentWeight*contentRatio*100 + e.config.QuizWeight*quizRatio*100))
}
