package adaptive

import (
	"testing"

	"athos-learning-service/internal/models"
)

func contentItems(specs ...models.ContentItem) []models.ContentItem {
	return specs
}

func moduleQuizzes(ids ...string) []models.Quiz {
	quizzes := make([]models.Quiz, len(ids))
	for i, id := range ids {
		quizzes[i] = models.Quiz{ID: id, ModuleID: 1}
	}
	return quizzes
}

func TestAnalyzeModuleCompletionRate(t *testing.T) {
	engine := NewEngine(nil)

	testCases := []struct {
		name         string
		totalContent int
		completed    int
		expectedRate int
	}{
		{"no content", 0, 0, 0},
		{"half complete", 4, 2, 50},
		{"one third rounds", 3, 1, 33},
		{"two thirds rounds", 3, 2, 67},
		{"all complete", 5, 5, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var content []models.ContentItem
			progress := models.NewUserProgress("u1")
			for i := 0; i < tc.totalContent; i++ {
				id := string(rune('a' + i))
				content = append(content, models.ContentItem{ID: id, ModuleID: 1, Type: models.ContentText})
				if i < tc.completed {
					progress.ContentProgress = append(progress.ContentProgress, models.ContentProgress{ContentID: id, Completed: true})
				}
			}

			analysis := engine.AnalyzeModule(1, content, nil, progress)

			if analysis.CompletionRate != tc.expectedRate {
				t.Errorf("Expected completion rate %d, got %d", tc.expectedRate, analysis.CompletionRate)
			}
			if analysis.CompletionRate < 0 || analysis.CompletionRate > 100 {
				t.Errorf("Completion rate out of bounds: %d", analysis.CompletionRate)
			}
		})
	}
}

func TestAnalyzeModuleAverageScore(t *testing.T) {
	engine := NewEngine(nil)
	quizzes := moduleQuizzes("q1", "q2", "q3")

	progress := models.NewUserProgress("u1")
	progress.QuizResults = []models.QuizResult{
		{QuizID: "q1", Score: 55},
		{QuizID: "q2", Score: 90},
		// q3 unattempted; a result for another module's quiz must not count
		{QuizID: "other", Score: 10},
	}

	analysis := engine.AnalyzeModule(1, nil, quizzes, progress)

	if analysis.TotalQuizzes != 3 {
		t.Errorf("Expected 3 total quizzes, got %d", analysis.TotalQuizzes)
	}
	if analysis.CompletedQuizzes != 2 {
		t.Errorf("Expected 2 completed quizzes, got %d", analysis.CompletedQuizzes)
	}
	if analysis.AverageScore != 73 { // round((55+90)/2) = round(72.5)
		t.Errorf("Expected average score 73, got %d", analysis.AverageScore)
	}
	if len(analysis.StruggleAreas) != 1 || analysis.StruggleAreas[0] != "q1" {
		t.Errorf("Expected struggle areas [q1], got %v", analysis.StruggleAreas)
	}
	if len(analysis.StrengthAreas) != 1 || analysis.StrengthAreas[0] != "q2" {
		t.Errorf("Expected strength areas [q2], got %v", analysis.StrengthAreas)
	}
}

func TestRemediationAndAdvancedAreMutuallyExclusive(t *testing.T) {
	engine := NewEngine(nil)

	for score := 0; score <= 100; score += 5 {
		progress := models.NewUserProgress("u1")
		progress.QuizResults = []models.QuizResult{{QuizID: "q1", Score: score}}
		progress.ContentProgress = []models.ContentProgress{{ContentID: "c1", Completed: true}}

		content := contentItems(models.ContentItem{ID: "c1", ModuleID: 1})
		analysis := engine.AnalyzeModule(1, content, moduleQuizzes("q1"), progress)

		if analysis.NeedsRemediation && analysis.ReadyForAdvanced {
			t.Fatalf("Score %d: both remediation and advanced readiness set", score)
		}
	}
}

func TestReadyForAdvancedRequiresCompletion(t *testing.T) {
	engine := NewEngine(nil)

	content := contentItems(
		models.ContentItem{ID: "c1", ModuleID: 1},
		models.ContentItem{ID: "c2", ModuleID: 1},
		models.ContentItem{ID: "c3", ModuleID: 1},
		models.ContentItem{ID: "c4", ModuleID: 1},
		models.ContentItem{ID: "c5", ModuleID: 1},
	)

	progress := models.NewUserProgress("u1")
	progress.QuizResults = []models.QuizResult{{QuizID: "q1", Score: 95}}
	// 3 of 5 completed: below the 0.8 ratio
	for _, id := range []string{"c1", "c2", "c3"} {
		progress.ContentProgress = append(progress.ContentProgress, models.ContentProgress{ContentID: id, Completed: true})
	}

	analysis := engine.AnalyzeModule(1, content, moduleQuizzes("q1"), progress)
	if analysis.ReadyForAdvanced {
		t.Error("Expected not ready for advanced at 60% completion")
	}

	// 4 of 5 meets the ratio
	progress.ContentProgress = append(progress.ContentProgress, models.ContentProgress{ContentID: "c4", Completed: true})
	analysis = engine.AnalyzeModule(1, content, moduleQuizzes("q1"), progress)
	if !analysis.ReadyForAdvanced {
		t.Error("Expected ready for advanced at 80% completion with score 95")
	}
}

func TestQuizOnlyModule(t *testing.T) {
	engine := NewEngine(nil)

	progress := models.NewUserProgress("u1")
	progress.QuizResults = []models.QuizResult{{QuizID: "q1", Score: 40}}

	analysis := engine.AnalyzeModule(1, nil, moduleQuizzes("q1"), progress)

	if analysis.CompletionRate != 0 {
		t.Errorf("Expected completion rate 0 for module without content, got %d", analysis.CompletionRate)
	}
	if !analysis.NeedsRemediation {
		t.Error("Expected remediation from quiz score alone")
	}
}

func TestAnalyzeModuleNilProgress(t *testing.T) {
	engine := NewEngine(nil)
	analysis := engine.AnalyzeModule(1, contentItems(models.ContentItem{ID: "c1"}), moduleQuizzes("q1"), nil)

	if analysis.CompletedQuizzes != 0 || analysis.CompletedContent != 0 {
		t.Error("Expected zero completion without a progress record")
	}
	if analysis.ReadyForAdvanced {
		t.Error("Expected no advanced readiness without a progress record")
	}
}

func TestModuleProgressValue(t *testing.T) {
	engine := NewEngine(nil)

	testCases := []struct {
		name     string
		analysis ModuleAnalysis
		expected int
	}{
		{"nothing done", ModuleAnalysis{TotalContent: 4, TotalQuizzes: 2}, 0},
		{"all done", ModuleAnalysis{TotalContent: 4, CompletedContent: 4, TotalQuizzes: 2, CompletedQuizzes: 2}, 100},
		{"content only", ModuleAnalysis{TotalContent: 4, CompletedContent: 4, TotalQuizzes: 2}, 70},
		{"quizzes only", ModuleAnalysis{TotalContent: 4, TotalQuizzes: 2, CompletedQuizzes: 2}, 30},
		{"half and half", ModuleAnalysis{TotalContent: 4, CompletedContent: 2, TotalQuizzes: 2, CompletedQuizzes: 1}, 50},
		{"empty module", ModuleAnalysis{}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := engine.ModuleProgressValue(tc.analysis); got != tc.expected {
				t.Errorf("Expected progress %d, got %d", tc.expected, got)
			}
		})
	}
}
