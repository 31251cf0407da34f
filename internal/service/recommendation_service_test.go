package service

import (
	"strings"
	"testing"

	"athos-learning-service/internal/adaptive"
	"athos-learning-service/internal/models"
)

func rankedItem(id string, difficulty models.Difficulty) models.RankedContent {
	return models.RankedContent{ContentItem: models.ContentItem{ID: id, Difficulty: difficulty}}
}

func TestNextContentSkipsCompleted(t *testing.T) {
	ranked := []models.RankedContent{
		rankedItem("c1", models.DifficultyBasic),
		rankedItem("c2", models.DifficultyBasic),
		rankedItem("c3", models.DifficultyBasic),
		rankedItem("c4", models.DifficultyBasic),
	}
	progress := models.NewUserProgress("u1")
	progress.ContentProgress = []models.ContentProgress{
		{ContentID: "c1", Completed: true},
		{ContentID: "c3", Completed: true},
	}

	picked := nextContent(ranked, progress, 3)

	if len(picked) != 2 {
		t.Fatalf("Expected 2 picks, got %d", len(picked))
	}
	if picked[0].ID != "c2" || picked[1].ID != "c4" {
		t.Errorf("Expected [c2 c4], got [%s %s]", picked[0].ID, picked[1].ID)
	}
}

func TestNextContentHonorsLimit(t *testing.T) {
	ranked := []models.RankedContent{
		rankedItem("c1", models.DifficultyBasic),
		rankedItem("c2", models.DifficultyBasic),
		rankedItem("c3", models.DifficultyBasic),
	}
	picked := nextContent(ranked, models.NewUserProgress("u1"), 2)
	if len(picked) != 2 {
		t.Errorf("Expected limit of 2, got %d", len(picked))
	}
}

func TestFilterByDifficulty(t *testing.T) {
	ranked := []models.RankedContent{
		rankedItem("b1", models.DifficultyBasic),
		rankedItem("a1", models.DifficultyAdvanced),
		rankedItem("b2", models.DifficultyBasic),
		rankedItem("a2", models.DifficultyAdvanced),
	}

	basics := filterByDifficulty(ranked, models.DifficultyBasic, 5)
	if len(basics) != 2 || basics[0].ID != "b1" || basics[1].ID != "b2" {
		t.Errorf("Expected [b1 b2], got %v", basics)
	}

	advanced := filterByDifficulty(ranked, models.DifficultyAdvanced, 1)
	if len(advanced) != 1 || advanced[0].ID != "a1" {
		t.Errorf("Expected [a1], got %v", advanced)
	}
}

func TestPathStep(t *testing.T) {
	testCases := []struct {
		name     string
		analysis adaptive.ModuleAnalysis
		contains string
	}{
		{"remediation with attempts", adaptive.ModuleAnalysis{NeedsRemediation: true, CompletedQuizzes: 2, AverageScore: 45}, "Revisit the basics"},
		{"fresh module continues", adaptive.ModuleAnalysis{NeedsRemediation: true, CompletionRate: 0}, "Continue exploring"},
		{"partially complete", adaptive.ModuleAnalysis{AverageScore: 70, CompletedQuizzes: 1, CompletionRate: 40}, "Continue exploring"},
		{"complete and ready", adaptive.ModuleAnalysis{AverageScore: 90, CompletedQuizzes: 1, CompletionRate: 100, ReadyForAdvanced: true}, "advanced material"},
		{"complete steady state", adaptive.ModuleAnalysis{AverageScore: 75, CompletedQuizzes: 1, CompletionRate: 100}, "Review and consolidate"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			step := pathStep(models.ModuleHistory, tc.analysis)
			if !strings.Contains(step, tc.contains) {
				t.Errorf("Expected step to contain %q, got %q", tc.contains, step)
			}
			if !strings.Contains(step, models.ModuleTitles[models.ModuleHistory]) {
				t.Errorf("Expected step to name the module, got %q", step)
			}
		})
	}
}
