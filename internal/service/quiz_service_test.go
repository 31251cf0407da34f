package service

import (
	"testing"

	"athos-learning-service/internal/models"
)

func gradingQuiz() *models.Quiz {
	return &models.Quiz{
		ID:       "quiz-1",
		ModuleID: 1,
		Questions: []models.Question{
			{ID: "q1", Options: []models.Option{
				{ID: "a", IsCorrect: true},
				{ID: "b"},
			}},
			{ID: "q2", Options: []models.Option{
				{ID: "a"},
				{ID: "b", IsCorrect: true},
			}},
			{ID: "q3", Options: []models.Option{
				{ID: "a"},
				{ID: "b"},
				{ID: "c", IsCorrect: true},
			}},
		},
	}
}

func TestGrade(t *testing.T) {
	s := NewQuizService(nil, nil)

	testCases := []struct {
		name          string
		submitted     map[string]string
		expectedScore int
		correct       map[string]bool
	}{
		{
			"all correct",
			map[string]string{"q1": "a", "q2": "b", "q3": "c"},
			100,
			map[string]bool{"q1": true, "q2": true, "q3": true},
		},
		{
			"one of three",
			map[string]string{"q1": "a", "q2": "a", "q3": "a"},
			33,
			map[string]bool{"q1": true, "q2": false, "q3": false},
		},
		{
			"two of three",
			map[string]string{"q1": "a", "q2": "b", "q3": "b"},
			67,
			map[string]bool{"q1": true, "q2": true, "q3": false},
		},
		{
			"missing answers count as wrong",
			map[string]string{"q1": "a"},
			33,
			map[string]bool{"q1": true, "q2": false, "q3": false},
		},
		{
			"all wrong",
			map[string]string{"q1": "b", "q2": "a", "q3": "b"},
			0,
			map[string]bool{"q1": false, "q2": false, "q3": false},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score, answers, err := s.Grade(gradingQuiz(), tc.submitted)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if score != tc.expectedScore {
				t.Errorf("Expected score %d, got %d", tc.expectedScore, score)
			}
			if len(answers) != 3 {
				t.Fatalf("Expected 3 graded answers, got %d", len(answers))
			}
			for _, answer := range answers {
				if answer.Correct != tc.correct[answer.QuestionID] {
					t.Errorf("Question %s: expected correct=%v, got %v", answer.QuestionID, tc.correct[answer.QuestionID], answer.Correct)
				}
			}
		})
	}
}

func TestGradeEmptyQuiz(t *testing.T) {
	s := NewQuizService(nil, nil)
	if _, _, err := s.Grade(&models.Quiz{ID: "empty"}, nil); err == nil {
		t.Error("Expected an error grading a quiz without questions")
	}
}
