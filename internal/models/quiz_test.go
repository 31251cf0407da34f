package models

import "testing"

func TestQuizSanitized(t *testing.T) {
	quiz := Quiz{
		ID: "q1",
		Questions: []Question{
			{ID: "ques1", Text: "Who founded Great Lavra?", Options: []Option{
				{ID: "a", Text: "Athanasius", IsCorrect: true},
				{ID: "b", Text: "Nikephoros"},
			}},
		},
	}

	sanitized := quiz.Sanitized()

	for _, question := range sanitized.Questions {
		for _, opt := range question.Options {
			if opt.IsCorrect {
				t.Fatalf("Option %s kept its correctness flag", opt.ID)
			}
			if opt.Text == "" || opt.ID == "" {
				t.Errorf("Option lost its id or text: %+v", opt)
			}
		}
	}

	// The original must be untouched.
	if !quiz.Questions[0].Options[0].IsCorrect {
		t.Error("Sanitized mutated the source quiz")
	}
}
