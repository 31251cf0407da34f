package models

import "time"

type Option struct {
	ID        string `bson:"id" json:"id"`
	Text      string `bson:"text" json:"text"`
	IsCorrect bool   `bson:"is_correct" json:"is_correct,omitempty"`
}

type Question struct {
	ID      string   `bson:"id" json:"id"`
	Text    string   `bson:"text" json:"text"`
	Options []Option `bson:"options" json:"options"`
	Points  int      `bson:"points" json:"points"`
}

type Quiz struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	ModuleID  int        `bson:"module_id" json:"module_id"`
	Title     string     `bson:"title" json:"title"`
	Questions []Question `bson:"questions" json:"questions"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}

// Sanitized returns a copy safe to serve to learners: correctness flags
// are stripped from every option.
func (q Quiz) Sanitized() Quiz {
	out := q
	out.Questions = make([]Question, len(q.Questions))
	for i, question := range q.Questions {
		sq := question
		sq.Options = make([]Option, len(question.Options))
		for j, opt := range question.Options {
			sq.Options[j] = Option{ID: opt.ID, Text: opt.Text}
		}
		out.Questions[i] = sq
	}
	return out
}

// RankedQuiz is a sanitized quiz annotated by the quiz ranker.
type RankedQuiz struct {
	Quiz         `bson:",inline"`
	Recommended  bool   `json:"recommended"`
	Reason       string `json:"reason"`
	LastScore    *int   `json:"last_score"`
	ShouldRetake bool   `json:"should_retake"`
}
