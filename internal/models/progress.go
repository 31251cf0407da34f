package models

import "time"

type ActionType string

const (
	ActionView           ActionType = "view"
	ActionComplete       ActionType = "complete"
	ActionStruggle       ActionType = "struggle"
	ActionQuickExit      ActionType = "quick_exit"
	ActionDeepEngagement ActionType = "deep_engagement"
	ActionQuizAttempt    ActionType = "quiz_attempt"
	ActionNavigation     ActionType = "navigation"
)

type LearningPace string

const (
	PaceSlow   LearningPace = "slow"
	PaceMedium LearningPace = "medium"
	PaceFast   LearningPace = "fast"
)

type DifficultyPreference string

const (
	PreferBasic    DifficultyPreference = "basic"
	PreferMixed    DifficultyPreference = "mixed"
	PreferAdvanced DifficultyPreference = "advanced"
)

// BehaviorMetadata is the free-form payload attached to a behavior event
// by the client-side tracker.
type BehaviorMetadata struct {
	ContentType      ContentType `bson:"content_type,omitempty" json:"content_type,omitempty"`
	ScrollPercentage float64     `bson:"scroll_percentage,omitempty" json:"scroll_percentage,omitempty"`
	ClickCount       int         `bson:"click_count,omitempty" json:"click_count,omitempty"`
	PauseTime        float64     `bson:"pause_time,omitempty" json:"pause_time,omitempty"`
	ExitReason       string      `bson:"exit_reason,omitempty" json:"exit_reason,omitempty"`
	Timestamp        time.Time   `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
}

// BehaviorEvent is append-only; events are never mutated or deleted and
// are only ever read in rolling windows.
type BehaviorEvent struct {
	ContentID    string           `bson:"content_id,omitempty" json:"content_id,omitempty"`
	ActionType   ActionType       `bson:"action_type" json:"action_type"`
	TimeSpent    float64          `bson:"time_spent" json:"time_spent"` // seconds
	Interactions int              `bson:"interactions" json:"interactions"`
	Difficulty   Difficulty       `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	Metadata     BehaviorMetadata `bson:"metadata" json:"metadata"`
	RecordedAt   time.Time        `bson:"recorded_at" json:"recorded_at"`
}

// ContentProgress is unique per (user, content); cumulative counters are
// upserted on every completion or time-spent report.
type ContentProgress struct {
	ContentID    string    `bson:"content_id" json:"content_id"`
	Completed    bool      `bson:"completed" json:"completed"`
	LastAccessed time.Time `bson:"last_accessed" json:"last_accessed"`
	TimeSpent    float64   `bson:"time_spent" json:"time_spent"`
	Interactions int       `bson:"interactions" json:"interactions"`
}

// QuizResult keeps only the latest attempt per quiz; a new submission
// replaces the previous one and bumps the attempt counter.
type QuizResult struct {
	QuizID    string    `bson:"quiz_id" json:"quiz_id"`
	Score     int       `bson:"score" json:"score"` // 0..100
	Answers   []Answer  `bson:"answers" json:"answers"`
	Attempts  int       `bson:"attempts" json:"attempts"`
	DateTaken time.Time `bson:"date_taken" json:"date_taken"`
}

type Answer struct {
	QuestionID string `bson:"question_id" json:"question_id"`
	OptionID   string `bson:"option_id" json:"option_id"`
	Correct    bool   `bson:"correct" json:"correct"`
}

type ModuleProgressEntry struct {
	ModuleID    int       `bson:"module_id" json:"module_id"`
	Progress    int       `bson:"progress" json:"progress"` // 0..100, always recomputed
	LastUpdated time.Time `bson:"last_updated" json:"last_updated"`
}

// DerivedPreferences is recomputed wholesale by the preference learner
// and swapped in as one value, never patched field by field.
type DerivedPreferences struct {
	PreferredContentType  ContentType             `bson:"preferred_content_type" json:"preferred_content_type"`
	AverageTimePerContent float64                 `bson:"average_time_per_content" json:"average_time_per_content"`
	LearningPace          LearningPace            `bson:"learning_pace" json:"learning_pace"`
	DifficultyPreference  DifficultyPreference    `bson:"difficulty_preference" json:"difficulty_preference"`
	EngagementScores      map[ContentType]float64 `bson:"engagement_scores" json:"engagement_scores"`
	LastAnalysisDate      time.Time               `bson:"last_analysis_date" json:"last_analysis_date"`
}

// UserProgress is the single per-user adaptive-state document. Exactly one
// exists per user, created lazily on first access.
type UserProgress struct {
	ID                 string                `bson:"_id,omitempty" json:"id"`
	UserID             string                `bson:"user_id" json:"user_id"`
	ModuleProgress     []ModuleProgressEntry `bson:"module_progress" json:"module_progress"`
	ContentProgress    []ContentProgress     `bson:"content_progress" json:"content_progress"`
	QuizResults        []QuizResult          `bson:"quiz_results" json:"quiz_results"`
	BehaviorData       []BehaviorEvent       `bson:"behavior_data" json:"behavior_data"`
	DerivedPreferences *DerivedPreferences   `bson:"derived_preferences,omitempty" json:"derived_preferences,omitempty"`
	UpdatedAt          time.Time             `bson:"updated_at" json:"updated_at"`
}

// NewUserProgress builds the lazily-created default document with zeroed
// entries for the three fixed modules.
func NewUserProgress(userID string) *UserProgress {
	now := time.Now()
	entries := make([]ModuleProgressEntry, 0, len(ModuleIDs))
	for _, id := range ModuleIDs {
		entries = append(entries, ModuleProgressEntry{ModuleID: id, Progress: 0, LastUpdated: now})
	}
	return &UserProgress{
		UserID:          userID,
		ModuleProgress:  entries,
		ContentProgress: []ContentProgress{},
		QuizResults:     []QuizResult{},
		BehaviorData:    []BehaviorEvent{},
		UpdatedAt:       now,
	}
}

// FindQuizResult returns the stored result for a quiz id, nil if the user
// has not attempted it.
func (p *UserProgress) FindQuizResult(quizID string) *QuizResult {
	for i := range p.QuizResults {
		if p.QuizResults[i].QuizID == quizID {
			return &p.QuizResults[i]
		}
	}
	return nil
}

// FindContentProgress returns the record for a content id, nil if none.
func (p *UserProgress) FindContentProgress(contentID string) *ContentProgress {
	for i := range p.ContentProgress {
		if p.ContentProgress[i].ContentID == contentID {
			return &p.ContentProgress[i]
		}
	}
	return nil
}

// ModuleEntry returns the progress entry for a module id, nil if none.
func (p *UserProgress) ModuleEntry(moduleID int) *ModuleProgressEntry {
	for i := range p.ModuleProgress {
		if p.ModuleProgress[i].ModuleID == moduleID {
			return &p.ModuleProgress[i]
		}
	}
	return nil
}
