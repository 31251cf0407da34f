package adaptive

import "athos-learning-service/internal/models"

// ModuleAnalysis summarizes one user's mastery of one module. A zero value
// means "no signal" and is what callers get when the underlying lookups
// fail: recommendations degrade, they never error.
type ModuleAnalysis struct {
	ModuleID          int      `json:"module_id"`
	TotalQuizzes      int      `json:"total_quizzes"`
	CompletedQuizzes  int      `json:"completed_quizzes"`
	AverageScore      int      `json:"average_score"`
	TotalContent      int      `json:"total_content"`
	CompletedContent  int      `json:"completed_content"`
	CompletionRate    int      `json:"completion_rate"`
	StruggleAreas     []string `json:"struggle_areas"`
	StrengthAreas     []string `json:"strength_areas"`
	AvgTimePerContent float64  `json:"avg_time_per_content"`
	NeedsRemediation  bool     `json:"needs_remediation"`
	ReadyForAdvanced  bool     `json:"ready_for_advanced"`
}

// PriorityTable maps a content type to its computed priority score.
type PriorityTable map[models.ContentType]int

// Config carries every scoring threshold as a named, tunable value. The
// numbers match the behavior the product was tuned with; none of them is a
// load-bearing invariant.
type Config struct {
	// Performance classification
	RemediationScore        int     // average below this needs remediation
	StrengthScore           int     // average above this marks strength
	AdvancedCompletionRatio float64 // completed/total needed for advanced readiness
	RetakeScore             int     // quiz score below this suggests a retake

	// Preference synthesis
	BasePriority   PriorityTable
	StyleBoost     int // explicit learning style
	SecondaryBoost int // non-matching types under a textual style
	DerivedBoost   int // behavior-derived type differing from the stated style

	// Content priority buckets
	HighPriorityScore   int
	MediumPriorityScore int

	// Behavior analysis
	BehaviorWindow      int
	LearnerTriggerEvery int
	InteractionWeight   float64
	TimeWeight          float64
	TimeScale           float64 // seconds of engagement worth one interaction-weight unit
	FastPaceSeconds     float64
	SlowPaceSeconds     float64
	StruggleRatio       float64
	QuickExitRatio      float64
	AdvancedMinAvgTime  float64

	// Module progress weighting
	ContentWeight float64
	QuizWeight    float64
}

func DefaultConfig() *Config {
	return &Config{
		RemediationScore:        60,
		StrengthScore:           85,
		AdvancedCompletionRatio: 0.8,
		RetakeScore:             70,

		BasePriority: PriorityTable{
			models.ContentText:  1,
			models.ContentImage: 2,
			models.ContentVideo: 3,
		},
		StyleBoost:     3,
		SecondaryBoost: 1,
		DerivedBoost:   2,

		HighPriorityScore:   5,
		MediumPriorityScore: 3,

		BehaviorWindow:      20,
		LearnerTriggerEvery: 5,
		InteractionWeight:   0.4,
		TimeWeight:          0.6,
		TimeScale:           100,
		FastPaceSeconds:     90,
		SlowPaceSeconds:     240,
		StruggleRatio:       0.3,
		QuickExitRatio:      0.1,
		AdvancedMinAvgTime:  150,

		ContentWeight: 0.7,
		QuizWeight:    0.3,
	}
}

// Engine implements the recommendation scoring over in-memory data. All
// methods are pure; store access and error absorption live with the caller.
type Engine struct {
	config *Config
}

func NewEngine(config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	return &Engine{config: config}
}

func (e *Engine) Config() *Config {
	return e.config
}
