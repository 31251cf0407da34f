package adaptive

import (
	"math"
	"testing"
	"time"

	"athos-learning-service/internal/models"
)

func event(actionType models.ActionType, contentType models.ContentType, timeSpent float64, interactions int) models.BehaviorEvent {
	return models.BehaviorEvent{
		ActionType:   actionType,
		TimeSpent:    timeSpent,
		Interactions: interactions,
		Metadata:     models.BehaviorMetadata{ContentType: contentType},
	}
}

func TestDeriveFromBehaviorEmptyWindow(t *testing.T) {
	engine := NewEngine(nil)

	if _, ok := engine.DeriveFromBehavior(nil, time.Now()); ok {
		t.Error("Expected no derivation from an empty history")
	}
	if _, ok := engine.DeriveFromBehavior([]models.BehaviorEvent{}, time.Now()); ok {
		t.Error("Expected no derivation from an empty slice")
	}
}

func TestDeriveFromBehaviorIsIdempotent(t *testing.T) {
	engine := NewEngine(nil)
	now := time.Now()

	events := []models.BehaviorEvent{
		event(models.ActionView, models.ContentVideo, 200, 8),
		event(models.ActionComplete, models.ContentText, 100, 2),
		event(models.ActionView, models.ContentVideo, 180, 6),
	}

	first, ok1 := engine.DeriveFromBehavior(events, now)
	second, ok2 := engine.DeriveFromBehavior(events, now)

	if !ok1 || !ok2 {
		t.Fatal("Expected derivation to succeed")
	}
	if first.PreferredContentType != second.PreferredContentType ||
		first.AverageTimePerContent != second.AverageTimePerContent ||
		first.LearningPace != second.LearningPace ||
		first.DifficultyPreference != second.DifficultyPreference {
		t.Errorf("Repeated derivation differs: %+v vs %+v", first, second)
	}
	for contentType, score := range first.EngagementScores {
		if second.EngagementScores[contentType] != score {
			t.Errorf("Engagement score for %s differs: %f vs %f", contentType, score, second.EngagementScores[contentType])
		}
	}
}

func TestEngagementScoreFormula(t *testing.T) {
	engine := NewEngine(nil)

	// One event type: avgInteractions=10, avgTime=150
	// 0.4*10 + 0.6*(150/100) = 4.9
	events := []models.BehaviorEvent{event(models.ActionView, models.ContentVideo, 150, 10)}
	prefs, ok := engine.DeriveFromBehavior(events, time.Now())
	if !ok {
		t.Fatal("Expected derivation to succeed")
	}

	score := prefs.EngagementScores[models.ContentVideo]
	if math.Abs(score-4.9) > 0.0001 {
		t.Errorf("Expected engagement score 4.9, got %f", score)
	}
	if prefs.PreferredContentType != models.ContentVideo {
		t.Errorf("Expected preferred type video, got %s", prefs.PreferredContentType)
	}
}

func TestMissingContentTypeDefaultsToText(t *testing.T) {
	engine := NewEngine(nil)

	events := []models.BehaviorEvent{
		{ActionType: models.ActionView, TimeSpent: 120, Interactions: 4},
	}
	prefs, ok := engine.DeriveFromBehavior(events, time.Now())
	if !ok {
		t.Fatal("Expected derivation to succeed")
	}
	if _, exists := prefs.EngagementScores[models.ContentText]; !exists {
		t.Error("Expected events without a content type grouped under text")
	}
	if prefs.PreferredContentType != models.ContentText {
		t.Errorf("Expected preferred type text, got %s", prefs.PreferredContentType)
	}
}

func TestLearningPaceThresholds(t *testing.T) {
	engine := NewEngine(nil)

	testCases := []struct {
		name     string
		avgTime  float64
		expected models.LearningPace
	}{
		{"fast under 90s", 60, models.PaceFast},
		{"boundary 90s is medium", 90, models.PaceMedium},
		{"medium", 150, models.PaceMedium},
		{"boundary 240s is medium", 240, models.PaceMedium},
		{"slow over 240s", 300, models.PaceSlow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			events := []models.BehaviorEvent{event(models.ActionView, models.ContentText, tc.avgTime, 1)}
			prefs, _ := engine.DeriveFromBehavior(events, time.Now())
			if prefs.LearningPace != tc.expected {
				t.Errorf("Avg time %.0fs: expected pace %s, got %s", tc.avgTime, tc.expected, prefs.LearningPace)
			}
		})
	}
}

func TestDifficultyPreference(t *testing.T) {
	engine := NewEngine(nil)

	t.Run("frequent struggles prefer basic", func(t *testing.T) {
		// 4 struggles in 10 events: 4 > 0.3*10
		var events []models.BehaviorEvent
		for i := 0; i < 4; i++ {
			events = append(events, event(models.ActionStruggle, models.ContentText, 100, 1))
		}
		for i := 0; i < 6; i++ {
			events = append(events, event(models.ActionView, models.ContentText, 100, 1))
		}
		prefs, _ := engine.DeriveFromBehavior(events, time.Now())
		if prefs.DifficultyPreference != models.PreferBasic {
			t.Errorf("Expected basic preference, got %s", prefs.DifficultyPreference)
		}
	})

	t.Run("engaged steady reader prefers advanced", func(t *testing.T) {
		// No quick exits, avg time 200 > 150
		var events []models.BehaviorEvent
		for i := 0; i < 10; i++ {
			events = append(events, event(models.ActionDeepEngagement, models.ContentText, 200, 3))
		}
		prefs, _ := engine.DeriveFromBehavior(events, time.Now())
		if prefs.DifficultyPreference != models.PreferAdvanced {
			t.Errorf("Expected advanced preference, got %s", prefs.DifficultyPreference)
		}
	})

	t.Run("quick exits keep it mixed", func(t *testing.T) {
		// 2 quick exits in 10 events: not < 0.1*10
		var events []models.BehaviorEvent
		for i := 0; i < 2; i++ {
			events = append(events, event(models.ActionQuickExit, models.ContentText, 200, 1))
		}
		for i := 0; i < 8; i++ {
			events = append(events, event(models.ActionView, models.ContentText, 200, 1))
		}
		prefs, _ := engine.DeriveFromBehavior(events, time.Now())
		if prefs.DifficultyPreference != models.PreferMixed {
			t.Errorf("Expected mixed preference, got %s", prefs.DifficultyPreference)
		}
	})
}

func TestWindowIsLastTwenty(t *testing.T) {
	engine := NewEngine(nil)

	// 30 events: 10 old video events followed by 20 text events. Only the
	// last 20 may count, so video must not appear at all.
	var events []models.BehaviorEvent
	for i := 0; i < 10; i++ {
		events = append(events, event(models.ActionView, models.ContentVideo, 500, 20))
	}
	for i := 0; i < 20; i++ {
		events = append(events, event(models.ActionView, models.ContentText, 100, 2))
	}

	prefs, _ := engine.DeriveFromBehavior(events, time.Now())

	if _, exists := prefs.EngagementScores[models.ContentVideo]; exists {
		t.Error("Events outside the 20-event window leaked into the analysis")
	}
	if prefs.AverageTimePerContent != 100 {
		t.Errorf("Expected window average 100s, got %f", prefs.AverageTimePerContent)
	}
}

func TestPreferredTypeTieKeepsFirstSeen(t *testing.T) {
	engine := NewEngine(nil)

	events := []models.BehaviorEvent{
		event(models.ActionView, models.ContentImage, 100, 5),
		event(models.ActionView, models.ContentVideo, 100, 5),
	}
	prefs, _ := engine.DeriveFromBehavior(events, time.Now())

	if prefs.PreferredContentType != models.ContentImage {
		t.Errorf("Expected first-seen type to win a tie, got %s", prefs.PreferredContentType)
	}
}

func TestShouldRecompute(t *testing.T) {
	engine := NewEngine(nil)

	testCases := []struct {
		count    int
		expected bool
	}{
		{0, false},
		{1, false},
		{4, false},
		{5, true},
		{10, true},
		{12, false},
		{20, true},
	}

	for _, tc := range testCases {
		if got := engine.ShouldRecompute(tc.count); got != tc.expected {
			t.Errorf("Count %d: expected %v, got %v", tc.count, tc.expected, got)
		}
	}
}
