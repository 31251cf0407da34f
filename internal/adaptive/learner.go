package adaptive

import (
	"time"

	"athos-learning-service/internal/models"
)

// DeriveFromBehavior recomputes the full derived-preference value from a
// rolling window of behavior events. Returns false on an empty history, in
// which case any previously stored preferences must be left untouched.
// Running it twice over the same window yields the same result except for
// the analysis timestamp, so redundant triggers are harmless.
func (e *Engine) DeriveFromBehavior(events []models.BehaviorEvent, now time.Time) (models.DerivedPreferences, bool) {
	if len(events) == 0 {
		return models.DerivedPreferences{}, false
	}

	window := events
	if len(window) > e.config.BehaviorWindow {
		window = window[len(window)-e.config.BehaviorWindow:]
	}

	type typeStats struct {
		count        int
		timeSpent    float64
		interactions int
	}
	stats := map[models.ContentType]*typeStats{}
	var typeOrder []models.ContentType

	totalTime := 0.0
	struggles := 0
	quickExits := 0

	for _, event := range window {
		contentType := event.Metadata.ContentType
		if contentType == "" {
			contentType = models.ContentText
		}
		entry, ok := stats[contentType]
		if !ok {
			entry = &typeStats{}
			stats[contentType] = entry
			typeOrder = append(typeOrder, contentType)
		}
		entry.count++
		entry.timeSpent += event.TimeSpent
		entry.interactions += event.Interactions

		totalTime += event.TimeSpent
		switch event.ActionType {
		case models.ActionStruggle:
			struggles++
		case models.ActionQuickExit:
			quickExits++
		}
	}

	engagement := map[models.ContentType]float64{}
	preferred := models.ContentText
	best := -1.0
	for _, contentType := range typeOrder {
		entry := stats[contentType]
		avgInteractions := float64(entry.interactions) / float64(entry.count)
		avgTime := entry.timeSpent / float64(entry.count)
		score := e.config.InteractionWeight*avgInteractions + e.config.TimeWeight*(avgTime/e.config.TimeScale)
		engagement[contentType] = score
		if score > best {
			best = score
			preferred = contentType
		}
	}

	windowSize := float64(len(window))
	avgTime := totalTime / windowSize

	pace := models.PaceMedium
	if avgTime < e.config.FastPaceSeconds {
		pace = models.PaceFast
	} else if avgTime > e.config.SlowPaceSeconds {
		pace = models.PaceSlow
	}

	difficulty := models.PreferMixed
	if float64(struggles) > e.config.StruggleRatio*windowSize {
		difficulty = models.PreferBasic
	} else if float64(quickExits) < e.config.QuickExitRatio*windowSize && avgTime > e.config.AdvancedMinAvgTime {
		difficulty = models.PreferAdvanced
	}

	return models.DerivedPreferences{
		PreferredContentType:  preferred,
		AverageTimePerContent: avgTime,
		LearningPace:          pace,
		DifficultyPreference:  difficulty,
		EngagementScores:      engagement,
		LastAnalysisDate:      now,
	}, true
}

// ShouldRecompute is the learner trigger: fire after every Nth appended
// behavior event.
func (e *Engine) ShouldRecompute(eventCount int) bool {
	return eventCount > 0 && eventCount%e.config.LearnerTriggerEvery == 0
}
