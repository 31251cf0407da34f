package adaptive

import (
	"math"

	"athos-learning-service/internal/models"
)

// BuildPriorityTable merges the user's stated learning style with the
// behavior-derived preference into per-type priority scores. The stated
// style dominates; derived signals only nudge, so short-term behavior can
// refine but never override an explicit choice. Steps apply in a fixed
// order so the same inputs always produce the same table.
func (e *Engine) BuildPriorityTable(style models.LearningStyle, prefs *models.DerivedPreferences) PriorityTable {
	priority := PriorityTable{}
	for contentType, base := range e.config.BasePriority {
		priority[contentType] = base
	}

	switch style {
	case models.StyleVisual:
		priority[models.ContentImage] += e.config.StyleBoost
		priority[models.ContentVideo] += e.config.StyleBoost
	case models.StyleTextual:
		priority[models.ContentText] += e.config.StyleBoost
		priority[models.ContentImage] += e.config.SecondaryBoost
		priority[models.ContentVideo] += e.config.SecondaryBoost
	}

	if prefs == nil {
		return priority
	}

	derived := prefs.PreferredContentType
	if derived != "" && !styleMatchesType(style, derived) {
		priority[derived] += e.config.DerivedBoost
	}

	for contentType, score := range prefs.EngagementScores {
		priority[contentType] += int(math.Round(score / 2))
	}

	return priority
}

// styleMatchesType reports whether a derived content type restates the
// explicit style rather than adding new signal.
func styleMatchesType(style models.LearningStyle, contentType models.ContentType) bool {
	switch style {
	case models.StyleVisual:
		return contentType == models.ContentImage || contentType == models.ContentVideo
	case models.StyleTextual:
		return contentType == models.ContentText
	}
	return false
}
