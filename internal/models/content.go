package models

import "time"

type ContentType string

const (
	ContentText  ContentType = "text"
	ContentImage ContentType = "image"
	ContentVideo ContentType = "video"
)

type Difficulty string

const (
	DifficultyBasic    Difficulty = "basic"
	DifficultyAdvanced Difficulty = "advanced"
)

// Module ids are fixed: 1 history, 2 monasteries and architecture,
// 3 geography and environment.
const (
	ModuleHistory      = 1
	ModuleArchitecture = 2
	ModuleGeography    = 3
)

var ModuleIDs = []int{ModuleHistory, ModuleArchitecture, ModuleGeography}

var ModuleTitles = map[int]string{
	ModuleHistory:      "History of Mount Athos",
	ModuleArchitecture: "Monasteries and Architecture",
	ModuleGeography:    "Geography and Environment",
}

type ContentItem struct {
	ID         string      `bson:"_id,omitempty" json:"id"`
	ModuleID   int         `bson:"module_id" json:"module_id"`
	Title      string      `bson:"title" json:"title"`
	Type       ContentType `bson:"type" json:"type"`
	Difficulty Difficulty  `bson:"difficulty" json:"difficulty"`
	Body       string      `bson:"body" json:"body"`
	MediaURL   string      `bson:"media_url,omitempty" json:"media_url,omitempty"`
	Order      int         `bson:"order" json:"order"`
	CreatedAt  time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time   `bson:"updated_at" json:"updated_at"`
}

// RankedContent is a content item annotated by the content ranker.
type RankedContent struct {
	ContentItem      `bson:",inline"`
	AdaptiveMetadata AdaptiveMetadata `json:"adaptive_metadata"`
}

// AdaptiveMetadata explains why an item is placed where it is.
type AdaptiveMetadata struct {
	Recommended        bool   `json:"recommended"`
	Reason             string `json:"reason"`
	Priority           string `json:"priority"` // low, medium, high
	LearningStyleMatch int    `json:"learning_style_match"`
	VisualLearnerBoost bool   `json:"visual_learner_boost"`
	BehaviorMatch      bool   `json:"behavior_match"`
}
