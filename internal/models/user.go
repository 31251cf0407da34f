package models

import "time"

type LearningStyle string

const (
	StyleVisual  LearningStyle = "visual"
	StyleTextual LearningStyle = "textual"
)

// User is owned by the auth subsystem; this service only reads it for
// the explicit learning-style preference.
type User struct {
	ID            string        `bson:"_id,omitempty" json:"id"`
	Username      string        `bson:"username" json:"username"`
	Email         string        `bson:"email" json:"email"`
	LearningStyle LearningStyle `bson:"learning_style" json:"learning_style"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
}
