package model

import "time"

// Activity is one logged session. UserID is a loose reference: it carries the
// owning user's id as plain text, with no cascade behavior on delete.
type Activity struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id" validate:"required"`
	ActivityType   string    `json:"activity_type" validate:"required"`
	Duration       int       `json:"duration" validate:"required,gt=0"`
	Distance       *float64  `json:"distance"`
	CaloriesBurned int       `json:"calories_burned"`
	Date           time.Time `json:"date" validate:"required"`
	Notes          string    `json:"notes"`
}
