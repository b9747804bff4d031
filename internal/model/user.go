package model

import "time"

// User is the API shape of a tracked user. Password is accepted on write but
// never serialized back.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email" validate:"required,email"`
	Username  string     `json:"username" validate:"required"`
	Password  string     `json:"-"`
	TeamID    *string    `json:"team_id"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
