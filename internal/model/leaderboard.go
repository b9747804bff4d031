package model

import "time"

// LeaderboardEntry is derived data: one row per team, recomputed wholesale by
// the seed routine rather than maintained incrementally.
type LeaderboardEntry struct {
	ID          string     `json:"id"`
	TeamID      string     `json:"team_id" validate:"required"`
	TotalPoints int        `json:"total_points"`
	Rank        int        `json:"rank" validate:"required,gt=0"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
