package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJSON_NeverExposesPassword(t *testing.T) {
	teamID := "team-1"
	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	raw, err := json.Marshal(&User{
		ID:        "user-1",
		Email:     "ironman@avengers.com",
		Username:  "Iron Man",
		Password:  "stark123",
		TeamID:    &teamID,
		CreatedAt: &createdAt,
	})
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "stark123")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "ironman@avengers.com", decoded["email"])
	assert.Equal(t, "team-1", decoded["team_id"])
}
