package model

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Workout is a catalog entry, not tied to a specific user.
type Workout struct {
	ID          string     `json:"id"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty" validate:"required,oneof=Easy Medium Hard"`
	Duration    int        `json:"duration" validate:"required,gt=0"`
	Category    string     `json:"category" validate:"required"`
	Exercises   []Exercise `json:"exercises" validate:"dive"`
}

// Exercise is a free-form descriptor: name plus whichever of sets/reps/
// duration/distance the exercise uses. The field set differs per entry, so
// everything beyond the name is optional.
type Exercise struct {
	Name     string `json:"name" validate:"required"`
	Sets     *int   `json:"sets,omitempty"`
	Reps     *int   `json:"reps,omitempty"`
	Duration string `json:"duration,omitempty"`
	Distance string `json:"distance,omitempty"`
}
