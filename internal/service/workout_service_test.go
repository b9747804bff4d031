package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/octofit-labs/octofit-backend/internal/model"
	"github.com/octofit-labs/octofit-backend/internal/repository"
)

func TestWorkoutService_ExerciseRoundTrip(t *testing.T) {
	exercises := []model.Exercise{
		{Name: "Sprint Intervals", Duration: "20 minutes"},
		{Name: "Burpees", Sets: iptr(3), Reps: iptr(20)},
		{Name: "Freestyle", Distance: "1000m"},
		{Name: "Plank", Duration: "3 minutes"},
	}

	var stored *repository.Workout
	mockRepo := new(MockWorkoutRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*repository.Workout)
	}).Return(nil)

	service := NewWorkoutService(new(MockTransactor)).WithWorkoutRepo(mockRepo)

	created, err := service.CreateWorkout(context.Background(), &model.Workout{
		Name:       "Speed Force Cardio",
		Difficulty: model.DifficultyMedium,
		Duration:   45,
		Category:   "Cardio",
		Exercises:  exercises,
	})
	require.Nil(t, err)
	require.NotNil(t, stored)

	// Read back through the stored JSON and check the descriptor list keeps
	// its exact count and order.
	mockRepo.On("Get", mock.Anything, created.ID).Return(stored, nil)

	got, err := service.GetWorkout(context.Background(), created.ID)
	require.Nil(t, err)

	require.Len(t, got.Exercises, len(exercises))
	for i, want := range exercises {
		assert.Equal(t, want.Name, got.Exercises[i].Name)
		assert.Equal(t, want.Duration, got.Exercises[i].Duration)
		assert.Equal(t, want.Distance, got.Exercises[i].Distance)
		if want.Sets != nil {
			require.NotNil(t, got.Exercises[i].Sets)
			assert.Equal(t, *want.Sets, *got.Exercises[i].Sets)
		} else {
			assert.Nil(t, got.Exercises[i].Sets)
		}
	}

	mockRepo.AssertExpectations(t)
}

func TestWorkoutService_GetWorkout_NotFound(t *testing.T) {
	mockRepo := new(MockWorkoutRepository)
	mockRepo.On("Get", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	service := NewWorkoutService(new(MockTransactor)).WithWorkoutRepo(mockRepo)

	got, err := service.GetWorkout(context.Background(), "missing")
	assert.Error(t, err)
	assert.Equal(t, ErrorCodeNotFound, err.Code)
	assert.Nil(t, got)
	mockRepo.AssertExpectations(t)
}

func TestWorkoutService_CreateWorkout_EmptyExerciseList(t *testing.T) {
	mockRepo := new(MockWorkoutRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(rec *repository.Workout) bool {
		return string(rec.Exercises) == "[]"
	})).Return(nil)

	service := NewWorkoutService(new(MockTransactor)).WithWorkoutRepo(mockRepo)

	got, err := service.CreateWorkout(context.Background(), &model.Workout{
		Name:       "Rest Day",
		Difficulty: model.DifficultyEasy,
		Duration:   10,
		Category:   "Recovery",
	})
	require.Nil(t, err)
	assert.Empty(t, got.Exercises)
	mockRepo.AssertExpectations(t)
}
