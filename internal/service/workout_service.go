package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/octofit-labs/octofit-backend/internal/db"
	"github.com/octofit-labs/octofit-backend/internal/model"
	"github.com/octofit-labs/octofit-backend/internal/repository"
	"github.com/octofit-labs/octofit-backend/pkg/logger"
)

type WorkoutService struct {
	tx db.Transactor

	workouts repository.WorkoutRepository
}

func NewWorkoutService(tx db.Transactor) *WorkoutService {
	return &WorkoutService{tx: tx}
}

func (w *WorkoutService) CreateWorkout(ctx context.Context, workout *model.Workout) (*model.Workout, *Error) {
	l := logger.FromContext(ctx)

	rec, err := workoutFromModel(workout)
	if err != nil {
		l.Error("failed to encode exercises", zap.Error(err))
		return nil, NewError(ErrorCodeInvalidBody, "invalid exercise list")
	}
	rec.ID = uuid.NewString()

	if err = w.workouts.Create(ctx, rec); err != nil {
		l.Error("failed to create workout", zap.String("name", workout.Name), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to create workout")
	}

	return workoutToModel(rec)
}

func (w *WorkoutService) GetWorkout(ctx context.Context, workoutID string) (*model.Workout, *Error) {
	rec, err := w.workouts.Get(ctx, workoutID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "workout not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to get workout", zap.String("workout_id", workoutID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to get workout")
	}
	return workoutToModel(rec)
}

func (w *WorkoutService) ListWorkouts(ctx context.Context) ([]*model.Workout, *Error) {
	recs, err := w.workouts.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list workouts", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list workouts")
	}

	workouts := make([]*model.Workout, 0, len(recs))
	for _, rec := range recs {
		workout, convErr := workoutToModel(rec)
		if convErr != nil {
			return nil, convErr
		}
		workouts = append(workouts, workout)
	}
	return workouts, nil
}

func (w *WorkoutService) UpdateWorkout(ctx context.Context, workout *model.Workout) (*model.Workout, *Error) {
	l := logger.FromContext(ctx)

	rec, err := workoutFromModel(workout)
	if err != nil {
		l.Error("failed to encode exercises", zap.Error(err))
		return nil, NewError(ErrorCodeInvalidBody, "invalid exercise list")
	}

	updated, err := w.workouts.Update(ctx, rec)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "workout not found")
	}
	if err != nil {
		l.Error("failed to update workout", zap.String("workout_id", workout.ID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to update workout")
	}
	return workoutToModel(updated)
}

func (w *WorkoutService) DeleteWorkout(ctx context.Context, workoutID string) *Error {
	err := w.workouts.Delete(ctx, workoutID)
	if errors.Is(err, repository.ErrNotFound) {
		return NewError(ErrorCodeNotFound, "workout not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to delete workout", zap.String("workout_id", workoutID), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to delete workout")
	}
	return nil
}

func (w *WorkoutService) WithWorkoutRepo(r repository.WorkoutRepository) *WorkoutService {
	w.workouts = r
	return w
}

func workoutFromModel(m *model.Workout) (*repository.Workout, error) {
	exercises := m.Exercises
	if exercises == nil {
		exercises = []model.Exercise{}
	}

	// JSON keeps the descriptor list ordered; read-back preserves count and
	// order exactly.
	raw, err := json.Marshal(exercises)
	if err != nil {
		return nil, err
	}

	return &repository.Workout{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Difficulty:  string(m.Difficulty),
		Duration:    m.Duration,
		Category:    m.Category,
		Exercises:   raw,
	}, nil
}

func workoutToModel(rec *repository.Workout) (*model.Workout, *Error) {
	var exercises []model.Exercise
	if len(rec.Exercises) > 0 {
		if err := json.Unmarshal(rec.Exercises, &exercises); err != nil {
			return nil, NewError(ErrorCodeUnspecified, "failed to decode exercises")
		}
	}

	return &model.Workout{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Difficulty:  model.Difficulty(rec.Difficulty),
		Duration:    rec.Duration,
		Category:    rec.Category,
		Exercises:   exercises,
	}, nil
}
