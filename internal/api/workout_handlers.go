package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/octofit-labs/octofit-backend/internal/model"
	"github.com/octofit-labs/octofit-backend/pkg/logger"
)

type workoutRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	Difficulty  model.Difficulty `json:"difficulty" validate:"required,oneof=Easy Medium Hard"`
	Duration    int              `json:"duration" validate:"required,gt=0"`
	Category    string           `json:"category" validate:"required"`
	Exercises   []model.Exercise `json:"exercises" validate:"dive"`
}

func (h *Handler) ListWorkouts(e echo.Context) error {
	workouts, err := h.workouts.ListWorkouts(e.Request().Context())
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, workouts)
}

func (h *Handler) CreateWorkout(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	var req workoutRequest
	if err := h.decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	l.Info("creating workout", zap.String("name", req.Name))

	workout, err := h.workouts.CreateWorkout(e.Request().Context(), &model.Workout{
		Name:        req.Name,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		Duration:    req.Duration,
		Category:    req.Category,
		Exercises:   req.Exercises,
	})
	if err != nil {
		l.Error("failed to create workout", zap.String("name", req.Name), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusCreated, workout)
}

func (h *Handler) GetWorkout(e echo.Context) error {
	workout, err := h.workouts.GetWorkout(e.Request().Context(), e.Param("id"))
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, workout)
}

func (h *Handler) UpdateWorkout(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	var req workoutRequest
	if err := h.decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	workoutID := e.Param("id")
	l.Info("updating workout", zap.String("workout_id", workoutID))

	workout, err := h.workouts.UpdateWorkout(e.Request().Context(), &model.Workout{
		ID:          workoutID,
		Name:        req.Name,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		Duration:    req.Duration,
		Category:    req.Category,
		Exercises:   req.Exercises,
	})
	if err != nil {
		l.Error("failed to update workout", zap.String("workout_id", workoutID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, workout)
}

func (h *Handler) DeleteWorkout(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	workoutID := e.Param("id")
	l.Info("deleting workout", zap.String("workout_id", workoutID))

	if err := h.workouts.DeleteWorkout(e.Request().Context(), workoutID); err != nil {
		l.Error("failed to delete workout", zap.String("workout_id", workoutID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.NoContent(http.StatusOK)
}
