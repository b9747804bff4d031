package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/octofit-labs/octofit-backend/internal/model"
	"github.com/octofit-labs/octofit-backend/pkg/logger"
)

type activityRequest struct {
	UserID         string    `json:"user_id" validate:"required"`
	ActivityType   string    `json:"activity_type" validate:"required"`
	Duration       int       `json:"duration" validate:"required,gt=0"`
	Distance       *float64  `json:"distance"`
	CaloriesBurned int       `json:"calories_burned"`
	Date           time.Time `json:"date" validate:"required"`
	Notes          string    `json:"notes"`
}

func (h *Handler) ListActivities(e echo.Context) error {
	activities, err := h.activities.ListActivities(e.Request().Context())
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, activities)
}

func (h *Handler) CreateActivity(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	var req activityRequest
	if err := h.decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	l.Info("creating activity",
		zap.String("user_id", req.UserID),
		zap.String("activity_type", req.ActivityType))

	activity, err := h.activities.CreateActivity(e.Request().Context(), &model.Activity{
		UserID:         req.UserID,
		ActivityType:   req.ActivityType,
		Duration:       req.Duration,
		Distance:       req.Distance,
		CaloriesBurned: req.CaloriesBurned,
		Date:           req.Date,
		Notes:          req.Notes,
	})
	if err != nil {
		l.Error("failed to create activity", zap.String("user_id", req.UserID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusCreated, activity)
}

func (h *Handler) GetActivity(e echo.Context) error {
	activity, err := h.activities.GetActivity(e.Request().Context(), e.Param("id"))
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, activity)
}

func (h *Handler) UpdateActivity(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	var req activityRequest
	if err := h.decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	activityID := e.Param("id")
	l.Info("updating activity", zap.String("activity_id", activityID))

	activity, err := h.activities.UpdateActivity(e.Request().Context(), &model.Activity{
		ID:             activityID,
		UserID:         req.UserID,
		ActivityType:   req.ActivityType,
		Duration:       req.Duration,
		Distance:       req.Distance,
		CaloriesBurned: req.CaloriesBurned,
		Date:           req.Date,
		Notes:          req.Notes,
	})
	if err != nil {
		l.Error("failed to update activity", zap.String("activity_id", activityID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, activity)
}

func (h *Handler) DeleteActivity(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	activityID := e.Param("id")
	l.Info("deleting activity", zap.String("activity_id", activityID))

	if err := h.activities.DeleteActivity(e.Request().Context(), activityID); err != nil {
		l.Error("failed to delete activity", zap.String("activity_id", activityID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.NoContent(http.StatusOK)
}
