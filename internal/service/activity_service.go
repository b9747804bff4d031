package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/octofit-labs/octofit-backend/internal/db"
	"github.com/octofit-labs/octofit-backend/internal/model"
	"github.com/octofit-labs/octofit-backend/internal/repository"
	"github.com/octofit-labs/octofit-backend/pkg/logger"
)

type ActivityService struct {
	tx db.Transactor

	activities repository.ActivityRepository
	users      repository.UserRepository
}

func NewActivityService(tx db.Transactor) *ActivityService {
	return &ActivityService{tx: tx}
}

func (a *ActivityService) CreateActivity(ctx context.Context, activity *model.Activity) (*model.Activity, *Error) {
	l := logger.FromContext(ctx)

	if err := a.checkUserRef(ctx, activity.UserID); err != nil {
		return nil, err
	}

	rec := activityFromModel(activity)
	rec.ID = uuid.NewString()

	if err := a.activities.Create(ctx, rec); err != nil {
		l.Error("failed to create activity", zap.String("user_id", activity.UserID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to create activity")
	}

	return activityToModel(rec), nil
}

func (a *ActivityService) GetActivity(ctx context.Context, activityID string) (*model.Activity, *Error) {
	rec, err := a.activities.Get(ctx, activityID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "activity not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to get activity", zap.String("activity_id", activityID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to get activity")
	}
	return activityToModel(rec), nil
}

func (a *ActivityService) ListActivities(ctx context.Context) ([]*model.Activity, *Error) {
	recs, err := a.activities.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list activities", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list activities")
	}

	activities := make([]*model.Activity, 0, len(recs))
	for _, rec := range recs {
		activities = append(activities, activityToModel(rec))
	}
	return activities, nil
}

func (a *ActivityService) UpdateActivity(ctx context.Context, activity *model.Activity) (*model.Activity, *Error) {
	if err := a.checkUserRef(ctx, activity.UserID); err != nil {
		return nil, err
	}

	rec, err := a.activities.Update(ctx, activityFromModel(activity))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "activity not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to update activity", zap.String("activity_id", activity.ID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to update activity")
	}
	return activityToModel(rec), nil
}

func (a *ActivityService) DeleteActivity(ctx context.Context, activityID string) *Error {
	err := a.activities.Delete(ctx, activityID)
	if errors.Is(err, repository.ErrNotFound) {
		return NewError(ErrorCodeNotFound, "activity not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to delete activity", zap.String("activity_id", activityID), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to delete activity")
	}
	return nil
}

func (a *ActivityService) checkUserRef(ctx context.Context, userID string) *Error {
	l := logger.FromContext(ctx)

	if _, err := a.users.Get(ctx, userID); errors.Is(err, repository.ErrNotFound) {
		l.Warn("referenced user not found", zap.String("user_id", userID))
		return NewError(ErrorCodeRefNotFound, "referenced user not found")
	} else if err != nil {
		l.Error("failed to check user reference", zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to check user reference")
	}
	return nil
}

func (a *ActivityService) WithActivityRepo(r repository.ActivityRepository) *ActivityService {
	a.activities = r
	return a
}

func (a *ActivityService) WithUserRepo(r repository.UserRepository) *ActivityService {
	a.users = r
	return a
}

func activityFromModel(m *model.Activity) *repository.Activity {
	return &repository.Activity{
		ID:             m.ID,
		UserID:         m.UserID,
		ActivityType:   m.ActivityType,
		Duration:       m.Duration,
		Distance:       m.Distance,
		CaloriesBurned: m.CaloriesBurned,
		Date:           m.Date,
		Notes:          m.Notes,
	}
}

func activityToModel(rec *repository.Activity) *model.Activity {
	return &model.Activity{
		ID:             rec.ID,
		UserID:         rec.UserID,
		ActivityType:   rec.ActivityType,
		Duration:       rec.Duration,
		Distance:       rec.Distance,
		CaloriesBurned: rec.CaloriesBurned,
		Date:           rec.Date,
		Notes:          rec.Notes,
	}
}
