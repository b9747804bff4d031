package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/octofit-labs/octofit-backend/internal/db"
	"github.com/octofit-labs/octofit-backend/internal/model"
	"github.com/octofit-labs/octofit-backend/internal/repository"
	"github.com/octofit-labs/octofit-backend/pkg/logger"
)

type UserService struct {
	tx db.Transactor

	users repository.UserRepository
	teams repository.TeamRepository
}

func NewUserService(tx db.Transactor) *UserService {
	return &UserService{tx: tx}
}

func (u *UserService) CreateUser(ctx context.Context, user *model.User) (*model.User, *Error) {
	l := logger.FromContext(ctx)

	if user.TeamID != nil {
		if _, err := u.teams.Get(ctx, *user.TeamID); errors.Is(err, repository.ErrNotFound) {
			l.Warn("referenced team not found", zap.String("team_id", *user.TeamID))
			return nil, NewError(ErrorCodeRefNotFound, "referenced team not found")
		} else if err != nil {
			l.Error("failed to check team reference", zap.Error(err))
			return nil, NewError(ErrorCodeUnspecified, "failed to check team reference")
		}
	}

	rec := &repository.User{
		ID:        uuid.NewString(),
		Email:     user.Email,
		Username:  user.Username,
		Password:  user.Password,
		TeamID:    user.TeamID,
		CreatedAt: time.Now().UTC(),
	}

	err := u.users.Create(ctx, rec)
	if errors.Is(err, repository.ErrAlreadyExists) {
		l.Warn("email already exists", zap.String("email", user.Email))
		return nil, NewError(ErrorCodeEmailExists, "email already exists")
	}
	if err != nil {
		l.Error("failed to create user", zap.String("email", user.Email), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to create user")
	}

	return userToModel(rec), nil
}

func (u *UserService) GetUser(ctx context.Context, userID string) (*model.User, *Error) {
	rec, err := u.users.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "user not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to get user", zap.String("user_id", userID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to get user")
	}
	return userToModel(rec), nil
}

func (u *UserService) ListUsers(ctx context.Context) ([]*model.User, *Error) {
	recs, err := u.users.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list users", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list users")
	}

	users := make([]*model.User, 0, len(recs))
	for _, rec := range recs {
		users = append(users, userToModel(rec))
	}
	return users, nil
}

// UpdateUser replaces the writable fields of a user. An empty password keeps
// the stored one.
func (u *UserService) UpdateUser(ctx context.Context, user *model.User) (*model.User, *Error) {
	l := logger.FromContext(ctx)

	current, err := u.users.Get(ctx, user.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "user not found")
	}
	if err != nil {
		l.Error("failed to get user", zap.String("user_id", user.ID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to get user")
	}

	if user.TeamID != nil {
		if _, err = u.teams.Get(ctx, *user.TeamID); errors.Is(err, repository.ErrNotFound) {
			l.Warn("referenced team not found", zap.String("team_id", *user.TeamID))
			return nil, NewError(ErrorCodeRefNotFound, "referenced team not found")
		} else if err != nil {
			l.Error("failed to check team reference", zap.Error(err))
			return nil, NewError(ErrorCodeUnspecified, "failed to check team reference")
		}
	}

	password := user.Password
	if password == "" {
		password = current.Password
	}

	rec, err := u.users.Update(ctx, &repository.User{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
		Password: password,
		TeamID:   user.TeamID,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "user not found")
	}
	if errors.Is(err, repository.ErrAlreadyExists) {
		l.Warn("email already exists", zap.String("email", user.Email))
		return nil, NewError(ErrorCodeEmailExists, "email already exists")
	}
	if err != nil {
		l.Error("failed to update user", zap.String("user_id", user.ID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to update user")
	}

	return userToModel(rec), nil
}

func (u *UserService) DeleteUser(ctx context.Context, userID string) *Error {
	err := u.users.Delete(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return NewError(ErrorCodeNotFound, "user not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to delete user", zap.String("user_id", userID), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to delete user")
	}
	return nil
}

func (u *UserService) WithUserRepo(r repository.UserRepository) *UserService {
	u.users = r
	return u
}

func (u *UserService) WithTeamRepo(r repository.TeamRepository) *UserService {
	u.teams = r
	return u
}

func userToModel(rec *repository.User) *model.User {
	createdAt := rec.CreatedAt
	return &model.User{
		ID:        rec.ID,
		Email:     rec.Email,
		Username:  rec.Username,
		Password:  rec.Password,
		TeamID:    rec.TeamID,
		CreatedAt: &createdAt,
	}
}
