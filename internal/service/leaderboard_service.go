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

// LeaderboardService exposes CRUD over leaderboard rows. Rows are normally
// produced by SeedService; direct writes exist for completeness of the API
// surface.
type LeaderboardService struct {
	tx db.Transactor

	leaderboard repository.LeaderboardRepository
	teams       repository.TeamRepository
}

func NewLeaderboardService(tx db.Transactor) *LeaderboardService {
	return &LeaderboardService{tx: tx}
}

func (s *LeaderboardService) CreateEntry(ctx context.Context, entry *model.LeaderboardEntry) (*model.LeaderboardEntry, *Error) {
	l := logger.FromContext(ctx)

	if err := s.checkTeamRef(ctx, entry.TeamID); err != nil {
		return nil, err
	}

	rec := &repository.LeaderboardEntry{
		ID:          uuid.NewString(),
		TeamID:      entry.TeamID,
		TotalPoints: entry.TotalPoints,
		Rank:        entry.Rank,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.leaderboard.Create(ctx, rec); err != nil {
		l.Error("failed to create leaderboard entry", zap.String("team_id", entry.TeamID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to create leaderboard entry")
	}

	return leaderboardToModel(rec), nil
}

func (s *LeaderboardService) GetEntry(ctx context.Context, entryID string) (*model.LeaderboardEntry, *Error) {
	rec, err := s.leaderboard.Get(ctx, entryID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "leaderboard entry not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to get leaderboard entry", zap.String("entry_id", entryID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to get leaderboard entry")
	}
	return leaderboardToModel(rec), nil
}

func (s *LeaderboardService) ListEntries(ctx context.Context) ([]*model.LeaderboardEntry, *Error) {
	recs, err := s.leaderboard.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list leaderboard", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list leaderboard")
	}

	entries := make([]*model.LeaderboardEntry, 0, len(recs))
	for _, rec := range recs {
		entries = append(entries, leaderboardToModel(rec))
	}
	return entries, nil
}

func (s *LeaderboardService) UpdateEntry(ctx context.Context, entry *model.LeaderboardEntry) (*model.LeaderboardEntry, *Error) {
	if err := s.checkTeamRef(ctx, entry.TeamID); err != nil {
		return nil, err
	}

	rec, err := s.leaderboard.Update(ctx, &repository.LeaderboardEntry{
		ID:          entry.ID,
		TeamID:      entry.TeamID,
		TotalPoints: entry.TotalPoints,
		Rank:        entry.Rank,
		UpdatedAt:   time.Now().UTC(),
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "leaderboard entry not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to update leaderboard entry", zap.String("entry_id", entry.ID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to update leaderboard entry")
	}
	return leaderboardToModel(rec), nil
}

func (s *LeaderboardService) DeleteEntry(ctx context.Context, entryID string) *Error {
	err := s.leaderboard.Delete(ctx, entryID)
	if errors.Is(err, repository.ErrNotFound) {
		return NewError(ErrorCodeNotFound, "leaderboard entry not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to delete leaderboard entry", zap.String("entry_id", entryID), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to delete leaderboard entry")
	}
	return nil
}

func (s *LeaderboardService) checkTeamRef(ctx context.Context, teamID string) *Error {
	l := logger.FromContext(ctx)

	if _, err := s.teams.Get(ctx, teamID); errors.Is(err, repository.ErrNotFound) {
		l.Warn("referenced team not found", zap.String("team_id", teamID))
		return NewError(ErrorCodeRefNotFound, "referenced team not found")
	} else if err != nil {
		l.Error("failed to check team reference", zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to check team reference")
	}
	return nil
}

func (s *LeaderboardService) WithLeaderboardRepo(r repository.LeaderboardRepository) *LeaderboardService {
	s.leaderboard = r
	return s
}

func (s *LeaderboardService) WithTeamRepo(r repository.TeamRepository) *LeaderboardService {
	s.teams = r
	return s
}

func leaderboardToModel(rec *repository.LeaderboardEntry) *model.LeaderboardEntry {
	updatedAt := rec.UpdatedAt
	return &model.LeaderboardEntry{
		ID:          rec.ID,
		TeamID:      rec.TeamID,
		TotalPoints: rec.TotalPoints,
		Rank:        rec.Rank,
		UpdatedAt:   &updatedAt,
	}
}
