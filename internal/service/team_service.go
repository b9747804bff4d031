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

type TeamService struct {
	tx db.Transactor

	teams repository.TeamRepository
}

func NewTeamService(tx db.Transactor) *TeamService {
	return &TeamService{tx: tx}
}

func (t *TeamService) CreateTeam(ctx context.Context, team *model.Team) (*model.Team, *Error) {
	l := logger.FromContext(ctx)

	rec := &repository.Team{
		ID:          uuid.NewString(),
		Name:        team.Name,
		Description: team.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := t.teams.Create(ctx, rec); err != nil {
		l.Error("failed to create team", zap.String("name", team.Name), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to create team")
	}

	return teamToModel(rec), nil
}

func (t *TeamService) GetTeam(ctx context.Context, teamID string) (*model.Team, *Error) {
	rec, err := t.teams.Get(ctx, teamID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "team not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to get team", zap.String("team_id", teamID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to get team")
	}
	return teamToModel(rec), nil
}

func (t *TeamService) ListTeams(ctx context.Context) ([]*model.Team, *Error) {
	recs, err := t.teams.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list teams", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list teams")
	}

	teams := make([]*model.Team, 0, len(recs))
	for _, rec := range recs {
		teams = append(teams, teamToModel(rec))
	}
	return teams, nil
}

func (t *TeamService) UpdateTeam(ctx context.Context, team *model.Team) (*model.Team, *Error) {
	rec, err := t.teams.Update(ctx, &repository.Team{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "team not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to update team", zap.String("team_id", team.ID), zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to update team")
	}
	return teamToModel(rec), nil
}

// DeleteTeam removes the team only. Members keep their team_id value: the
// reference is loose, there is no cascade.
func (t *TeamService) DeleteTeam(ctx context.Context, teamID string) *Error {
	err := t.teams.Delete(ctx, teamID)
	if errors.Is(err, repository.ErrNotFound) {
		return NewError(ErrorCodeNotFound, "team not found")
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to delete team", zap.String("team_id", teamID), zap.Error(err))
		return NewError(ErrorCodeUnspecified, "failed to delete team")
	}
	return nil
}

func (t *TeamService) WithTeamRepo(r repository.TeamRepository) *TeamService {
	t.teams = r
	return t
}

func teamToModel(rec *repository.Team) *model.Team {
	createdAt := rec.CreatedAt
	return &model.Team{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		CreatedAt:   &createdAt,
	}
}
