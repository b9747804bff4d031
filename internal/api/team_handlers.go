package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/octofit-labs/octofit-backend/internal/model"
	"github.com/octofit-labs/octofit-backend/pkg/logger"
)

func (h *Handler) ListTeams(e echo.Context) error {
	teams, err := h.teams.ListTeams(e.Request().Context())
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, teams)
}

func (h *Handler) CreateTeam(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	var req struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	if err := h.decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	l.Info("creating team", zap.String("name", req.Name))

	team, err := h.teams.CreateTeam(e.Request().Context(), &model.Team{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		l.Error("failed to create team", zap.String("name", req.Name), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusCreated, team)
}

func (h *Handler) GetTeam(e echo.Context) error {
	team, err := h.teams.GetTeam(e.Request().Context(), e.Param("id"))
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, team)
}

func (h *Handler) UpdateTeam(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	var req struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	if err := h.decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	teamID := e.Param("id")
	l.Info("updating team", zap.String("team_id", teamID))

	team, err := h.teams.UpdateTeam(e.Request().Context(), &model.Team{
		ID:          teamID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		l.Error("failed to update team", zap.String("team_id", teamID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, team)
}

func (h *Handler) DeleteTeam(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	teamID := e.Param("id")
	l.Info("deleting team", zap.String("team_id", teamID))

	if err := h.teams.DeleteTeam(e.Request().Context(), teamID); err != nil {
		l.Error("failed to delete team", zap.String("team_id", teamID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.NoContent(http.StatusOK)
}
