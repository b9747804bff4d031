package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/octofit-labs/octofit-backend/internal/model"
	"github.com/octofit-labs/octofit-backend/pkg/logger"
)

type leaderboardRequest struct {
	TeamID      string `json:"team_id" validate:"required"`
	TotalPoints int    `json:"total_points"`
	Rank        int    `json:"rank" validate:"required,gt=0"`
}

func (h *Handler) ListLeaderboard(e echo.Context) error {
	entries, err := h.leaderboard.ListEntries(e.Request().Context())
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, entries)
}

func (h *Handler) CreateLeaderboardEntry(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	var req leaderboardRequest
	if err := h.decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	l.Info("creating leaderboard entry", zap.String("team_id", req.TeamID))

	entry, err := h.leaderboard.CreateEntry(e.Request().Context(), &model.LeaderboardEntry{
		TeamID:      req.TeamID,
		TotalPoints: req.TotalPoints,
		Rank:        req.Rank,
	})
	if err != nil {
		l.Error("failed to create leaderboard entry", zap.String("team_id", req.TeamID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusCreated, entry)
}

func (h *Handler) GetLeaderboardEntry(e echo.Context) error {
	entry, err := h.leaderboard.GetEntry(e.Request().Context(), e.Param("id"))
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, entry)
}

func (h *Handler) UpdateLeaderboardEntry(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	var req leaderboardRequest
	if err := h.decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	entryID := e.Param("id")
	l.Info("updating leaderboard entry", zap.String("entry_id", entryID))

	entry, err := h.leaderboard.UpdateEntry(e.Request().Context(), &model.LeaderboardEntry{
		ID:          entryID,
		TeamID:      req.TeamID,
		TotalPoints: req.TotalPoints,
		Rank:        req.Rank,
	})
	if err != nil {
		l.Error("failed to update leaderboard entry", zap.String("entry_id", entryID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, entry)
}

func (h *Handler) DeleteLeaderboardEntry(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	entryID := e.Param("id")
	l.Info("deleting leaderboard entry", zap.String("entry_id", entryID))

	if err := h.leaderboard.DeleteEntry(e.Request().Context(), entryID); err != nil {
		l.Error("failed to delete leaderboard entry", zap.String("entry_id", entryID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.NoContent(http.StatusOK)
}
