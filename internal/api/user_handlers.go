package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/octofit-labs/octofit-backend/internal/model"
	"github.com/octofit-labs/octofit-backend/pkg/logger"
)

func (h *Handler) ListUsers(e echo.Context) error {
	users, err := h.users.ListUsers(e.Request().Context())
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, users)
}

func (h *Handler) CreateUser(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	var req struct {
		Email    string  `json:"email" validate:"required,email"`
		Username string  `json:"username" validate:"required"`
		Password string  `json:"password" validate:"required"`
		TeamID   *string `json:"team_id"`
	}

	if err := h.decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	l.Info("creating user", zap.String("email", req.Email))

	user, err := h.users.CreateUser(e.Request().Context(), &model.User{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		TeamID:   req.TeamID,
	})
	if err != nil {
		l.Error("failed to create user", zap.String("email", req.Email), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusCreated, user)
}

func (h *Handler) GetUser(e echo.Context) error {
	user, err := h.users.GetUser(e.Request().Context(), e.Param("id"))
	if err != nil {
		return h.transportError(e, err)
	}
	return e.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateUser(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	var req struct {
		Email    string  `json:"email" validate:"required,email"`
		Username string  `json:"username" validate:"required"`
		Password string  `json:"password"`
		TeamID   *string `json:"team_id"`
	}

	if err := h.decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	userID := e.Param("id")
	l.Info("updating user", zap.String("user_id", userID))

	user, err := h.users.UpdateUser(e.Request().Context(), &model.User{
		ID:       userID,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		TeamID:   req.TeamID,
	})
	if err != nil {
		l.Error("failed to update user", zap.String("user_id", userID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	userID := e.Param("id")
	l.Info("deleting user", zap.String("user_id", userID))

	if err := h.users.DeleteUser(e.Request().Context(), userID); err != nil {
		l.Error("failed to delete user", zap.String("user_id", userID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.NoContent(http.StatusOK)
}
