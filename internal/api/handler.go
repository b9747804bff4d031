package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/octofit-labs/octofit-backend/internal/service"
)

type Handler struct {
	users       *service.UserService
	teams       *service.TeamService
	activities  *service.ActivityService
	workouts    *service.WorkoutService
	leaderboard *service.LeaderboardService

	healthChecker HealthChecker

	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

func (h *Handler) WithHealthChecker(c HealthChecker) *Handler {
	h.healthChecker = c
	return h
}

func (h *Handler) WithUserService(users *service.UserService) *Handler {
	h.users = users
	return h
}

func (h *Handler) WithTeamService(teams *service.TeamService) *Handler {
	h.teams = teams
	return h
}

func (h *Handler) WithActivityService(activities *service.ActivityService) *Handler {
	h.activities = activities
	return h
}

func (h *Handler) WithWorkoutService(workouts *service.WorkoutService) *Handler {
	h.workouts = workouts
	return h
}

func (h *Handler) WithLeaderboardService(leaderboard *service.LeaderboardService) *Handler {
	h.leaderboard = leaderboard
	return h
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewValidator()
	e.Use(middleware.RequestID())
	e.Use(ZapLoggerMiddleware(h.logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/health", h.healthChecker.HealthCheck())
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	api.GET("/users", h.ListUsers)
	api.POST("/users", h.CreateUser)
	api.GET("/users/:id", h.GetUser)
	api.PUT("/users/:id", h.UpdateUser)
	api.DELETE("/users/:id", h.DeleteUser)

	api.GET("/teams", h.ListTeams)
	api.POST("/teams", h.CreateTeam)
	api.GET("/teams/:id", h.GetTeam)
	api.PUT("/teams/:id", h.UpdateTeam)
	api.DELETE("/teams/:id", h.DeleteTeam)

	api.GET("/activities", h.ListActivities)
	api.POST("/activities", h.CreateActivity)
	api.GET("/activities/:id", h.GetActivity)
	api.PUT("/activities/:id", h.UpdateActivity)
	api.DELETE("/activities/:id", h.DeleteActivity)

	api.GET("/workouts", h.ListWorkouts)
	api.POST("/workouts", h.CreateWorkout)
	api.GET("/workouts/:id", h.GetWorkout)
	api.PUT("/workouts/:id", h.UpdateWorkout)
	api.DELETE("/workouts/:id", h.DeleteWorkout)

	api.GET("/leaderboard", h.ListLeaderboard)
	api.POST("/leaderboard", h.CreateLeaderboardEntry)
	api.GET("/leaderboard/:id", h.GetLeaderboardEntry)
	api.PUT("/leaderboard/:id", h.UpdateLeaderboardEntry)
	api.DELETE("/leaderboard/:id", h.DeleteLeaderboardEntry)
}

func (h *Handler) decodeRequest(e echo.Context, req any) *service.Error {
	if err := e.Bind(req); err != nil {
		return service.NewError(service.ErrorCodeInvalidBody, "invalid request body")
	}

	if err := e.Validate(req); err != nil {
		return service.NewError(service.ErrorCodeInvalidBody, errors.Wrap(err, "request validation failed").Error())
	}
	return nil
}

func (h *Handler) transportError(e echo.Context, err *service.Error) error {
	response := struct {
		Error *service.Error `json:"error"`
	}{Error: err}

	switch err.Code {
	case service.ErrorCodeNotFound:
		return e.JSON(http.StatusNotFound, response)
	case service.ErrorCodeEmailExists:
		return e.JSON(http.StatusConflict, response)
	case service.ErrorCodeInvalidBody, service.ErrorCodeRefNotFound:
		return e.JSON(http.StatusBadRequest, response)
	default:
		return e.JSON(http.StatusInternalServerError, response)
	}
}
