package main

import (
	"context"
	"time"

	"github.com/hellofresh/health-go/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/octofit-labs/octofit-backend/internal/api"
	"github.com/octofit-labs/octofit-backend/internal/config"
	"github.com/octofit-labs/octofit-backend/internal/db"
	"github.com/octofit-labs/octofit-backend/internal/repository"
	"github.com/octofit-labs/octofit-backend/internal/service"
	"github.com/octofit-labs/octofit-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("starting application")

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err = pool.Ping(context.Background()); err != nil {
		logger.Fatal("failed to ping database", zap.Error(err))
	}

	logger.Info("database connection established")

	transactor := db.NewPgxTransactor(pool)

	teamRepo := repository.NewPgxTeamRepository(pool)
	userRepo := repository.NewPgxUserRepository(pool)
	activityRepo := repository.NewPgxActivityRepository(pool)
	workoutRepo := repository.NewPgxWorkoutRepository(pool)
	leaderboardRepo := repository.NewPgxLeaderboardRepository(pool)

	users := service.NewUserService(transactor).WithUserRepo(userRepo).WithTeamRepo(teamRepo)
	teams := service.NewTeamService(transactor).WithTeamRepo(teamRepo)
	activities := service.NewActivityService(transactor).WithActivityRepo(activityRepo).WithUserRepo(userRepo)
	workouts := service.NewWorkoutService(transactor).WithWorkoutRepo(workoutRepo)
	leaderboard := service.NewLeaderboardService(transactor).WithLeaderboardRepo(leaderboardRepo).WithTeamRepo(teamRepo)

	healthChecker := api.MustNewHealthChecker(health.Config{
		Name:    "postgres",
		Timeout: 5 * time.Second,
		Check: func(ctx context.Context) error {
			return pool.Ping(ctx)
		},
	})

	e := echo.New()

	handler := api.NewHandler(logger).
		WithHealthChecker(healthChecker).
		WithUserService(users).
		WithTeamService(teams).
		WithActivityService(activities).
		WithWorkoutService(workouts).
		WithLeaderboardService(leaderboard)

	handler.RegisterRoutes(e)

	logger.Info("server starting", zap.String("address", cfg.HTTPAddress))
	if err = e.Start(cfg.HTTPAddress); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
