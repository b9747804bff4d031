// Command seed repopulates the database with sample data and rebuilds the
// leaderboard. It is destructive: all existing records are deleted first.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/octofit-labs/octofit-backend/internal/config"
	"github.com/octofit-labs/octofit-backend/internal/db"
	"github.com/octofit-labs/octofit-backend/internal/repository"
	"github.com/octofit-labs/octofit-backend/internal/service"
	"github.com/octofit-labs/octofit-backend/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "seed failed:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logger.NewLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx := logger.WithLogger(context.Background(), log)

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err = pool.Ping(ctx); err != nil {
		return err
	}

	transactor := db.NewPgxTransactor(pool)

	seeder := service.NewSeedService(transactor).
		WithTeamRepo(repository.NewPgxTeamRepository(pool)).
		WithUserRepo(repository.NewPgxUserRepository(pool)).
		WithActivityRepo(repository.NewPgxActivityRepository(pool)).
		WithWorkoutRepo(repository.NewPgxWorkoutRepository(pool)).
		WithLeaderboardRepo(repository.NewPgxLeaderboardRepository(pool))

	fmt.Println("Starting database population...")

	counts, err := seeder.Run(ctx)
	if err != nil {
		log.Error("seed run failed", zap.Error(err))
		return err
	}

	fmt.Println("Successfully populated database!")
	fmt.Printf("Created %d teams\n", counts.Teams)
	fmt.Printf("Created %d users\n", counts.Users)
	fmt.Printf("Created %d activities\n", counts.Activities)
	fmt.Printf("Created %d workouts\n", counts.Workouts)
	fmt.Printf("Created %d leaderboard entries\n", counts.LeaderboardEntries)

	return nil
}
