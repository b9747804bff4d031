package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/octofit-labs/octofit-backend/internal/db"
	"github.com/octofit-labs/octofit-backend/internal/observability"
	"github.com/octofit-labs/octofit-backend/internal/repository"
	"github.com/octofit-labs/octofit-backend/pkg/logger"
)

const (
	activitiesPerUser = 10

	// Advisory lock key so concurrent seed runs serialize instead of
	// interleaving delete/insert across collections.
	seedLockKey int64 = 0x0c70f17
)

// SeedCounts reports how many records each collection received.
type SeedCounts struct {
	Teams              int
	Users              int
	Activities         int
	Workouts           int
	LeaderboardEntries int
}

// SeedService repopulates the store with fixture data and recomputes the
// leaderboard: deletes everything, inserts teams/users/activities/workouts,
// sums calories burned per team and assigns dense ranks. The whole run
// executes in a single locked transaction, so API readers never observe a
// half-populated store and a failed run leaves the previous data intact.
type SeedService struct {
	tx db.Transactor

	teams       repository.TeamRepository
	users       repository.UserRepository
	activities  repository.ActivityRepository
	workouts    repository.WorkoutRepository
	leaderboard repository.LeaderboardRepository

	now func() time.Time
}

func NewSeedService(tx db.Transactor) *SeedService {
	return &SeedService{tx: tx, now: time.Now}
}

func (s *SeedService) Run(ctx context.Context) (*SeedCounts, error) {
	l := logger.FromContext(ctx)

	counts := &SeedCounts{}
	err := s.tx.WithinLockedTransaction(ctx, seedLockKey, func(txCtx context.Context) error {
		if err := s.deleteAll(txCtx); err != nil {
			return err
		}

		teams, err := s.insertTeams(txCtx)
		if err != nil {
			return err
		}
		counts.Teams = len(teams)

		users, err := s.insertUsers(txCtx, teams)
		if err != nil {
			return err
		}
		counts.Users = len(users)

		counts.Activities, err = s.insertActivities(txCtx, users)
		if err != nil {
			return err
		}

		counts.Workouts, err = s.insertWorkouts(txCtx)
		if err != nil {
			return err
		}

		counts.LeaderboardEntries, err = s.buildLeaderboard(txCtx, teams)
		return err
	})
	if err != nil {
		l.Error("seed run failed", zap.Error(err))
		return nil, err
	}

	observability.RecordSeededRecords(counts.Teams, counts.Users, counts.Activities, counts.Workouts, counts.LeaderboardEntries)

	l.Info("seed run completed",
		zap.Int("teams", counts.Teams),
		zap.Int("users", counts.Users),
		zap.Int("activities", counts.Activities),
		zap.Int("workouts", counts.Workouts),
		zap.Int("leaderboard_entries", counts.LeaderboardEntries))

	return counts, nil
}

func (s *SeedService) deleteAll(ctx context.Context) error {
	// Leaderboard and activities reference other rows, so they go first;
	// with loose references this is convention, not a constraint.
	deletions := []struct {
		name string
		fn   func(context.Context) (int64, error)
	}{
		{"leaderboard", s.leaderboard.DeleteAll},
		{"activities", s.activities.DeleteAll},
		{"users", s.users.DeleteAll},
		{"teams", s.teams.DeleteAll},
		{"workouts", s.workouts.DeleteAll},
	}

	l := logger.FromContext(ctx)
	for _, d := range deletions {
		n, err := d.fn(ctx)
		if err != nil {
			return errors.Wrapf(err, "failed to delete %s", d.name)
		}
		l.Debug("deleted existing records", zap.String("collection", d.name), zap.Int64("count", n))
	}
	return nil
}

func (s *SeedService) insertTeams(ctx context.Context) ([]*repository.Team, error) {
	teams := make([]*repository.Team, 0, len(teamFixtures))
	for _, f := range teamFixtures {
		rec := &repository.Team{
			ID:          uuid.NewString(),
			Name:        f.Name,
			Description: f.Description,
			CreatedAt:   s.now().UTC(),
		}
		if err := s.teams.Create(ctx, rec); err != nil {
			return nil, errors.Wrapf(err, "failed to create team %q", f.Name)
		}
		teams = append(teams, rec)
	}
	return teams, nil
}

func (s *SeedService) insertUsers(ctx context.Context, teams []*repository.Team) ([]*repository.User, error) {
	users := make([]*repository.User, 0, len(userFixtures))
	for _, f := range userFixtures {
		teamID := teams[f.Team].ID
		rec := &repository.User{
			ID:        uuid.NewString(),
			Email:     f.Email,
			Username:  f.Username,
			Password:  f.Password,
			TeamID:    &teamID,
			CreatedAt: s.now().UTC(),
		}
		if err := s.users.Create(ctx, rec); err != nil {
			return nil, errors.Wrapf(err, "failed to create user %q", f.Email)
		}
		users = append(users, rec)
	}
	return users, nil
}

func (s *SeedService) insertActivities(ctx context.Context, users []*repository.User) (int, error) {
	base := s.now().UTC().AddDate(0, 0, -30)

	created := 0
	for _, user := range users {
		for i := 0; i < activitiesPerUser; i++ {
			rec := activityForIndex(user.ID, user.Username, i, base)
			rec.ID = uuid.NewString()
			if err := s.activities.Create(ctx, rec); err != nil {
				return created, errors.Wrapf(err, "failed to create activity %d for user %q", i, user.Username)
			}
			created++
		}
	}
	return created, nil
}

// activityForIndex derives the i-th sample activity (0-indexed) for a user:
// types cycle through activityTypes, duration grows by 5 minutes per index
// from a 30-minute base, calories are duration*8, distance applies only to
// Running/Cycling/Swimming, and dates step forward 3 days from base.
func activityForIndex(userID, username string, i int, base time.Time) *repository.Activity {
	activityType := activityTypes[i%len(activityTypes)]
	duration := 30 + i*5

	var distance *float64
	if distanceActivityTypes[activityType] {
		d := round2(float64(duration) * 0.15)
		distance = &d
	}

	return &repository.Activity{
		UserID:         userID,
		ActivityType:   activityType,
		Duration:       duration,
		Distance:       distance,
		CaloriesBurned: duration * 8,
		Date:           base.AddDate(0, 0, i*3),
		Notes:          fmt.Sprintf("%s session %d for %s", activityType, i+1, username),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *SeedService) insertWorkouts(ctx context.Context) (int, error) {
	for _, f := range workoutFixtures {
		raw, err := json.Marshal(f.Exercises)
		if err != nil {
			return 0, errors.Wrapf(err, "failed to encode exercises for workout %q", f.Name)
		}
		rec := &repository.Workout{
			ID:          uuid.NewString(),
			Name:        f.Name,
			Description: f.Description,
			Difficulty:  string(f.Difficulty),
			Duration:    f.Duration,
			Category:    f.Category,
			Exercises:   raw,
		}
		if err = s.workouts.Create(ctx, rec); err != nil {
			return 0, errors.Wrapf(err, "failed to create workout %q", f.Name)
		}
	}
	return len(workoutFixtures), nil
}

type teamTotal struct {
	teamID string
	points int
}

func (s *SeedService) buildLeaderboard(ctx context.Context, teams []*repository.Team) (int, error) {
	totals := make([]teamTotal, 0, len(teams))
	for _, team := range teams {
		points, err := s.teamPoints(ctx, team.ID)
		if err != nil {
			return 0, err
		}
		totals = append(totals, teamTotal{teamID: team.ID, points: points})
	}

	created := 0
	for rank, total := range rankTeams(totals) {
		rec := &repository.LeaderboardEntry{
			ID:          uuid.NewString(),
			TeamID:      total.teamID,
			TotalPoints: total.points,
			Rank:        rank + 1,
			UpdatedAt:   s.now().UTC(),
		}
		if err := s.leaderboard.Create(ctx, rec); err != nil {
			return created, errors.Wrapf(err, "failed to create leaderboard entry for team %q", total.teamID)
		}
		created++
	}
	return created, nil
}

// teamPoints sums calories burned across all activities of all users whose
// team reference equals teamID.
func (s *SeedService) teamPoints(ctx context.Context, teamID string) (int, error) {
	members, err := s.users.ListByTeam(ctx, teamID)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to list members of team %q", teamID)
	}

	points := 0
	for _, member := range members {
		activities, err := s.activities.ListByUser(ctx, member.ID)
		if err != nil {
			return 0, errors.Wrapf(err, "failed to list activities of user %q", member.ID)
		}
		for _, activity := range activities {
			points += activity.CaloriesBurned
		}
	}
	return points, nil
}

// rankTeams orders totals by points descending. Equal totals keep their
// input order, which follows team creation order, so ranking is
// deterministic on ties. The caller assigns rank = position+1.
func rankTeams(totals []teamTotal) []teamTotal {
	ranked := make([]teamTotal, len(totals))
	copy(ranked, totals)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].points > ranked[j].points
	})
	return ranked
}

func (s *SeedService) WithTeamRepo(r repository.TeamRepository) *SeedService {
	s.teams = r
	return s
}

func (s *SeedService) WithUserRepo(r repository.UserRepository) *SeedService {
	s.users = r
	return s
}

func (s *SeedService) WithActivityRepo(r repository.ActivityRepository) *SeedService {
	s.activities = r
	return s
}

func (s *SeedService) WithWorkoutRepo(r repository.WorkoutRepository) *SeedService {
	s.workouts = r
	return s
}

func (s *SeedService) WithLeaderboardRepo(r repository.LeaderboardRepository) *SeedService {
	s.leaderboard = r
	return s
}

// WithNow overrides the clock, for tests.
func (s *SeedService) WithNow(now func() time.Time) *SeedService {
	s.now = now
	return s
}
