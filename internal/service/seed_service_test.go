package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octofit-labs/octofit-backend/internal/repository"
)

// fakeSeedStore is a stateful in-memory implementation of all five
// repositories, so a whole seed run can be exercised end to end.
type fakeSeedStore struct {
	teams       []*repository.Team
	users       []*repository.User
	activities  []*repository.Activity
	workouts    []*repository.Workout
	leaderboard []*repository.LeaderboardEntry

	failUserCreate bool
}

type fakeTeamRepo struct{ s *fakeSeedStore }

func (r *fakeTeamRepo) Create(_ context.Context, t *repository.Team) error {
	r.s.teams = append(r.s.teams, t)
	return nil
}

func (r *fakeTeamRepo) Get(_ context.Context, id string) (*repository.Team, error) {
	for _, t := range r.s.teams {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeTeamRepo) List(_ context.Context) ([]*repository.Team, error) { return r.s.teams, nil }

func (r *fakeTeamRepo) Update(_ context.Context, t *repository.Team) (*repository.Team, error) {
	return t, nil
}

func (r *fakeTeamRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *fakeTeamRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(r.s.teams))
	r.s.teams = nil
	return n, nil
}

type fakeUserRepo struct{ s *fakeSeedStore }

func (r *fakeUserRepo) Create(_ context.Context, u *repository.User) error {
	if r.s.failUserCreate {
		return assert.AnError
	}
	r.s.users = append(r.s.users, u)
	return nil
}

func (r *fakeUserRepo) Get(_ context.Context, id string) (*repository.User, error) {
	for _, u := range r.s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]*repository.User, error) { return r.s.users, nil }

func (r *fakeUserRepo) ListByTeam(_ context.Context, teamID string) ([]*repository.User, error) {
	var members []*repository.User
	for _, u := range r.s.users {
		if u.TeamID != nil && *u.TeamID == teamID {
			members = append(members, u)
		}
	}
	return members, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *repository.User) (*repository.User, error) {
	return u, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *fakeUserRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(r.s.users))
	r.s.users = nil
	return n, nil
}

type fakeActivityRepo struct{ s *fakeSeedStore }

func (r *fakeActivityRepo) Create(_ context.Context, a *repository.Activity) error {
	r.s.activities = append(r.s.activities, a)
	return nil
}

func (r *fakeActivityRepo) Get(_ context.Context, id string) (*repository.Activity, error) {
	for _, a := range r.s.activities {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeActivityRepo) List(_ context.Context) ([]*repository.Activity, error) {
	return r.s.activities, nil
}

func (r *fakeActivityRepo) ListByUser(_ context.Context, userID string) ([]*repository.Activity, error) {
	var out []*repository.Activity
	for _, a := range r.s.activities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeActivityRepo) Update(_ context.Context, a *repository.Activity) (*repository.Activity, error) {
	return a, nil
}

func (r *fakeActivityRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *fakeActivityRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(r.s.activities))
	r.s.activities = nil
	return n, nil
}

type fakeWorkoutRepo struct{ s *fakeSeedStore }

func (r *fakeWorkoutRepo) Create(_ context.Context, w *repository.Workout) error {
	r.s.workouts = append(r.s.workouts, w)
	return nil
}

func (r *fakeWorkoutRepo) Get(_ context.Context, id string) (*repository.Workout, error) {
	for _, w := range r.s.workouts {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeWorkoutRepo) List(_ context.Context) ([]*repository.Workout, error) {
	return r.s.workouts, nil
}

func (r *fakeWorkoutRepo) Update(_ context.Context, w *repository.Workout) (*repository.Workout, error) {
	return w, nil
}

func (r *fakeWorkoutRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *fakeWorkoutRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(r.s.workouts))
	r.s.workouts = nil
	return n, nil
}

type fakeLeaderboardRepo struct{ s *fakeSeedStore }

func (r *fakeLeaderboardRepo) Create(_ context.Context, e *repository.LeaderboardEntry) error {
	r.s.leaderboard = append(r.s.leaderboard, e)
	return nil
}

func (r *fakeLeaderboardRepo) Get(_ context.Context, id string) (*repository.LeaderboardEntry, error) {
	for _, e := range r.s.leaderboard {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeLeaderboardRepo) List(_ context.Context) ([]*repository.LeaderboardEntry, error) {
	return r.s.leaderboard, nil
}

func (r *fakeLeaderboardRepo) Update(_ context.Context, e *repository.LeaderboardEntry) (*repository.LeaderboardEntry, error) {
	return e, nil
}

func (r *fakeLeaderboardRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *fakeLeaderboardRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(r.s.leaderboard))
	r.s.leaderboard = nil
	return n, nil
}

func newSeedServiceWithStore(store *fakeSeedStore) *SeedService {
	return NewSeedService(new(MockTransactor)).
		WithTeamRepo(&fakeTeamRepo{s: store}).
		WithUserRepo(&fakeUserRepo{s: store}).
		WithActivityRepo(&fakeActivityRepo{s: store}).
		WithWorkoutRepo(&fakeWorkoutRepo{s: store}).
		WithLeaderboardRepo(&fakeLeaderboardRepo{s: store})
}

func TestSeedService_Run(t *testing.T) {
	store := &fakeSeedStore{}
	seeder := newSeedServiceWithStore(store)

	counts, err := seeder.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, counts.Teams)
	assert.Equal(t, 12, counts.Users)
	assert.Equal(t, 120, counts.Activities)
	assert.Equal(t, 6, counts.Workouts)
	assert.Equal(t, 2, counts.LeaderboardEntries)

	// Every user gets the same activity schedule: sum over i of (30+5i)*8
	// is 4200 calories, 6 users per team makes 25200 points per team.
	require.Len(t, store.leaderboard, 2)
	assert.Equal(t, 25200, store.leaderboard[0].TotalPoints)
	assert.Equal(t, 25200, store.leaderboard[1].TotalPoints)

	// Equal totals: ranks follow team creation order.
	assert.Equal(t, store.teams[0].ID, store.leaderboard[0].TeamID)
	assert.Equal(t, 1, store.leaderboard[0].Rank)
	assert.Equal(t, store.teams[1].ID, store.leaderboard[1].TeamID)
	assert.Equal(t, 2, store.leaderboard[1].Rank)
}

func TestSeedService_RunTwiceIsIdempotent(t *testing.T) {
	store := &fakeSeedStore{}
	seeder := newSeedServiceWithStore(store)

	_, err := seeder.Run(context.Background())
	require.NoError(t, err)
	_, err = seeder.Run(context.Background())
	require.NoError(t, err)

	// Deletion precedes insertion, so a second run does not double the data.
	assert.Len(t, store.teams, 2)
	assert.Len(t, store.users, 12)
	assert.Len(t, store.activities, 120)
	assert.Len(t, store.workouts, 6)
	assert.Len(t, store.leaderboard, 2)
}

func TestSeedService_RunSurfacesFailure(t *testing.T) {
	store := &fakeSeedStore{failUserCreate: true}
	seeder := newSeedServiceWithStore(store)

	_, err := seeder.Run(context.Background())
	assert.Error(t, err)
	assert.Empty(t, store.leaderboard)
}

func TestActivityForIndex(t *testing.T) {
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name         string
		index        int
		activityType string
		duration     int
		distance     *float64
		calories     int
		dayOffset    int
	}{
		{name: "first is running", index: 0, activityType: "Running", duration: 30, distance: f(4.5), calories: 240, dayOffset: 0},
		{name: "second is cycling", index: 1, activityType: "Cycling", duration: 35, distance: f(5.25), calories: 280, dayOffset: 3},
		{name: "third is swimming", index: 2, activityType: "Swimming", duration: 40, distance: f(6.0), calories: 320, dayOffset: 6},
		{name: "weight training has no distance", index: 3, activityType: "Weight Training", duration: 45, distance: nil, calories: 360, dayOffset: 9},
		{name: "yoga has no distance", index: 4, activityType: "Yoga", duration: 50, distance: nil, calories: 400, dayOffset: 12},
		{name: "types cycle after six", index: 6, activityType: "Running", duration: 60, distance: f(9.0), calories: 480, dayOffset: 18},
		{name: "last activity", index: 9, activityType: "Weight Training", duration: 75, distance: nil, calories: 600, dayOffset: 27},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := activityForIndex("user-1", "Thor", tt.index, base)

			assert.Equal(t, "user-1", a.UserID)
			assert.Equal(t, tt.activityType, a.ActivityType)
			assert.Equal(t, tt.duration, a.Duration)
			assert.Equal(t, tt.calories, a.CaloriesBurned)
			assert.Equal(t, base.AddDate(0, 0, tt.dayOffset), a.Date)
			if tt.distance == nil {
				assert.Nil(t, a.Distance)
			} else {
				require.NotNil(t, a.Distance)
				assert.Equal(t, *tt.distance, *a.Distance)
			}
		})
	}
}

func TestActivityForIndex_Notes(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	a := activityForIndex("user-1", "Batman", 2, base)
	assert.Equal(t, "Swimming session 3 for Batman", a.Notes)
}

func TestRankTeams(t *testing.T) {
	tests := []struct {
		name   string
		totals []teamTotal
		order  []string
	}{
		{
			name: "higher total ranks first",
			totals: []teamTotal{
				{teamID: "b", points: 9000},
				{teamID: "a", points: 9600},
			},
			order: []string{"a", "b"},
		},
		{
			name: "ties keep creation order",
			totals: []teamTotal{
				{teamID: "first", points: 25200},
				{teamID: "second", points: 25200},
			},
			order: []string{"first", "second"},
		},
		{
			name: "dense ranking over many teams",
			totals: []teamTotal{
				{teamID: "a", points: 100},
				{teamID: "b", points: 300},
				{teamID: "c", points: 300},
				{teamID: "d", points: 200},
			},
			order: []string{"b", "c", "d", "a"},
		},
		{
			name:   "empty input",
			totals: nil,
			order:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := rankTeams(tt.totals)
			got := make([]string, 0, len(ranked))
			for _, r := range ranked {
				got = append(got, r.teamID)
			}
			assert.Equal(t, tt.order, got)
		})
	}
}

func TestRankTeams_DoesNotMutateInput(t *testing.T) {
	totals := []teamTotal{
		{teamID: "a", points: 1},
		{teamID: "b", points: 2},
	}
	_ = rankTeams(totals)
	assert.Equal(t, "a", totals[0].teamID)
	assert.Equal(t, "b", totals[1].teamID)
}

func TestSeedService_LeaderboardScenario(t *testing.T) {
	// Two teams whose users logged 9600 and 9000 calories respectively.
	store := &fakeSeedStore{}
	teamA := &repository.Team{ID: "team-a", Name: "A"}
	teamB := &repository.Team{ID: "team-b", Name: "B"}
	aID, bID := teamA.ID, teamB.ID
	store.teams = []*repository.Team{teamA, teamB}
	store.users = []*repository.User{
		{ID: "u1", TeamID: &aID},
		{ID: "u2", TeamID: &bID},
	}
	store.activities = []*repository.Activity{
		{ID: "a1", UserID: "u1", CaloriesBurned: 9600},
		{ID: "a2", UserID: "u2", CaloriesBurned: 9000},
	}

	seeder := newSeedServiceWithStore(store)

	created, err := seeder.buildLeaderboard(context.Background(), store.teams)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	require.Len(t, store.leaderboard, 2)
	assert.Equal(t, "team-a", store.leaderboard[0].TeamID)
	assert.Equal(t, 9600, store.leaderboard[0].TotalPoints)
	assert.Equal(t, 1, store.leaderboard[0].Rank)
	assert.Equal(t, "team-b", store.leaderboard[1].TeamID)
	assert.Equal(t, 9000, store.leaderboard[1].TotalPoints)
	assert.Equal(t, 2, store.leaderboard[1].Rank)
}
