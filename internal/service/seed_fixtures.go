package service

import "github.com/octofit-labs/octofit-backend/internal/model"

// Activity types cycle in this order when generating per-user activities.
var activityTypes = []string{"Running", "Cycling", "Swimming", "Weight Training", "Yoga", "Boxing"}

// Types that carry a distance; the rest leave it absent.
var distanceActivityTypes = map[string]bool{
	"Running":  true,
	"Cycling":  true,
	"Swimming": true,
}

type teamFixture struct {
	Name        string
	Description string
}

var teamFixtures = []teamFixture{
	{Name: "Team Marvel", Description: "Earth's Mightiest Heroes united for fitness excellence"},
	{Name: "Team DC", Description: "Justice League champions committed to peak performance"},
}

type userFixture struct {
	Email    string
	Username string
	Password string
	Team     int // index into teamFixtures
}

var userFixtures = []userFixture{
	{Email: "ironman@avengers.com", Username: "Iron Man", Password: "stark123", Team: 0},
	{Email: "captainamerica@avengers.com", Username: "Captain America", Password: "shield123", Team: 0},
	{Email: "thor@asgard.com", Username: "Thor", Password: "mjolnir123", Team: 0},
	{Email: "blackwidow@shield.com", Username: "Black Widow", Password: "natasha123", Team: 0},
	{Email: "hulk@gamma.com", Username: "Hulk", Password: "smash123", Team: 0},
	{Email: "spiderman@daily.com", Username: "Spider-Man", Password: "parker123", Team: 0},
	{Email: "superman@dailyplanet.com", Username: "Superman", Password: "krypton123", Team: 1},
	{Email: "batman@wayne.com", Username: "Batman", Password: "gotham123", Team: 1},
	{Email: "wonderwoman@themyscira.com", Username: "Wonder Woman", Password: "diana123", Team: 1},
	{Email: "flash@central.com", Username: "Flash", Password: "speedforce123", Team: 1},
	{Email: "aquaman@atlantis.com", Username: "Aquaman", Password: "arthur123", Team: 1},
	{Email: "greenlantern@oa.com", Username: "Green Lantern", Password: "willpower123", Team: 1},
}

func iptr(n int) *int { return &n }

var workoutFixtures = []*model.Workout{
	{
		Name:        "Superhero Strength",
		Description: "Build strength like the mightiest heroes",
		Difficulty:  model.DifficultyHard,
		Duration:    60,
		Category:    "Strength",
		Exercises: []model.Exercise{
			{Name: "Deadlifts", Sets: iptr(4), Reps: iptr(8)},
			{Name: "Bench Press", Sets: iptr(4), Reps: iptr(10)},
			{Name: "Squats", Sets: iptr(4), Reps: iptr(12)},
			{Name: "Pull-ups", Sets: iptr(3), Reps: iptr(15)},
		},
	},
	{
		Name:        "Speed Force Cardio",
		Description: "Run at super speed with this cardio blast",
		Difficulty:  model.DifficultyMedium,
		Duration:    45,
		Category:    "Cardio",
		Exercises: []model.Exercise{
			{Name: "Sprint Intervals", Duration: "20 minutes"},
			{Name: "Jump Rope", Duration: "10 minutes"},
			{Name: "Burpees", Sets: iptr(3), Reps: iptr(20)},
			{Name: "Mountain Climbers", Sets: iptr(3), Reps: iptr(30)},
		},
	},
	{
		Name:        "Warrior Flexibility",
		Description: "Stretch and flow like an Amazonian warrior",
		Difficulty:  model.DifficultyEasy,
		Duration:    30,
		Category:    "Flexibility",
		Exercises: []model.Exercise{
			{Name: "Sun Salutations", Reps: iptr(5)},
			{Name: "Warrior Poses", Duration: "10 minutes"},
			{Name: "Deep Stretches", Duration: "15 minutes"},
			{Name: "Meditation", Duration: "5 minutes"},
		},
	},
	{
		Name:        "Web-Slinger Agility",
		Description: "Train agility like your friendly neighborhood Spider-Man",
		Difficulty:  model.DifficultyMedium,
		Duration:    40,
		Category:    "Agility",
		Exercises: []model.Exercise{
			{Name: "Ladder Drills", Duration: "10 minutes"},
			{Name: "Box Jumps", Sets: iptr(3), Reps: iptr(15)},
			{Name: "Cone Drills", Duration: "10 minutes"},
			{Name: "Plyometric Push-ups", Sets: iptr(3), Reps: iptr(12)},
		},
	},
	{
		Name:        "Atlantean Swim Workout",
		Description: "Master the waters with this aquatic training",
		Difficulty:  model.DifficultyHard,
		Duration:    50,
		Category:    "Swimming",
		Exercises: []model.Exercise{
			{Name: "Freestyle", Distance: "1000m"},
			{Name: "Backstroke", Distance: "500m"},
			{Name: "Breaststroke", Distance: "500m"},
			{Name: "Butterfly", Distance: "200m"},
		},
	},
	{
		Name:        "Arc Reactor Core",
		Description: "Build a powerful core like Tony Stark's arc reactor",
		Difficulty:  model.DifficultyMedium,
		Duration:    35,
		Category:    "Core",
		Exercises: []model.Exercise{
			{Name: "Plank", Duration: "3 minutes"},
			{Name: "Russian Twists", Sets: iptr(3), Reps: iptr(30)},
			{Name: "Leg Raises", Sets: iptr(3), Reps: iptr(20)},
			{Name: "Bicycle Crunches", Sets: iptr(3), Reps: iptr(40)},
		},
	},
}
