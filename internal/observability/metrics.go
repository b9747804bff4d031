package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	seededRecords = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit",
		Subsystem: "seed",
		Name:      "records_created_total",
		Help:      "Number of records created by seed runs, by collection.",
	}, []string{"collection"})

	seedRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "octofit",
		Subsystem: "seed",
		Name:      "runs_total",
		Help:      "Number of completed seed runs.",
	})
)

func init() {
	prometheus.MustRegister(seededRecords, seedRuns)
}

// RecordSeededRecords updates the per-collection seed counters after a
// completed run.
func RecordSeededRecords(teams, users, activities, workouts, leaderboard int) {
	seededRecords.WithLabelValues("teams").Add(float64(teams))
	seededRecords.WithLabelValues("users").Add(float64(users))
	seededRecords.WithLabelValues("activities").Add(float64(activities))
	seededRecords.WithLabelValues("workouts").Add(float64(workouts))
	seededRecords.WithLabelValues("leaderboard").Add(float64(leaderboard))
	seedRuns.Inc()
}
