package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	RecipesCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recipebox_recipes_created_total",
		Help: "Total number of recipes published.",
	})
	RecipeSaves = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recipebox_recipe_saves_total",
		Help: "Total number of recipes saved to a user's folder.",
	})
	ReviewsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recipebox_reviews_created_total",
		Help: "Total number of reviews posted.",
	})
	AnnouncementsPosted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recipebox_announcements_posted_total",
		Help: "Total number of announcements posted.",
	})
	LoginAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "recipebox_login_attempts_total",
		Help: "Login attempts partitioned by result.",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(
		RecipesCreated,
		RecipeSaves,
		ReviewsCreated,
		AnnouncementsPosted,
		LoginAttempts,
	)
}
