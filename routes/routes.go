package routes

import (
	"net/http"

	"swipe_server/controllers"
	"swipe_server/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Users  *controllers.UserProfileController
	Feed   *controllers.FeedController
	Swipes *controllers.SwipeController
}

// NewRouter builds the API router.
func NewRouter(c Controllers) *mux.Router {
	r := mux.NewRouter()
	r.Use(metrics.Middleware)

	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	RegisterUserProfileRoutes(r, c.Users)
	RegisterFeedRoutes(r, c.Feed)
	RegisterSwipeRoutes(r, c.Swipes)

	r.NotFoundHandler = http.HandlerFunc(controllers.NotFoundHandler)
	return r
}
