package routes

import (
	"swipe_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterFeedRoutes sets up the discovery feed route
func RegisterFeedRoutes(r *mux.Router, controller *controllers.FeedController) {
	r.HandleFunc("/feed", controller.GetFeed).Methods("GET")
}
