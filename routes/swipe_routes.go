package routes

import (
	"swipe_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterSwipeRoutes sets up swipe submission, match listing and pending likes
func RegisterSwipeRoutes(r *mux.Router, controller *controllers.SwipeController) {
	r.HandleFunc("/swipe", controller.HandleSwipe).Methods("POST")
	r.HandleFunc("/matches", controller.GetMatches).Methods("GET")
	r.HandleFunc("/likes", controller.GetNewLikes).Methods("GET")
}
