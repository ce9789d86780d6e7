package routes

import (
	"swipe_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for profile operations under /users
func RegisterUserProfileRoutes(r *mux.Router, controller *controllers.UserProfileController) {
	userRouter := r.PathPrefix("/users").Subrouter()

	userRouter.HandleFunc("", controller.CreateUserProfile).Methods("POST")
	userRouter.HandleFunc("/", controller.CreateUserProfile).Methods("POST")
	userRouter.HandleFunc("/{userId}", controller.GetUserProfileByID).Methods("GET")
}
