package main

import (
	"net/http"

	"swipe_server/controllers"
	"swipe_server/routes"
	"swipe_server/services"
	"swipe_server/socket"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

// App owns every store and service for the lifetime of the process.
type App struct {
	Profiles *services.ProfileStore
	Ledger   *services.SwipeLedger
	Registry *services.MatchRegistry
	Feed     *services.FeedService
	Swipes   *services.SwipeService
	Hub      *socket.MatchHub
}

// NewApp constructs the stores once and hands them to each service.
func NewApp(logger *zap.Logger) *App {
	profiles := services.NewProfileStore(logger)
	ledger := services.NewSwipeLedger(profiles, logger)
	registry := services.NewMatchRegistry()
	hub := socket.NewMatchHub(profiles, logger)

	return &App{
		Profiles: profiles,
		Ledger:   ledger,
		Registry: registry,
		Feed:     services.NewFeedService(profiles, ledger, logger),
		Swipes:   services.NewSwipeService(profiles, ledger, registry, hub, logger),
		Hub:      hub,
	}
}

// Handler returns the full HTTP surface: the API behind CORS plus the
// Socket.IO endpoint.
func (a *App) Handler(allowedOrigins []string, logger *zap.Logger) http.Handler {
	api := routes.NewRouter(routes.Controllers{
		Users:  controllers.NewUserProfileController(a.Profiles, logger),
		Feed:   controllers.NewFeedController(a.Feed, logger),
		Swipes: controllers.NewSwipeController(a.Swipes, logger),
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(api)

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", a.Hub.Handler())
	mux.Handle("/", corsHandler)
	return mux
}
