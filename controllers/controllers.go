package controllers

import (
	"net/http"

	"swipe_server/models"
	"swipe_server/utils"
)

// WelcomeHandler reports the service name
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok", "service": models.ServiceName})
}

// HealthCheckHandler provides a basic health check
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// NotFoundHandler answers unknown routes with an error envelope
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusNotFound, models.ErrorCodeNotFound, "route "+r.URL.Path+" not found")
}
