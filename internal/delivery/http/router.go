package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"daybook/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /api/events", eventController.ListEvents)
	mux.HandleFunc("POST /api/events", eventController.CreateEvent)
	mux.HandleFunc("POST /api/events-list", eventController.CreateEventList)
	mux.HandleFunc("POST /api/events/overlap", eventController.CheckOverlap)
	mux.HandleFunc("GET /api/events/{eventID}/series", eventController.GetSeries)
	mux.HandleFunc("PUT /api/events/{eventID}", eventController.UpdateEvent)
	mux.HandleFunc("DELETE /api/events/{eventID}", eventController.DeleteEvent)

	// Recurring series
	mux.HandleFunc("PUT /api/recurring-events/{seriesID}", eventController.UpdateSeries)
	mux.HandleFunc("DELETE /api/recurring-events/{seriesID}", eventController.DeleteSeries)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
