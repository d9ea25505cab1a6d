package wire

import (
	"net/http"

	"business-buddy/internal/adaptor"
	"business-buddy/internal/data/store"
	"business-buddy/internal/usecase"
	"business-buddy/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(st *store.Store, completer usecase.Completer, logger *zap.Logger) *App {
	service := usecase.NewService(st, completer, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireMentoring(r, handler.Booking)
	wireChat(r, handler.Chat)
	wireTools(r, handler.Tools)
	wireDashboard(r, handler.Dashboard)

	// Health check and metrics endpoints
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
