package http

import (
	"fmt"
	"net/http"

	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"
	"doctor-directory/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	doctorHandler     *handler.DoctorHandler
	directoryHandler  *handler.DirectoryHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
	cacheMiddleware   *middleware.CacheMiddleware
}

// NewRouter wires the API. cacheMiddleware may be nil when no cache is configured.
func NewRouter(
	doctorHandler *handler.DoctorHandler,
	directoryHandler *handler.DirectoryHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	cacheMiddleware *middleware.CacheMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		doctorHandler:     doctorHandler,
		directoryHandler:  directoryHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
		cacheMiddleware:   cacheMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Directory lifecycle
	api.HandleFunc("/directory", r.directoryHandler.GetStatus).Methods(http.MethodGet)
	api.HandleFunc("/directory/reload", r.directoryHandler.Reload).Methods(http.MethodPost)

	// Read views over the loaded doctor set
	api.Handle("/doctors", r.cached(r.doctorHandler.ListDoctors)).Methods(http.MethodGet)
	api.Handle("/doctors/suggestions", r.cached(r.doctorHandler.SuggestDoctors)).Methods(http.MethodGet)
	api.Handle("/specialties", r.cached(r.doctorHandler.ListSpecialties)).Methods(http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(r.notFound)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

// cached wraps a read view in the response cache when one is configured.
func (r *Router) cached(h http.HandlerFunc) http.Handler {
	if r.cacheMiddleware == nil {
		return h
	}
	return r.cacheMiddleware.Handle(h)
}

func (r *Router) notFound(w http.ResponseWriter, req *http.Request) {
	response.NotFound(w, fmt.Sprintf("No route for %s %s", req.Method, req.URL.Path))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
