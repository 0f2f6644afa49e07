package http

import (
	"net/http"

	"hospital-portal/internal/delivery/http/handler"
	"hospital-portal/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	contentHandler      *handler.ContentHandler
	doctorHandler       *handler.DoctorHandler
	visitingHourHandler *handler.VisitingHourHandler
	dashboardHandler    *handler.DashboardHandler
	guestHandler        *handler.GuestHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	metricsMiddleware   *middleware.MetricsMiddleware
	metricsHandler      http.Handler
	storageHandler      http.Handler
}

type RouterConfig struct {
	AuthHandler         *handler.AuthHandler
	ContentHandler      *handler.ContentHandler
	DoctorHandler       *handler.DoctorHandler
	VisitingHourHandler *handler.VisitingHourHandler
	DashboardHandler    *handler.DashboardHandler
	GuestHandler        *handler.GuestHandler
	AuthMiddleware      *middleware.AuthMiddleware
	CORSMiddleware      *middleware.CORSMiddleware
	MetricsMiddleware   *middleware.MetricsMiddleware
	// MetricsHandler serves /metrics.
	MetricsHandler http.Handler
	// StorageHandler serves uploaded files under /storage/. It is nil when
	// files are served by an external bucket.
	StorageHandler http.Handler
}

func NewRouter(cfg RouterConfig) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         cfg.AuthHandler,
		contentHandler:      cfg.ContentHandler,
		doctorHandler:       cfg.DoctorHandler,
		visitingHourHandler: cfg.VisitingHourHandler,
		dashboardHandler:    cfg.DashboardHandler,
		guestHandler:        cfg.GuestHandler,
		authMiddleware:      cfg.AuthMiddleware,
		corsMiddleware:      cfg.CORSMiddleware,
		metricsMiddleware:   cfg.MetricsMiddleware,
		metricsHandler:      cfg.MetricsHandler,
		storageHandler:      cfg.StorageHandler,
	}
}

// Setup registers every route. CORS wraps the whole router so preflight
// requests are answered even though no route accepts OPTIONS.
func (r *Router) Setup() http.Handler {
	if r.metricsHandler != nil {
		r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)
	}
	if r.storageHandler != nil {
		r.router.PathPrefix("/storage/").Handler(http.StripPrefix("/storage", r.storageHandler)).Methods(http.MethodGet, http.MethodHead)
	}

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public pages
	api.HandleFunc("/home", r.guestHandler.Home).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.guestHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/today", r.guestHandler.TodayDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.guestHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/education", r.guestHandler.ListEducation).Methods(http.MethodGet)
	api.HandleFunc("/education/{id}", r.guestHandler.GetArticle).Methods(http.MethodGet)
	api.HandleFunc("/visiting-hours", r.guestHandler.GetVisitingHours).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentAdmin).Methods(http.MethodGet)

	// Admin routes (protected)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)

	admin.HandleFunc("/dashboard", r.dashboardHandler.GetDashboard).Methods(http.MethodGet)

	// Content management
	admin.HandleFunc("/contents", r.contentHandler.ListContents).Methods(http.MethodGet)
	admin.HandleFunc("/contents", r.contentHandler.CreateContent).Methods(http.MethodPost)
	admin.HandleFunc("/contents/types", r.contentHandler.GetContentTypes).Methods(http.MethodGet)
	admin.HandleFunc("/contents/{id}", r.contentHandler.GetContent).Methods(http.MethodGet)
	admin.HandleFunc("/contents/{id}", r.contentHandler.UpdateContent).Methods(http.MethodPut)
	admin.HandleFunc("/contents/{id}", r.contentHandler.DeleteContent).Methods(http.MethodDelete)
	admin.HandleFunc("/contents/{id}/images", r.contentHandler.UpdateContentImages).Methods(http.MethodPost)

	// Doctor management
	admin.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)
	admin.HandleFunc("/doctors/{id}/photo", r.doctorHandler.UpdateDoctorPhoto).Methods(http.MethodPost)

	// Visiting hours
	admin.HandleFunc("/visiting-hours", r.visitingHourHandler.GetVisitingHours).Methods(http.MethodGet)
	admin.HandleFunc("/visiting-hours", r.visitingHourHandler.UpdateVisitingHours).Methods(http.MethodPut)

	if r.metricsMiddleware != nil {
		r.router.Use(r.metricsMiddleware.Handle)
	}

	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
