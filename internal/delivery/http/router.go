package http

import (
	"net/http"

	"clinica-api/internal/delivery/http/handler"
	"clinica-api/internal/delivery/http/middleware"
	"clinica-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	cidadeHandler       *handler.CidadeHandler
	medicoHandler       *handler.MedicoHandler
	pacienteHandler     *handler.PacienteHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	metricsMiddleware   *middleware.MetricsMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	cidadeHandler *handler.CidadeHandler,
	medicoHandler *handler.MedicoHandler,
	pacienteHandler *handler.PacienteHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		cidadeHandler:       cidadeHandler,
		medicoHandler:       medicoHandler,
		pacienteHandler:     pacienteHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
		metricsMiddleware:   metricsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.Message(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	// Health check and metrics
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", r.metricsMiddleware.Handler()).Methods(http.MethodGet)

	// Auth
	r.router.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	r.router.Handle("/logout", r.protect(r.authHandler.Logout)).Methods(http.MethodPost)
	r.router.Handle("/user", r.protect(r.authHandler.GetCurrentUser)).Methods(http.MethodGet)

	// Cidades
	r.router.HandleFunc("/cidades", r.cidadeHandler.GetAllCidades).Methods(http.MethodGet)
	r.router.Handle("/cidades", r.protect(r.cidadeHandler.CreateCidade)).Methods(http.MethodPost)
	r.router.HandleFunc("/cidades/{id:[0-9]+}", r.cidadeHandler.GetCidade).Methods(http.MethodGet)
	r.router.Handle("/cidades/{id:[0-9]+}", r.protect(r.cidadeHandler.UpdateCidade)).Methods(http.MethodPut)
	r.router.Handle("/cidades/{id:[0-9]+}", r.protect(r.cidadeHandler.DeleteCidade)).Methods(http.MethodDelete)
	r.router.HandleFunc("/cidades/{id:[0-9]+}/medicos", r.cidadeHandler.GetMedicosByCidade).Methods(http.MethodGet)

	// Medicos
	r.router.HandleFunc("/medicos", r.medicoHandler.GetAllMedicos).Methods(http.MethodGet)
	r.router.Handle("/medicos", r.protect(r.medicoHandler.CreateMedico)).Methods(http.MethodPost)
	r.router.HandleFunc("/medicos/{id:[0-9]+}", r.medicoHandler.GetMedico).Methods(http.MethodGet)
	r.router.Handle("/medicos/{id:[0-9]+}", r.protect(r.medicoHandler.UpdateMedico)).Methods(http.MethodPut)
	r.router.Handle("/medicos/{id:[0-9]+}", r.protect(r.medicoHandler.DeleteMedico)).Methods(http.MethodDelete)
	r.router.Handle("/medicos/{id:[0-9]+}/pacientes", r.protect(r.medicoHandler.GetPacientes)).Methods(http.MethodGet)
	r.router.Handle("/medicos/{id:[0-9]+}/pacientes", r.protect(r.medicoHandler.AttachPaciente)).Methods(http.MethodPost)

	// Pacientes (protected)
	pacientes := r.router.PathPrefix("/pacientes").Subrouter()
	pacientes.Use(r.authMiddleware.Authenticate)
	pacientes.HandleFunc("", r.pacienteHandler.GetAllPacientes).Methods(http.MethodGet)
	pacientes.HandleFunc("", r.pacienteHandler.CreatePaciente).Methods(http.MethodPost)
	pacientes.HandleFunc("/{id:[0-9]+}", r.pacienteHandler.GetPaciente).Methods(http.MethodGet)
	pacientes.HandleFunc("/{id:[0-9]+}", r.pacienteHandler.UpdatePaciente).Methods(http.MethodPut)
	pacientes.HandleFunc("/{id:[0-9]+}", r.pacienteHandler.DeletePaciente).Methods(http.MethodDelete)

	// Audit logs (protected)
	audit := r.router.PathPrefix("/audit-logs").Subrouter()
	audit.Use(r.authMiddleware.Authenticate)
	audit.HandleFunc("", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)
	audit.HandleFunc("/{id:[0-9]+}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Preflight requests are answered by the CORS middleware
	r.router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.router.Use(r.metricsMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.rateLimitMiddleware.Handle)

	return r.router
}

func (r *Router) protect(h http.HandlerFunc) http.Handler {
	return r.authMiddleware.Authenticate(h)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
