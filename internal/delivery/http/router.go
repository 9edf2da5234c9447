package http

import (
	"net/http"

	"hospital-appointment-service/internal/delivery/http/handler"
	"hospital-appointment-service/internal/delivery/http/middleware"
	"hospital-appointment-service/internal/infrastructure/metrics"

	"github.com/gorilla/mux"
)

type Router struct {
	router                   *mux.Router
	appointmentHandler       *handler.AppointmentHandler
	doctorAppointmentHandler *handler.DoctorAppointmentHandler
	doctorHandler            *handler.DoctorHandler
	directoryHandler         *handler.DirectoryHandler
	doctorScheduleHandler    *handler.DoctorScheduleHandler
	visitHandler             *handler.VisitHandler
	itemHandler              *handler.ItemHandler
	auditLogHandler          *handler.AuditLogHandler
	authMiddleware           *middleware.AuthMiddleware
	corsMiddleware           *middleware.CORSMiddleware
	metrics                  *metrics.Collector
}

func NewRouter(
	appointmentHandler *handler.AppointmentHandler,
	doctorAppointmentHandler *handler.DoctorAppointmentHandler,
	doctorHandler *handler.DoctorHandler,
	directoryHandler *handler.DirectoryHandler,
	doctorScheduleHandler *handler.DoctorScheduleHandler,
	visitHandler *handler.VisitHandler,
	itemHandler *handler.ItemHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	metrics *metrics.Collector,
) *Router {
	return &Router{
		router:                   mux.NewRouter(),
		appointmentHandler:       appointmentHandler,
		doctorAppointmentHandler: doctorAppointmentHandler,
		doctorHandler:            doctorHandler,
		directoryHandler:         directoryHandler,
		doctorScheduleHandler:    doctorScheduleHandler,
		visitHandler:             visitHandler,
		itemHandler:              itemHandler,
		auditLogHandler:          auditLogHandler,
		authMiddleware:           authMiddleware,
		corsMiddleware:           corsMiddleware,
		metrics:                  metrics,
	}
}

func (r *Router) Setup() *mux.Router {
	// Prometheus scrape endpoint
	r.router.Handle("/metrics", r.metrics.Handler()).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Routes open to any authenticated role
	shared := api.NewRoute().Subrouter()
	shared.Use(r.authMiddleware.Authenticate)
	shared.HandleFunc("/departments", r.directoryHandler.ListDepartments).Methods(http.MethodGet)
	shared.HandleFunc("/departments/{id}/doctors", r.directoryHandler.ListDepartmentDoctors).Methods(http.MethodGet)
	shared.HandleFunc("/doctors", r.directoryHandler.ListAvailableDoctors).Methods(http.MethodGet)
	shared.HandleFunc("/doctors/{id}/status", r.doctorHandler.GetDutyStatus).Methods(http.MethodGet)
	shared.HandleFunc("/items", r.itemHandler.ListItems).Methods(http.MethodGet)

	// Patient routes
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.Use(middleware.RequirePatient)
	appointments.HandleFunc("", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	appointments.HandleFunc("/mine", r.appointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.CancelAppointment).Methods(http.MethodDelete)

	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/appointments/{id}/reminder", r.appointmentHandler.GetReminder).Methods(http.MethodGet)
	patient.HandleFunc("/visits", r.visitHandler.GetMyVisits).Methods(http.MethodGet)
	patient.HandleFunc("/visits/{id}", r.visitHandler.GetVisitDetail).Methods(http.MethodGet)

	// Doctor routes
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/appointments", r.doctorAppointmentHandler.GetMyAppointments).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id}", r.doctorAppointmentHandler.GetAppointmentDetail).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id}/complete", r.doctorAppointmentHandler.CompleteConsultation).Methods(http.MethodPost)
	doctor.HandleFunc("/schedules", r.doctorScheduleHandler.GetMySchedules).Methods(http.MethodGet)
	doctor.HandleFunc("/schedules", r.doctorScheduleHandler.CreateSchedule).Methods(http.MethodPost)
	doctor.HandleFunc("/schedules/{id}", r.doctorScheduleHandler.UpdateScheduleStatus).Methods(http.MethodPut)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}/status", r.doctorHandler.UpdateDoctorStatus).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}/schedules", r.doctorScheduleHandler.GetSchedulesByDoctor).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	r.router.Use(r.metrics.HTTPMiddleware)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status": "ok"}`))
}
