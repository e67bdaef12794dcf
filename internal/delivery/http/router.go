package http

import (
	"net/http"

	"medicare-plus/internal/delivery/http/handler"
	"medicare-plus/internal/delivery/http/middleware"
	"medicare-plus/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	catalogHandler   *handler.CatalogHandler
	bookingHandler   *handler.BookingHandler
	paymentHandler   *handler.PaymentHandler
	receiptHandler   *handler.ReceiptHandler
	careerHandler    *handler.CareerHandler
	clientMiddleware *middleware.ClientMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	catalogHandler *handler.CatalogHandler,
	bookingHandler *handler.BookingHandler,
	paymentHandler *handler.PaymentHandler,
	receiptHandler *handler.ReceiptHandler,
	careerHandler *handler.CareerHandler,
	clientMiddleware *middleware.ClientMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		catalogHandler:   catalogHandler,
		bookingHandler:   bookingHandler,
		paymentHandler:   paymentHandler,
		receiptHandler:   receiptHandler,
		careerHandler:    careerHandler,
		clientMiddleware: clientMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Catalog routes (public, no client context)
	api.HandleFunc("/departments", r.catalogHandler.ListDepartments).Methods(http.MethodGet)
	api.HandleFunc("/departments/{id}", r.catalogHandler.GetDepartment).Methods(http.MethodGet)
	api.HandleFunc("/departments/{id}/doctors", r.catalogHandler.GetDepartmentDoctors).Methods(http.MethodGet)
	api.HandleFunc("/slots", r.catalogHandler.GetSlots).Methods(http.MethodGet)
	api.HandleFunc("/quotes", r.catalogHandler.Quote).Methods(http.MethodPost)

	// Careers
	api.HandleFunc("/careers/openings", r.careerHandler.ListOpenings).Methods(http.MethodGet)
	api.HandleFunc("/careers/applications", r.careerHandler.Apply).Methods(http.MethodPost)

	// Booking routes (bound to the caller's client context)
	bookings := api.PathPrefix("/bookings").Subrouter()
	bookings.Use(r.clientMiddleware.Identify)
	bookings.HandleFunc("", r.bookingHandler.StartSession).Methods(http.MethodPost)
	bookings.HandleFunc("/{id}", r.bookingHandler.GetSession).Methods(http.MethodGet)
	bookings.HandleFunc("/{id}/department", r.bookingHandler.SelectDepartment).Methods(http.MethodPut)
	bookings.HandleFunc("/{id}/doctor", r.bookingHandler.SelectDoctor).Methods(http.MethodPut)
	bookings.HandleFunc("/{id}/submit", r.bookingHandler.SubmitForm).Methods(http.MethodPost)
	bookings.HandleFunc("/{id}/back", r.bookingHandler.Back).Methods(http.MethodPost)
	bookings.HandleFunc("/{id}/reset", r.bookingHandler.Reset).Methods(http.MethodPost)
	bookings.HandleFunc("/{id}/payments", r.paymentHandler.SubmitPayment).Methods(http.MethodPost)
	bookings.HandleFunc("/{id}/receipt", r.receiptHandler.GetReceipt).Methods(http.MethodGet)

	// Client storage
	storage := api.PathPrefix("/storage").Subrouter()
	storage.Use(r.clientMiddleware.Identify)
	storage.HandleFunc("/receipt-identifiers", r.receiptHandler.ClearIdentifiers).Methods(http.MethodDelete)

	// Anything else. Router middleware does not run for unmatched requests,
	// so these carry CORS themselves to let preflight requests through.
	r.router.NotFoundHandler = r.corsMiddleware.Handle(http.HandlerFunc(r.notFound))
	r.router.MethodNotAllowedHandler = r.corsMiddleware.Handle(http.HandlerFunc(r.methodNotAllowed))

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

func (r *Router) notFound(w http.ResponseWriter, req *http.Request) {
	response.NotFound(w, "Route not found")
}

func (r *Router) methodNotAllowed(w http.ResponseWriter, req *http.Request) {
	response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
}
