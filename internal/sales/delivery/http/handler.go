package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/salestrack/sales-ledger/internal/sales/domain"
	"github.com/salestrack/sales-ledger/internal/sales/usecase/command"
	"github.com/salestrack/sales-ledger/internal/sales/usecase/query"
	"github.com/salestrack/sales-ledger/kafka"
	"github.com/salestrack/sales-ledger/pkg/logger"
)

// Metrics are package level so handler construction stays repeatable; the
// default registry rejects duplicate registration.
var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_service_requests_total",
			Help: "Total number of requests to the sales service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sales_service_request_duration_seconds",
			Help:    "Duration of sales service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestSummary = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "sales_service_request_duration_summary",
			Help: "Summary of request durations with client-side quantiles",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	ledgerSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sales_service_ledger_size",
			Help: "Number of sale records in the ledger",
		},
	)
)

func init() {
	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(ledgerSize)
}

// SalesHandler handles HTTP requests for the sales ledger using CQRS pattern
type SalesHandler struct {
	// Command handlers
	recordHandler *command.RecordSaleHandler
	updateHandler *command.UpdateSaleHandler
	deleteHandler *command.DeleteSaleHandler

	// Query handlers
	getHandler        *query.GetSaleHandler
	listHandler       *query.ListSalesHandler
	cumulativeHandler *query.CumulativeProfitHandler
	dailyHandler      *query.DailyProfitHandler
	monthlyHandler    *query.MonthlyProfitHandler

	repo      domain.SaleRepository
	publisher *kafka.Publisher
}

// NewSalesHandlerWithDI creates a new sales handler using dependency
// injection. This is what Wire builds.
func NewSalesHandlerWithDI(
	recordHandler *command.RecordSaleHandler,
	updateHandler *command.UpdateSaleHandler,
	deleteHandler *command.DeleteSaleHandler,
	getHandler *query.GetSaleHandler,
	listHandler *query.ListSalesHandler,
	cumulativeHandler *query.CumulativeProfitHandler,
	dailyHandler *query.DailyProfitHandler,
	monthlyHandler *query.MonthlyProfitHandler,
	repo domain.SaleRepository,
) *SalesHandler {
	return &SalesHandler{
		recordHandler:     recordHandler,
		updateHandler:     updateHandler,
		deleteHandler:     deleteHandler,
		getHandler:        getHandler,
		listHandler:       listHandler,
		cumulativeHandler: cumulativeHandler,
		dailyHandler:      dailyHandler,
		monthlyHandler:    monthlyHandler,
		repo:              repo,
	}
}

// WithPublisher attaches the Kafka publisher for sale lifecycle events.
// Without one the handler simply skips publishing.
func (h *SalesHandler) WithPublisher(p *kafka.Publisher) *SalesHandler {
	h.publisher = p
	return h
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *SalesHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers all sales routes
func (h *SalesHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/sales", h.metricsMiddleware("/api/sales", h.ListSales)).Methods("GET")
	router.HandleFunc("/api/sales", h.metricsMiddleware("/api/sales", h.RecordSale)).Methods("POST")
	router.HandleFunc("/api/sales/profit/cumulative", h.metricsMiddleware("/api/sales/profit/cumulative", h.CumulativeProfit)).Methods("GET")
	router.HandleFunc("/api/sales/profit/daily", h.metricsMiddleware("/api/sales/profit/daily", h.DailyProfit)).Methods("GET")
	router.HandleFunc("/api/sales/profit/monthly", h.metricsMiddleware("/api/sales/profit/monthly", h.MonthlyProfit)).Methods("GET")
	router.HandleFunc("/api/sales/{id}", h.metricsMiddleware("/api/sales/{id}", h.GetSale)).Methods("GET")
	router.HandleFunc("/api/sales/{id}", h.metricsMiddleware("/api/sales/{id}", h.UpdateSale)).Methods("PUT")
	router.HandleFunc("/api/sales/{id}", h.metricsMiddleware("/api/sales/{id}", h.DeleteSale)).Methods("DELETE")
}

// RegisterHealthCheck registers the health check endpoint
func (h *SalesHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  "database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
		})
	}).Methods("GET")
}

// RecordSale handles POST /api/sales
func (h *SalesHandler) RecordSale(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Product      string    `json:"product"`
		Quantity     int       `json:"quantity"`
		CostPrice    float64   `json:"costPrice"`
		SellingPrice float64   `json:"sellingPrice"`
		OccurredAt   time.Time `json:"occurredAt"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Failed to add sale", "invalid request body"))
		return
	}

	cmd := command.RecordSaleCommand{
		Product:      req.Product,
		Quantity:     req.Quantity,
		CostPrice:    req.CostPrice,
		SellingPrice: req.SellingPrice,
		OccurredAt:   req.OccurredAt,
	}

	sale, err := h.recordHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondFailure(w, r, err, "Failed to add sale")
		return
	}

	h.publishEvent(r, kafka.EventTypeSaleRecorded, sale)
	h.updateLedgerMetric(r)

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Sale added successfully",
		"sale":    sale,
		"profit":  sale.Profit,
	})
}

// ListSales handles GET /api/sales
func (h *SalesHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.listHandler.Handle(r.Context(), query.ListSalesQuery{})
	if err != nil {
		h.respondFailure(w, r, err, "Failed to fetch sales")
		return
	}

	respondJSON(w, http.StatusOK, sales)
}

// GetSale handles GET /api/sales/{id}
func (h *SalesHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	sale, err := h.getHandler.Handle(r.Context(), query.GetSaleQuery{ID: vars["id"]})
	if err != nil {
		h.respondFailure(w, r, err, "Failed to fetch sale")
		return
	}

	respondJSON(w, http.StatusOK, sale)
}

// UpdateSale handles PUT /api/sales/{id}
func (h *SalesHandler) UpdateSale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req struct {
		Product      string  `json:"product"`
		Quantity     int     `json:"quantity"`
		CostPrice    float64 `json:"costPrice"`
		SellingPrice float64 `json:"sellingPrice"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody("Failed to update sale", "invalid request body"))
		return
	}

	cmd := command.UpdateSaleCommand{
		ID:           vars["id"],
		Product:      req.Product,
		Quantity:     req.Quantity,
		CostPrice:    req.CostPrice,
		SellingPrice: req.SellingPrice,
	}

	sale, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondFailure(w, r, err, "Failed to update sale")
		return
	}

	h.publishEvent(r, kafka.EventTypeSaleUpdated, sale)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Sale updated successfully",
		"sale":    sale,
	})
}

// DeleteSale handles DELETE /api/sales/{id}
func (h *SalesHandler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteSaleCommand{ID: vars["id"]}); err != nil {
		h.respondFailure(w, r, err, "Failed to delete sale")
		return
	}

	if h.publisher != nil {
		if err := h.publisher.PublishSaleEvent(r.Context(), kafka.SaleEvent{
			EventType: kafka.EventTypeSaleDeleted,
			SaleID:    vars["id"],
		}); err != nil {
			logger.Warn(r.Context()).Err(err).Str("sale_id", vars["id"]).Msg("Failed to publish sale event")
		}
	}
	h.updateLedgerMetric(r)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Sale deleted successfully",
	})
}

// CumulativeProfit handles GET /api/sales/profit/cumulative
func (h *SalesHandler) CumulativeProfit(w http.ResponseWriter, r *http.Request) {
	total, err := h.cumulativeHandler.Handle(r.Context(), query.CumulativeProfitQuery{})
	if err != nil {
		h.respondFailure(w, r, err, "Failed to calculate profit")
		return
	}

	respondJSON(w, http.StatusOK, map[string]float64{"cumulativeProfit": total})
}

// DailyProfit handles GET /api/sales/profit/daily
func (h *SalesHandler) DailyProfit(w http.ResponseWriter, r *http.Request) {
	total, err := h.dailyHandler.Handle(r.Context(), query.DailyProfitQuery{})
	if err != nil {
		h.respondFailure(w, r, err, "Failed to calculate daily profit")
		return
	}

	respondJSON(w, http.StatusOK, map[string]float64{"dailyProfit": total})
}

// MonthlyProfit handles GET /api/sales/profit/monthly
func (h *SalesHandler) MonthlyProfit(w http.ResponseWriter, r *http.Request) {
	total, err := h.monthlyHandler.Handle(r.Context(), query.MonthlyProfitQuery{})
	if err != nil {
		h.respondFailure(w, r, err, "Failed to calculate monthly profit")
		return
	}

	respondJSON(w, http.StatusOK, map[string]float64{"monthlyProfit": total})
}

// respondFailure maps domain errors onto the wire contract: validation is a
// 400, a missing record a 404, anything else a 500.
func (h *SalesHandler) respondFailure(w http.ResponseWriter, r *http.Request, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondJSON(w, http.StatusBadRequest, errorBody(message, err.Error()))
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, map[string]string{"message": "Sale not found"})
	default:
		logger.Error(r.Context()).Err(err).Str("path", r.URL.Path).Msg(message)
		respondJSON(w, http.StatusInternalServerError, errorBody(message, err.Error()))
	}
}

func (h *SalesHandler) publishEvent(r *http.Request, eventType string, sale *domain.SaleRecord) {
	if h.publisher == nil {
		return
	}
	event := kafka.SaleEvent{
		EventType:  eventType,
		SaleID:     sale.ID,
		Product:    sale.Product,
		Quantity:   sale.Quantity,
		Profit:     sale.Profit,
		OccurredAt: sale.OccurredAt,
	}
	if err := h.publisher.PublishSaleEvent(r.Context(), event); err != nil {
		logger.Warn(r.Context()).Err(err).Str("sale_id", sale.ID).Msg("Failed to publish sale event")
	}
}

func (h *SalesHandler) updateLedgerMetric(r *http.Request) {
	if count, err := h.repo.Count(r.Context()); err == nil {
		ledgerSize.Set(float64(count))
	}
}

func errorBody(message, detail string) map[string]string {
	return map[string]string{
		"message": message,
		"error":   detail,
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
