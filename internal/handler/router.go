package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gardening-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux     *http.ServeMux
	logger  *slog.Logger
	handler *Handler
}

// NewRouter создаёт новый роутер
func NewRouter(handler *Handler, logger *slog.Logger) *Router {
	return &Router{
		mux:     http.NewServeMux(),
		logger:  logger,
		handler: handler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	// Регистрируем обработчики
	r.mux.HandleFunc("/api/offices/", r.officesRouter)
	r.mux.HandleFunc("/api/customers/", r.customersRouter)
	r.mux.HandleFunc("/api/employees/", r.employeesRouter)

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

// officesRouter обрабатывает все запросы к /api/offices/
func (r *Router) officesRouter(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	switch path := subPath(req, "/api/offices"); path {
	case "":
		r.handler.GetAllOffices(w, req)
	case "code-and-city":
		r.handler.OfficeCodeAndCity(w, req)
	case "in-spain":
		r.handler.OfficesInSpain(w, req)
	case "addresses-with-customers-in-fuenlabrada":
		r.handler.OfficeAddressesWithCustomersInFuenlabrada(w, req)
	case "without-frutales-representatives":
		r.handler.OfficesWithoutFrutalesRepresentatives(w, req)
	default:
		if strings.Contains(path, "/") {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}
		// /api/offices/{code}
		r.handler.GetOfficeByCode(w, req, path)
	}
}

// customersRouter обрабатывает все запросы к /api/customers/
func (r *Router) customersRouter(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	switch path := subPath(req, "/api/customers"); path {
	case "":
		r.handler.GetAllCustomers(w, req)
	case "spanish-customers":
		r.handler.SpanishCustomers(w, req)
	case "madrid-representatives":
		r.handler.MadridRepresentatives(w, req)
	case "with-payments":
		r.handler.CustomersWithPayments(w, req)
	case "without-payments":
		r.handler.CustomersWithoutPayments(w, req)
	case "without-orders":
		r.handler.CustomersWithoutOrders(w, req)
	case "without-orders-and-payments":
		r.handler.CustomersWithoutOrdersAndPayments(w, req)
	case "unpaid-orders":
		r.handler.CustomersWithUnpaidOrders(w, req)
	case "count-by-country":
		r.handler.CustomerCountByCountry(w, req)
	case "count-customers":
		r.handler.CustomerCount(w, req)
	case "count-customers-madrid":
		r.handler.CustomerCountInMadrid(w, req)
	case "count-by-city-starting-with-m":
		r.handler.CustomerCountByCityStartingWithM(w, req)
	case "count-without-sales-representative":
		r.handler.CustomerCountWithoutSalesRep(w, req)
	case "sales-representatives":
		r.handler.CustomersWithSalesRepresentatives(w, req)
	case "names-representatives-customers-city":
		r.handler.CustomersWithRepAndOfficeCity(w, req)
	case "without-payments-with-city-sales-representative":
		r.handler.CustomersWithoutPaymentsWithRepCity(w, req)
	default:
		if strings.Contains(path, "/") {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}
		// /api/customers/{id}
		r.handler.GetCustomerByID(w, req, path)
	}
}

// employeesRouter обрабатывает все запросы к /api/employees/
func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	switch path := subPath(req, "/api/employees"); path {
	case "":
		r.handler.GetAllEmployees(w, req)
	case "managers":
		r.handler.EmployeeManagers(w, req)
	default:
		if strings.Contains(path, "/") {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}
		// /api/employees/{id}
		r.handler.GetEmployeeByID(w, req, path)
	}
}

func subPath(req *http.Request, prefix string) string {
	path := strings.TrimPrefix(req.URL.Path, prefix)
	return strings.Trim(path, "/")
}
