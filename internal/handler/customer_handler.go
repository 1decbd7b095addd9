package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gardening-api/internal/domain"
	"github.com/gardening-api/internal/dto"
	"github.com/gardening-api/internal/query"
)

func (h *Handler) GetAllCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.GetAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.CustomerResponse, len(customers))
	for i, customer := range customers {
		resp[i] = toCustomerResponse(&customer)
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetCustomerByID(w http.ResponseWriter, r *http.Request, rawID string) {
	number, err := strconv.Atoi(rawID)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid customer id", "customer id must be an integer")
		return
	}

	customer, err := h.customers.GetByNumber(r.Context(), number)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, toCustomerResponse(customer))
}

func (h *Handler) SpanishCustomers(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "customers-in-country", map[string]any{"country": "España"})
}

// MadridRepresentatives возвращает клиентов Мадрида, закреплённых за
// представителями из query-параметра reps; без параметра действует
// набор по умолчанию {11, 30}
func (h *Handler) MadridRepresentatives(w http.ResponseWriter, r *http.Request) {
	params := map[string]any{"city": "Madrid"}

	if rawReps := r.URL.Query().Get("reps"); rawReps != "" {
		q := dto.MadridRepsQuery{}
		for _, part := range strings.Split(rawReps, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				h.respondError(w, http.StatusBadRequest, "invalid reps parameter", "reps must be a comma-separated list of integers")
				return
			}
			q.Reps = append(q.Reps, n)
		}
		if err := h.validator.Struct(&q); err != nil {
			h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
			return
		}
		params["reps"] = q.Reps
	}

	h.report(w, r, "customers-in-city-with-reps", params)
}

func (h *Handler) CustomersWithPayments(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "customers-with-payments", nil)
}

func (h *Handler) CustomersWithoutPayments(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "customers-without-payments", nil)
}

func (h *Handler) CustomersWithoutOrders(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "customers-without-orders", nil)
}

func (h *Handler) CustomersWithoutOrdersAndPayments(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "customers-without-orders-and-payments", nil)
}

func (h *Handler) CustomersWithUnpaidOrders(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "customers-with-orders-without-payments", nil)
}

func (h *Handler) CustomerCountByCountry(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "customer-count-by-country", nil)
}

func (h *Handler) CustomerCount(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "customer-count", nil)
}

func (h *Handler) CustomerCountInMadrid(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "customer-count-in-city", map[string]any{"city": "Madrid"})
}

func (h *Handler) CustomerCountByCityStartingWithM(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "customer-count-by-city-prefix", map[string]any{"prefix": "M"})
}

func (h *Handler) CustomerCountWithoutSalesRep(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "customer-count-without-sales-rep", nil)
}

// CustomersWithSalesRepresentatives возвращает всех клиентов с данными
// представителя; клиенты без представителя не отбрасываются
func (h *Handler) CustomersWithSalesRepresentatives(w http.ResponseWriter, r *http.Request) {
	rows, ok := h.reportRows(w, r, "customers-with-sales-representatives", nil)
	if !ok {
		return
	}

	resp := make([]dto.CustomerSalesRepInfoResponse, len(rows))
	for i, row := range rows {
		resp[i] = dto.CustomerSalesRepInfoResponse{
			CustomerName: rowString(row, "customer_name"),
			RepFirstName: rowNullString(row, "rep_first_name"),
			RepLastName:  rowNullString(row, "rep_last_name"),
			OfficeCity:   rowNullString(row, "office_city"),
		}
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) CustomersWithRepAndOfficeCity(w http.ResponseWriter, r *http.Request) {
	rows, ok := h.reportRows(w, r, "customers-with-rep-and-office-city", nil)
	if !ok {
		return
	}
	h.respondJSON(w, http.StatusOK, toSalesRepResponses(rows))
}

func (h *Handler) CustomersWithoutPaymentsWithRepCity(w http.ResponseWriter, r *http.Request) {
	rows, ok := h.reportRows(w, r, "customers-without-payments-with-rep-city", nil)
	if !ok {
		return
	}
	h.respondJSON(w, http.StatusOK, toSalesRepResponses(rows))
}

func toCustomerResponse(customer *domain.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		CustomerNumber: customer.CustomerNumber,
		CustomerName:   customer.CustomerName,
		Phone:          customer.Phone,
		City:           customer.City,
		Country:        customer.Country,
		SalesRepNumber: customer.SalesRepNumber,
		CreditLimit:    customer.CreditLimit,
	}
}

func toSalesRepResponses(rows []query.Row) []dto.CustomerSalesRepResponse {
	resp := make([]dto.CustomerSalesRepResponse, len(rows))
	for i, row := range rows {
		resp[i] = dto.CustomerSalesRepResponse{
			CustomerName: rowString(row, "customer_name"),
			RepFirstName: rowString(row, "rep_first_name"),
			RepLastName:  rowString(row, "rep_last_name"),
			OfficeCity:   rowString(row, "office_city"),
		}
	}
	return resp
}
