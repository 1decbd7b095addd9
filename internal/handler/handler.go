package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gardening-api/internal/domain"
	"github.com/gardening-api/internal/dto"
	"github.com/gardening-api/internal/query"
	"github.com/gardening-api/internal/service"
	"github.com/go-playground/validator/v10"
)

// Handler обслуживает HTTP-границу: ресурсные чтения и отчёты каталога
type Handler struct {
	offices   service.OfficeService
	customers service.CustomerService
	employees service.EmployeeService
	reports   service.ReportService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewHandler создаёт новый обработчик
func NewHandler(
	offices service.OfficeService,
	customers service.CustomerService,
	employees service.EmployeeService,
	reports service.ReportService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		offices:   offices,
		customers: customers,
		employees: employees,
		reports:   reports,
		validator: validator.New(),
		logger:    logger,
	}
}

// report выполняет именованный отчёт каталога и отдаёт строки как есть
func (h *Handler) report(w http.ResponseWriter, r *http.Request, name string, params map[string]any) {
	rows, err := h.reports.Execute(r.Context(), name, params)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	if rows == nil {
		rows = []query.Row{}
	}
	h.respondJSON(w, http.StatusOK, rows)
}

// reportRows выполняет отчёт и возвращает строки для дальнейшего маппинга в DTO
func (h *Handler) reportRows(w http.ResponseWriter, r *http.Request, name string, params map[string]any) ([]query.Row, bool) {
	rows, err := h.reports.Execute(r.Context(), name, params)
	if err != nil {
		h.handleServiceError(w, err)
		return nil, false
	}
	return rows, true
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	var storeErr *domain.StoreError

	switch {
	case errors.Is(err, domain.ErrOfficeNotFound):
		h.respondError(w, http.StatusNotFound, "office not found", "")
	case errors.Is(err, domain.ErrCustomerNotFound):
		h.respondError(w, http.StatusNotFound, "customer not found", "")
	case errors.Is(err, domain.ErrEmployeeNotFound):
		h.respondError(w, http.StatusNotFound, "employee not found", "")
	case errors.Is(err, domain.ErrQueryNotFound):
		h.respondError(w, http.StatusNotFound, "report not found", err.Error())
	case errors.Is(err, domain.ErrInvalidParameter):
		h.respondError(w, http.StatusBadRequest, "invalid report parameter", err.Error())
	case errors.Is(err, domain.ErrCancelled):
		h.respondError(w, http.StatusGatewayTimeout, "report cancelled", "")
	case errors.As(err, &storeErr):
		h.logger.Error("store error", slog.Any("error", err), slog.Bool("transient", storeErr.Transient))
		if storeErr.Transient {
			h.respondError(w, http.StatusServiceUnavailable, "store temporarily unavailable", "")
		} else {
			h.respondError(w, http.StatusInternalServerError, "store error", "")
		}
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

// rowString достаёт строковое значение спроецированной колонки
func rowString(row query.Row, key string) string {
	if s, ok := row[key].(string); ok {
		return s
	}
	return ""
}

// rowNullString достаёт значение nullable-колонки, сохраняя отсутствие
func rowNullString(row query.Row, key string) *string {
	if s, ok := row[key].(string); ok {
		return &s
	}
	return nil
}
