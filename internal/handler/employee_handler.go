package handler

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gardening-api/internal/domain"
	"github.com/gardening-api/internal/dto"
)

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.GetAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.EmployeeResponse, len(employees))
	for i, employee := range employees {
		resp[i] = toEmployeeResponse(&employee)
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetEmployeeByID(w http.ResponseWriter, r *http.Request, rawID string) {
	number, err := strconv.Atoi(rawID)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid employee id", "employee id must be an integer")
		return
	}

	employee, err := h.employees.GetByNumber(r.Context(), number)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, toEmployeeResponse(employee))
}

// EmployeeManagers возвращает дерево подчинённости как плоский индекс:
// у корневых сотрудников manager_number равен null
func (h *Handler) EmployeeManagers(w http.ResponseWriter, r *http.Request) {
	index, err := h.employees.GetManagerIndex(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	entries := make([]dto.ManagerEntry, 0, len(index))
	for number, manager := range index {
		entries = append(entries, dto.ManagerEntry{EmployeeNumber: number, ManagerNumber: manager})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].EmployeeNumber < entries[j].EmployeeNumber
	})

	h.respondJSON(w, http.StatusOK, entries)
}

func toEmployeeResponse(employee *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		EmployeeNumber: employee.EmployeeNumber,
		FirstName:      employee.FirstName,
		LastName1:      employee.LastName1,
		LastName2:      employee.LastName2,
		Email:          employee.Email,
		OfficeCode:     employee.OfficeCode,
		ManagerNumber:  employee.ManagerNumber,
		JobTitle:       employee.JobTitle,
	}
}
