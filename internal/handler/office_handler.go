package handler

import (
	"net/http"

	"github.com/gardening-api/internal/domain"
	"github.com/gardening-api/internal/dto"
)

func (h *Handler) GetAllOffices(w http.ResponseWriter, r *http.Request) {
	offices, err := h.offices.GetAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.OfficeResponse, len(offices))
	for i, office := range offices {
		resp[i] = toOfficeResponse(&office)
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetOfficeByCode(w http.ResponseWriter, r *http.Request, code string) {
	office, err := h.offices.GetByCode(r.Context(), code)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, toOfficeResponse(office))
}

func (h *Handler) OfficeCodeAndCity(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "office-code-and-city", nil)
}

func (h *Handler) OfficesInSpain(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "offices-in-country", map[string]any{"country": "España"})
}

func (h *Handler) OfficeAddressesWithCustomersInFuenlabrada(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "office-addresses-with-customers-in-city", map[string]any{"city": "Fuenlabrada"})
}

func (h *Handler) OfficesWithoutFrutalesRepresentatives(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "offices-without-product-line-sales", map[string]any{"product_line": "Frutales"})
}

func toOfficeResponse(office *domain.Office) dto.OfficeResponse {
	return dto.OfficeResponse{
		OfficeCode:   office.OfficeCode,
		City:         office.City,
		Country:      office.Country,
		Region:       office.Region,
		PostalCode:   office.PostalCode,
		Phone:        office.Phone,
		AddressLine1: office.AddressLine1,
		AddressLine2: office.AddressLine2,
	}
}
