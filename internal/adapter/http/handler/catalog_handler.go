package handler

import (
	"context"
	"net/http"

	"github.com/clinilab/clinilab/internal/adapter/http/dto"
	"github.com/clinilab/clinilab/internal/domain"
)

// CatalogService defines the behavior needed by CatalogHandler.
type CatalogService interface {
	ListBranches(ctx context.Context, limit, offset int) ([]*domain.Branch, error)
	ListPatients(ctx context.Context, limit, offset int) ([]*domain.Patient, error)
	ListDoctors(ctx context.Context, limit, offset int) ([]*domain.Doctor, error)
	ListProviders(ctx context.Context, limit, offset int) ([]*domain.Provider, error)
	ListServices(ctx context.Context, limit, offset int) ([]*domain.Service, error)
}

// CatalogHandler serves the read-only lookup listings.
type CatalogHandler struct {
	catalogUC CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogUC CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// ListBranches lists branches.
func (h *CatalogHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	branches, err := h.catalogUC.ListBranches(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list branches", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListBranchesResponse{
		Branches: dto.BranchesFromDomain(branches),
		Total:    int64(len(branches)),
	})
}

// ListPatients lists patients.
func (h *CatalogHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	patients, err := h.catalogUC.ListPatients(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list patients", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListPatientsResponse{
		Patients: dto.PatientsFromDomain(patients),
		Total:    int64(len(patients)),
	})
}

// ListDoctors lists doctors.
func (h *CatalogHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	doctors, err := h.catalogUC.ListDoctors(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list doctors", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListDoctorsResponse{
		Doctors: dto.DoctorsFromDomain(doctors),
		Total:   int64(len(doctors)),
	})
}

// ListProviders lists providers.
func (h *CatalogHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	providers, err := h.catalogUC.ListProviders(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list providers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListProvidersResponse{
		Providers: dto.ProvidersFromDomain(providers),
		Total:     int64(len(providers)),
	})
}

// ListServices lists laboratory services.
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	services, err := h.catalogUC.ListServices(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list services", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListServicesResponse{
		Services: dto.ServicesFromDomain(services),
		Total:    int64(len(services)),
	})
}
