package usecase

import (
	"context"

	"github.com/clinilab/clinilab/internal/domain"
)

// CatalogUseCase serves the read-only lookup listings behind the form
// selects: branches, patients, doctors, providers and services.
type CatalogUseCase struct {
	catalogRepo CatalogRepository
}

// NewCatalogUseCase creates a new CatalogUseCase.
func NewCatalogUseCase(catalogRepo CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalogRepo: catalogRepo}
}

func (uc *CatalogUseCase) ListBranches(ctx context.Context, limit, offset int) ([]*domain.Branch, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.catalogRepo.ListBranches(ctx, limit, offset)
}

func (uc *CatalogUseCase) ListPatients(ctx context.Context, limit, offset int) ([]*domain.Patient, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.catalogRepo.ListPatients(ctx, limit, offset)
}

func (uc *CatalogUseCase) ListDoctors(ctx context.Context, limit, offset int) ([]*domain.Doctor, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.catalogRepo.ListDoctors(ctx, limit, offset)
}

func (uc *CatalogUseCase) ListProviders(ctx context.Context, limit, offset int) ([]*domain.Provider, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.catalogRepo.ListProviders(ctx, limit, offset)
}

func (uc *CatalogUseCase) ListServices(ctx context.Context, limit, offset int) ([]*domain.Service, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.catalogRepo.ListServices(ctx, limit, offset)
}
