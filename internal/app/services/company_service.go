package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/domain/placement"
)

// CompanyService handles recruiter records
type CompanyService interface {
	Create(ctx context.Context, in placement.CompanyInput) (models.Company, error)
	Get(ctx context.Context, id string) (models.Company, error)
	Update(ctx context.Context, id string, in placement.CompanyInput) (models.Company, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) []models.Company
}

type companyService struct {
	store *placement.Store
	log   zerolog.Logger
}

// NewCompanyService creates a new company service instance
func NewCompanyService(store *placement.Store, log zerolog.Logger) CompanyService {
	return &companyService{store: store, log: log.With().Str("service", "companies").Logger()}
}

func (s *companyService) Create(ctx context.Context, in placement.CompanyInput) (models.Company, error) {
	company, err := s.store.CreateCompany(ctx, in)
	if err != nil {
		return models.Company{}, err
	}
	s.log.Info().Str("company_id", company.ID).Str("name", company.Name).Msg("Company onboarded")
	return company, nil
}

func (s *companyService) Get(_ context.Context, id string) (models.Company, error) {
	return s.store.GetCompany(id)
}

func (s *companyService) Update(ctx context.Context, id string, in placement.CompanyInput) (models.Company, error) {
	return s.store.UpdateCompany(ctx, id, in)
}

func (s *companyService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteCompany(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("company_id", id).Msg("Company deleted")
	return nil
}

func (s *companyService) List(context.Context) []models.Company {
	return s.store.ListCompanies()
}
