package placement

import (
	"context"
	"strings"

	"github.com/yigit/placement/internal/app/models"
)

func (in CompanyInput) apply(c *models.Company) {
	c.Name = strings.TrimSpace(in.Name)
	c.Description = strings.TrimSpace(in.Description)
	c.Website = optionalText(in.Website)
	c.Industry = strings.TrimSpace(in.Industry)
	c.Location = strings.TrimSpace(in.Location)
}

// CreateCompany onboards a company
func (s *Store) CreateCompany(ctx context.Context, in CompanyInput) (models.Company, error) {
	if err := validateCompany(&in); err != nil {
		return models.Company{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	company := models.Company{ID: s.newID(), CreatedAt: s.now()}
	in.apply(&company)

	err := s.commit(ctx, Change{Kind: KindCompany, Op: OpCreate, ID: company.ID, Entity: company.Clone()}, func() {
		s.st.companies.put(company.ID, company)
	})
	if err != nil {
		return models.Company{}, err
	}
	return company.Clone(), nil
}

// GetCompany returns a company by id
func (s *Store) GetCompany(id string) (models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	company, err := s.st.requireCompany(id)
	if err != nil {
		return models.Company{}, err
	}
	return company.Clone(), nil
}

// UpdateCompany edits descriptive fields. Drives keep the company name they
// were created with.
func (s *Store) UpdateCompany(ctx context.Context, id string, in CompanyInput) (models.Company, error) {
	if err := validateCompany(&in); err != nil {
		return models.Company{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	company, err := s.st.requireCompany(id)
	if err != nil {
		return models.Company{}, err
	}
	in.apply(&company)

	err = s.commit(ctx, Change{Kind: KindCompany, Op: OpUpdate, ID: id, Entity: company.Clone()}, func() {
		s.st.companies.put(id, company)
	})
	if err != nil {
		return models.Company{}, err
	}
	return company.Clone(), nil
}

// DeleteCompany removes a company with no drives
func (s *Store) DeleteCompany(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	company, err := s.st.requireCompany(id)
	if err != nil {
		return err
	}
	if err := s.st.checkCompanyDelete(id); err != nil {
		return err
	}
	return s.commit(ctx, Change{Kind: KindCompany, Op: OpDelete, ID: id, Entity: company}, func() {
		s.st.companies.remove(id)
	})
}

// ListCompanies returns companies in onboarding order
func (s *Store) ListCompanies() []models.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Company, 0, s.st.companies.len())
	s.st.companies.each(func(v models.Company) bool {
		out = append(out, v.Clone())
		return true
	})
	return out
}
