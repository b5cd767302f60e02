package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/placement/internal/app/models"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db Querier
}

// Create inserts a new company
func (r *CompanyRepository) Create(ctx context.Context, c models.Company) error {
	query := `
		INSERT INTO companies (id, name, description, website, industry, location, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	return execOne(ctx, r.db, "company", c.ID, query,
		c.ID, c.Name, c.Description, c.Website, c.Industry, c.Location, c.CreatedAt)
}

// Update overwrites the editable columns
func (r *CompanyRepository) Update(ctx context.Context, c models.Company) error {
	query := `
		UPDATE companies SET name = $2, description = $3, website = $4, industry = $5, location = $6
		WHERE id = $1`
	return execOne(ctx, r.db, "company", c.ID, query,
		c.ID, c.Name, c.Description, c.Website, c.Industry, c.Location)
}

// Delete removes a company
func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, "company", id, `DELETE FROM companies WHERE id = $1`, id)
}

// GetAll returns every company in insertion order
func (r *CompanyRepository) GetAll(ctx context.Context) ([]models.Company, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, website, industry, location, created_at
		FROM companies ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("error querying companies: %w", err)
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Website, &c.Industry, &c.Location, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}
