package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/placement/internal/app/models"
)

// DriveRepository handles database operations for drives
type DriveRepository struct {
	db Querier
}

// Create inserts a new drive
func (r *DriveRepository) Create(ctx context.Context, d models.Drive) error {
	query := `
		INSERT INTO drives (id, company_id, company_name, role, job_description, ctc,
			eligibility_criteria, drive_date, location, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	return execOne(ctx, r.db, "drive", d.ID, query,
		d.ID, d.CompanyID, d.CompanyName, d.Role, d.JobDescription, d.CTC,
		d.EligibilityCriteria, d.DriveDate, d.Location, string(d.Status), d.CreatedAt)
}

// Update overwrites the mutable columns, status included
func (r *DriveRepository) Update(ctx context.Context, d models.Drive) error {
	query := `
		UPDATE drives SET role = $2, job_description = $3, ctc = $4,
			eligibility_criteria = $5, drive_date = $6, location = $7, status = $8
		WHERE id = $1`
	return execOne(ctx, r.db, "drive", d.ID, query,
		d.ID, d.Role, d.JobDescription, d.CTC, d.EligibilityCriteria, d.DriveDate, d.Location, string(d.Status))
}

// Delete removes a drive
func (r *DriveRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, "drive", id, `DELETE FROM drives WHERE id = $1`, id)
}

// GetAll returns every drive in insertion order
func (r *DriveRepository) GetAll(ctx context.Context) ([]models.Drive, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, company_id, company_name, role, job_description, ctc,
			eligibility_criteria, drive_date, location, status, created_at
		FROM drives ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("error querying drives: %w", err)
	}
	defer rows.Close()

	var drives []models.Drive
	for rows.Next() {
		var (
			d      models.Drive
			status string
		)
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.CompanyName, &d.Role, &d.JobDescription, &d.CTC,
			&d.EligibilityCriteria, &d.DriveDate, &d.Location, &status, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning drive: %w", err)
		}
		d.Status = models.DriveStatus(status)
		drives = append(drives, d)
	}
	return drives, rows.Err()
}
