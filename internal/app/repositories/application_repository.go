package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/placement/internal/app/models"
)

// ApplicationRepository handles database operations for applications
type ApplicationRepository struct {
	db Querier
}

// Create inserts a new application
func (r *ApplicationRepository) Create(ctx context.Context, a models.Application) error {
	query := `
		INSERT INTO applications (id, student_id, drive_id, status, applied_date, selected_date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	return execOne(ctx, r.db, "application", a.ID, query,
		a.ID, a.StudentID, a.DriveID, string(a.Status), a.AppliedDate, a.SelectedDate)
}

// UpdateStatus stores a status transition
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, a models.Application) error {
	return execOne(ctx, r.db, "application", a.ID,
		`UPDATE applications SET status = $2, selected_date = $3 WHERE id = $1`,
		a.ID, string(a.Status), a.SelectedDate)
}

// Delete removes an application
func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, "application", id, `DELETE FROM applications WHERE id = $1`, id)
}

// GetAll returns every application in insertion order
func (r *ApplicationRepository) GetAll(ctx context.Context) ([]models.Application, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, drive_id, status, applied_date, selected_date
		FROM applications ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("error querying applications: %w", err)
	}
	defer rows.Close()

	var apps []models.Application
	for rows.Next() {
		var (
			a      models.Application
			status string
		)
		if err := rows.Scan(&a.ID, &a.StudentID, &a.DriveID, &status, &a.AppliedDate, &a.SelectedDate); err != nil {
			return nil, fmt.Errorf("error scanning application: %w", err)
		}
		a.Status = models.ApplicationStatus(status)
		apps = append(apps, a)
	}
	return apps, rows.Err()
}
