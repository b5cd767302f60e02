package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/placement/internal/app/models"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db Querier
}

const studentColumns = `id, name, roll_no, branch, section, year, ssc_percentage,
	inter_diploma_percentage, cgpa, backlogs_count, backlog_status, year_of_passing,
	email, phone, resume_url, skills, crt_fee_status, crt_fee_amount,
	crt_receipt_number, created_at`

func studentArgs(s models.Student) []any {
	skills := s.Skills
	if skills == nil {
		skills = []string{}
	}
	return []any{
		s.ID, s.Name, s.RollNo, s.Branch, s.Section, s.Year, s.SSCPercentage,
		s.InterDiplomaPercentage, s.CGPA, s.BacklogsCount, string(s.BacklogStatus), s.YearOfPassing,
		s.Email, s.Phone, s.ResumeURL, skills, string(s.CRTFeeStatus), s.CRTFeeAmount,
		s.CRTReceiptNumber, s.CreatedAt,
	}
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, s models.Student) error {
	query := `INSERT INTO students (` + studentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	return execOne(ctx, r.db, "student", s.ID, query, studentArgs(s)...)
}

// Update overwrites every column except id and created_at
func (r *StudentRepository) Update(ctx context.Context, s models.Student) error {
	query := `
		UPDATE students SET
			name = $2, roll_no = $3, branch = $4, section = $5, year = $6,
			ssc_percentage = $7, inter_diploma_percentage = $8, cgpa = $9,
			backlogs_count = $10, backlog_status = $11, year_of_passing = $12,
			email = $13, phone = $14, resume_url = $15, skills = $16,
			crt_fee_status = $17, crt_fee_amount = $18, crt_receipt_number = $19
		WHERE id = $1`
	return execOne(ctx, r.db, "student", s.ID, query, studentArgs(s)[:19]...)
}

// Delete removes a student
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, "student", id, `DELETE FROM students WHERE id = $1`, id)
}

// GetAll returns every student in insertion order
func (r *StudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	rows, err := r.db.Query(ctx, `SELECT `+studentColumns+` FROM students ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var (
			s                      models.Student
			backlogStatus, feeStat string
		)
		if err := rows.Scan(
			&s.ID, &s.Name, &s.RollNo, &s.Branch, &s.Section, &s.Year, &s.SSCPercentage,
			&s.InterDiplomaPercentage, &s.CGPA, &s.BacklogsCount, &backlogStatus, &s.YearOfPassing,
			&s.Email, &s.Phone, &s.ResumeURL, &s.Skills, &feeStat, &s.CRTFeeAmount,
			&s.CRTReceiptNumber, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		s.BacklogStatus = models.BacklogStatus(backlogStatus)
		s.CRTFeeStatus = models.CRTFeeStatus(feeStat)
		students = append(students, s)
	}
	return students, rows.Err()
}
