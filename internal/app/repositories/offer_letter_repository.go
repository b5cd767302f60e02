package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/placement/internal/app/models"
)

// OfferLetterRepository handles database operations for offer letters
type OfferLetterRepository struct {
	db Querier
}

// Create inserts a new offer letter
func (r *OfferLetterRepository) Create(ctx context.Context, o models.OfferLetter) error {
	query := `
		INSERT INTO offer_letters (id, student_id, drive_id, final_ctc, joining_date, offer_date, letter_content)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	return execOne(ctx, r.db, "offer_letter", o.ID, query,
		o.ID, o.StudentID, o.DriveID, o.FinalCTC, o.JoiningDate, o.OfferDate, o.LetterContent)
}

// Update stores revised terms and content
func (r *OfferLetterRepository) Update(ctx context.Context, o models.OfferLetter) error {
	return execOne(ctx, r.db, "offer_letter", o.ID,
		`UPDATE offer_letters SET final_ctc = $2, joining_date = $3, letter_content = $4 WHERE id = $1`,
		o.ID, o.FinalCTC, o.JoiningDate, o.LetterContent)
}

// Delete removes an offer letter
func (r *OfferLetterRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.db, "offer_letter", id, `DELETE FROM offer_letters WHERE id = $1`, id)
}

// GetAll returns every offer letter in issue order
func (r *OfferLetterRepository) GetAll(ctx context.Context) ([]models.OfferLetter, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, drive_id, final_ctc, joining_date, offer_date, letter_content
		FROM offer_letters ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("error querying offer letters: %w", err)
	}
	defer rows.Close()

	var offers []models.OfferLetter
	for rows.Next() {
		var o models.OfferLetter
		if err := rows.Scan(&o.ID, &o.StudentID, &o.DriveID, &o.FinalCTC, &o.JoiningDate, &o.OfferDate, &o.LetterContent); err != nil {
			return nil, fmt.Errorf("error scanning offer letter: %w", err)
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}
