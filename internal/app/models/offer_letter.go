package models

import "time"

// OfferLetter records the outcome of a selected application
type OfferLetter struct {
	ID            string    `json:"id" db:"id"`
	StudentID     string    `json:"student_id" db:"student_id"`
	DriveID       string    `json:"drive_id" db:"drive_id"`
	FinalCTC      float64   `json:"final_ctc" db:"final_ctc"`
	JoiningDate   time.Time `json:"joining_date" db:"joining_date"`
	OfferDate     time.Time `json:"offer_date" db:"offer_date"`
	LetterContent string    `json:"letter_content" db:"letter_content"`
}

// OfferPayload carries the structured fields a letter renderer needs
type OfferPayload struct {
	OfferID       string    `json:"offer_id"`
	StudentID     string    `json:"student_id"`
	StudentName   string    `json:"student_name"`
	StudentRollNo string    `json:"student_roll_no"`
	CompanyID     string    `json:"company_id"`
	CompanyName   string    `json:"company_name"`
	DriveID       string    `json:"drive_id"`
	Role          string    `json:"role"`
	Location      string    `json:"location"`
	FinalCTC      float64   `json:"final_ctc"`
	JoiningDate   time.Time `json:"joining_date"`
	OfferDate     time.Time `json:"offer_date"`
}
