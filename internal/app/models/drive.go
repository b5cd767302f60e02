package models

import "time"

// Drive is a recruitment event run by one company
type Drive struct {
	ID                  string      `json:"id" db:"id"`
	CompanyID           string      `json:"company_id" db:"company_id"`
	CompanyName         string      `json:"company_name" db:"company_name"` // snapshot taken at creation
	Role                string      `json:"role" db:"role"`
	JobDescription      string      `json:"job_description" db:"job_description"`
	CTC                 float64     `json:"ctc" db:"ctc"`
	EligibilityCriteria string      `json:"eligibility_criteria" db:"eligibility_criteria"`
	DriveDate           time.Time   `json:"drive_date" db:"drive_date"`
	Location            string      `json:"location" db:"location"`
	Status              DriveStatus `json:"status" db:"status"`
	CreatedAt           time.Time   `json:"created_at" db:"created_at"`
}
