package dto

import "github.com/yigit/placement/internal/domain/placement"

// DriveRequest is the body of drive create and update calls. On update an
// empty company_id keeps the current company.
type DriveRequest struct {
	CompanyID           string  `json:"company_id"`
	Role                string  `json:"role" binding:"required"`
	JobDescription      string  `json:"job_description"`
	CTC                 float64 `json:"ctc"`
	EligibilityCriteria string  `json:"eligibility_criteria"`
	DriveDate           Date    `json:"drive_date"`
	Location            string  `json:"location"`
}

// ToInput converts the request to a store input
func (r DriveRequest) ToInput() placement.DriveInput {
	return placement.DriveInput{
		CompanyID:           r.CompanyID,
		Role:                r.Role,
		JobDescription:      r.JobDescription,
		CTC:                 r.CTC,
		EligibilityCriteria: r.EligibilityCriteria,
		DriveDate:           r.DriveDate.Time,
		Location:            r.Location,
	}
}

// UpdateDriveStatusRequest moves a drive to another lifecycle state
type UpdateDriveStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
