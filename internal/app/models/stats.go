package models

// DashboardStats is the summary shown on the placement dashboard
type DashboardStats struct {
	TotalStudents        int `json:"total_students"`
	TotalCompanies       int `json:"total_companies"`
	TotalDrives          int `json:"total_drives"`
	UpcomingDrives       int `json:"upcoming_drives"`
	TotalApplications    int `json:"total_applications"`
	SelectedStudents     int `json:"selected_students"`
	PlacementRate        int `json:"placement_rate"`
	TotalOffers          int `json:"total_offers"`
	CRTFeePaid           int `json:"crt_fee_paid"`
	CRTFeePending        int `json:"crt_fee_pending"`
	CRTPaymentRate       int `json:"crt_payment_rate"`
	StudentsWithBacklogs int `json:"students_with_backlogs"`
}

// CRTFeeStatusReport counts students per CRT fee status
type CRTFeeStatusReport struct {
	Paid     int `json:"paid"`
	Pending  int `json:"pending"`
	Partial  int `json:"partial"`
	Exempted int `json:"exempted"`
}
