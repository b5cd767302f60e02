package models

import "time"

// Application is a student's candidacy for one drive
type Application struct {
	ID           string            `json:"id" db:"id"`
	StudentID    string            `json:"student_id" db:"student_id"`
	DriveID      string            `json:"drive_id" db:"drive_id"`
	Status       ApplicationStatus `json:"application_status" db:"status"`
	AppliedDate  time.Time         `json:"applied_date" db:"applied_date"`
	SelectedDate *time.Time        `json:"selected_date,omitempty" db:"selected_date"`
}

// Clone returns a copy that shares no pointers with a
func (a Application) Clone() Application {
	out := a
	if a.SelectedDate != nil {
		t := *a.SelectedDate
		out.SelectedDate = &t
	}
	return out
}
