package models

import "time"

// Student is a registered candidate of the placement cycle
type Student struct {
	ID      string `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	RollNo  string `json:"roll_no" db:"roll_no"` // unique across students
	Branch  string `json:"branch" db:"branch"`
	Section string `json:"section" db:"section"`
	Year    int    `json:"year" db:"year"`

	// Academic information
	SSCPercentage          float64       `json:"ssc_percentage" db:"ssc_percentage"`
	InterDiplomaPercentage float64       `json:"inter_diploma_percentage" db:"inter_diploma_percentage"`
	CGPA                   float64       `json:"cgpa" db:"cgpa"`
	BacklogsCount          int           `json:"backlogs_count" db:"backlogs_count"`
	BacklogStatus          BacklogStatus `json:"backlog_status" db:"backlog_status"`
	YearOfPassing          int           `json:"year_of_passing" db:"year_of_passing"`

	// Contact
	Email     string   `json:"email" db:"email"`
	Phone     string   `json:"phone" db:"phone"`
	ResumeURL *string  `json:"resume_url,omitempty" db:"resume_url"`
	Skills    []string `json:"skills" db:"skills"`

	// CRT information
	CRTFeeStatus     CRTFeeStatus `json:"crt_fee_status" db:"crt_fee_status"`
	CRTFeeAmount     float64      `json:"crt_fee_amount" db:"crt_fee_amount"`
	CRTReceiptNumber *string      `json:"crt_receipt_number,omitempty" db:"crt_receipt_number"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Clone returns a copy that shares no slices or pointers with s
func (s Student) Clone() Student {
	c := s
	if s.Skills != nil {
		c.Skills = append([]string(nil), s.Skills...)
	}
	c.ResumeURL = cloneString(s.ResumeURL)
	c.CRTReceiptNumber = cloneString(s.CRTReceiptNumber)
	return c
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
