package models

// BacklogStatus describes where a student stands with failed subjects
type BacklogStatus string

const (
	BacklogNotApplicable BacklogStatus = "not_applicable"
	BacklogPending       BacklogStatus = "pending"
	BacklogCleared       BacklogStatus = "cleared"
)

// Valid reports whether the value is a known backlog status
func (s BacklogStatus) Valid() bool {
	switch s {
	case BacklogNotApplicable, BacklogPending, BacklogCleared:
		return true
	}
	return false
}

// CRTFeeStatus is the Campus Recruitment Training fee state of a student
type CRTFeeStatus string

const (
	CRTFeePending  CRTFeeStatus = "pending"
	CRTFeePaid     CRTFeeStatus = "paid"
	CRTFeePartial  CRTFeeStatus = "partial"
	CRTFeeExempted CRTFeeStatus = "exempted"
)

// CRTFeeStatuses lists every fee status in report order
var CRTFeeStatuses = []CRTFeeStatus{CRTFeePaid, CRTFeePending, CRTFeePartial, CRTFeeExempted}

// Valid reports whether the value is a known fee status
func (s CRTFeeStatus) Valid() bool {
	switch s {
	case CRTFeePending, CRTFeePaid, CRTFeePartial, CRTFeeExempted:
		return true
	}
	return false
}
