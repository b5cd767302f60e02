package models

// DriveStatus is the lifecycle state of a recruitment drive
type DriveStatus string

const (
	DriveUpcoming  DriveStatus = "upcoming"
	DriveOngoing   DriveStatus = "ongoing"
	DriveCompleted DriveStatus = "completed"
	DriveCancelled DriveStatus = "cancelled"
)

var driveTransitions = map[DriveStatus][]DriveStatus{
	DriveUpcoming:  {DriveOngoing, DriveCancelled},
	DriveOngoing:   {DriveCompleted, DriveCancelled},
	DriveCompleted: nil,
	DriveCancelled: nil,
}

// Valid reports whether the value is a known drive status
func (s DriveStatus) Valid() bool {
	_, ok := driveTransitions[s]
	return ok
}

// Terminal reports whether no transition leaves this state
func (s DriveStatus) Terminal() bool {
	return s.Valid() && len(driveTransitions[s]) == 0
}

// CanTransitionTo reports whether the drive table allows s -> next
func (s DriveStatus) CanTransitionTo(next DriveStatus) bool {
	for _, allowed := range driveTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ApplicationStatus is the lifecycle state of a student's application to a drive
type ApplicationStatus string

const (
	ApplicationApplied     ApplicationStatus = "applied"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationSelected    ApplicationStatus = "selected"
	ApplicationRejected    ApplicationStatus = "rejected"
)

// A selection may still be revoked, so selected is not terminal.
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationApplied:     {ApplicationShortlisted, ApplicationRejected},
	ApplicationShortlisted: {ApplicationSelected, ApplicationRejected},
	ApplicationSelected:    {ApplicationRejected},
	ApplicationRejected:    nil,
}

// Valid reports whether the value is a known application status
func (s ApplicationStatus) Valid() bool {
	_, ok := applicationTransitions[s]
	return ok
}

// Terminal reports whether no transition leaves this state
func (s ApplicationStatus) Terminal() bool {
	return s.Valid() && len(applicationTransitions[s]) == 0
}

// Pending reports whether the application still awaits a decision
func (s ApplicationStatus) Pending() bool {
	return s == ApplicationApplied || s == ApplicationShortlisted
}

// CanTransitionTo reports whether the application table allows s -> next
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
