package placement

import (
	"context"

	"github.com/yigit/placement/internal/app/models"
)

// ApplicationFilter narrows ListApplications. Zero fields match everything.
type ApplicationFilter struct {
	StudentID string
	DriveID   string
	Status    models.ApplicationStatus
}

func (f ApplicationFilter) match(a models.Application) bool {
	if f.StudentID != "" && f.StudentID != a.StudentID {
		return false
	}
	if f.DriveID != "" && f.DriveID != a.DriveID {
		return false
	}
	if f.Status != "" && f.Status != a.Status {
		return false
	}
	return true
}

// CreateApplication records a student's application to a drive. New
// applications are always in the applied state.
func (s *Store) CreateApplication(ctx context.Context, studentID, driveID string) (models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.st.checkApplicationCreate(studentID, driveID); err != nil {
		return models.Application{}, err
	}

	app := models.Application{
		ID:          s.newID(),
		StudentID:   studentID,
		DriveID:     driveID,
		Status:      models.ApplicationApplied,
		AppliedDate: s.now(),
	}
	err := s.commit(ctx, Change{Kind: KindApplication, Op: OpCreate, ID: app.ID, Entity: app.Clone()}, func() {
		s.st.putApplication(app)
	})
	if err != nil {
		return models.Application{}, err
	}
	return app.Clone(), nil
}

// GetApplication returns an application by id
func (s *Store) GetApplication(id string) (models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	app, err := s.st.requireApplication(id)
	if err != nil {
		return models.Application{}, err
	}
	return app.Clone(), nil
}

// DeleteApplication withdraws an application that has no offer letter
func (s *Store) DeleteApplication(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	app, err := s.st.requireApplication(id)
	if err != nil {
		return err
	}
	if err := s.st.checkApplicationDelete(app); err != nil {
		return err
	}
	return s.commit(ctx, Change{Kind: KindApplication, Op: OpDelete, ID: id, Entity: app.Clone()}, func() {
		s.st.removeApplication(app)
	})
}

// ListApplications returns matching applications in creation order
func (s *Store) ListApplications(filter ApplicationFilter) []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Application, 0)
	s.st.applications.each(func(v models.Application) bool {
		if filter.match(v) {
			out = append(out, v.Clone())
		}
		return true
	})
	return out
}
