package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/domain/placement"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/events"
)

// ApplicationService handles student applications to drives
type ApplicationService interface {
	Create(ctx context.Context, studentID, driveID string) (dto.ApplicationResponse, error)
	Get(ctx context.Context, id string) (dto.ApplicationResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter placement.ApplicationFilter) []dto.ApplicationResponse
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (dto.ApplicationResponse, error)
}

type applicationService struct {
	store    *placement.Store
	notifier notifier
	log      zerolog.Logger
}

// NewApplicationService creates a new application service instance
func NewApplicationService(store *placement.Store, publisher events.Publisher, log zerolog.Logger) ApplicationService {
	return &applicationService{store: store, notifier: newNotifier(publisher, log), log: log.With().Str("service", "applications").Logger()}
}

// describe joins the application with names; a participant deleted since is left blank
func (s *applicationService) describe(a models.Application) dto.ApplicationResponse {
	student, _ := s.store.GetStudent(a.StudentID)
	drive, _ := s.store.GetDrive(a.DriveID)
	return dto.NewApplicationResponse(a, student, drive)
}

func (s *applicationService) Create(ctx context.Context, studentID, driveID string) (dto.ApplicationResponse, error) {
	app, err := s.store.CreateApplication(ctx, studentID, driveID)
	if err != nil {
		return dto.ApplicationResponse{}, err
	}
	s.log.Info().Str("application_id", app.ID).Str("student_id", studentID).Str("drive_id", driveID).Msg("Application submitted")
	return s.describe(app), nil
}

func (s *applicationService) Get(_ context.Context, id string) (dto.ApplicationResponse, error) {
	app, err := s.store.GetApplication(id)
	if err != nil {
		return dto.ApplicationResponse{}, err
	}
	return s.describe(app), nil
}

func (s *applicationService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteApplication(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("application_id", id).Msg("Application withdrawn")
	return nil
}

func (s *applicationService) List(_ context.Context, filter placement.ApplicationFilter) []dto.ApplicationResponse {
	apps := s.store.ListApplications(filter)
	out := make([]dto.ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, s.describe(a))
	}
	return out
}

func (s *applicationService) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (dto.ApplicationResponse, error) {
	if !status.Valid() {
		return dto.ApplicationResponse{}, apperrors.NewValidationError("application_status", "unknown application status")
	}
	app, err := s.store.TransitionApplication(ctx, id, status)
	if err != nil {
		return dto.ApplicationResponse{}, err
	}
	s.log.Info().Str("application_id", id).Str("status", string(status)).Msg("Application status changed")
	s.notifier.notify(ctx, events.New(events.ApplicationStatusChanged, id, map[string]string{
		"student_id": app.StudentID,
		"drive_id":   app.DriveID,
		"status":     string(app.Status),
	}))
	return s.describe(app), nil
}
