package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/domain/placement"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/events"
)

// DriveService handles recruitment drives and their lifecycle
type DriveService interface {
	Create(ctx context.Context, in placement.DriveInput) (models.Drive, error)
	Get(ctx context.Context, id string) (models.Drive, error)
	Update(ctx context.Context, id string, in placement.DriveInput) (models.Drive, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter placement.DriveFilter) []models.Drive
	UpdateStatus(ctx context.Context, id string, status models.DriveStatus) (models.Drive, error)
}

type driveService struct {
	store    *placement.Store
	notifier notifier
	log      zerolog.Logger
}

// NewDriveService creates a new drive service instance
func NewDriveService(store *placement.Store, publisher events.Publisher, log zerolog.Logger) DriveService {
	return &driveService{store: store, notifier: newNotifier(publisher, log), log: log.With().Str("service", "drives").Logger()}
}

func (s *driveService) Create(ctx context.Context, in placement.DriveInput) (models.Drive, error) {
	drive, err := s.store.CreateDrive(ctx, in)
	if err != nil {
		return models.Drive{}, err
	}
	s.log.Info().Str("drive_id", drive.ID).Str("company_id", drive.CompanyID).Msg("Drive scheduled")
	return drive, nil
}

func (s *driveService) Get(_ context.Context, id string) (models.Drive, error) {
	return s.store.GetDrive(id)
}

func (s *driveService) Update(ctx context.Context, id string, in placement.DriveInput) (models.Drive, error) {
	return s.store.UpdateDrive(ctx, id, in)
}

func (s *driveService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteDrive(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("drive_id", id).Msg("Drive deleted")
	return nil
}

func (s *driveService) List(_ context.Context, filter placement.DriveFilter) []models.Drive {
	return s.store.ListDrives(filter)
}

func (s *driveService) UpdateStatus(ctx context.Context, id string, status models.DriveStatus) (models.Drive, error) {
	if !status.Valid() {
		return models.Drive{}, apperrors.NewValidationError("status", "unknown drive status")
	}
	drive, err := s.store.TransitionDrive(ctx, id, status)
	if err != nil {
		return models.Drive{}, err
	}
	s.log.Info().Str("drive_id", id).Str("status", string(status)).Msg("Drive status changed")
	s.notifier.notify(ctx, events.New(events.DriveStatusChanged, id, map[string]string{
		"company_id": drive.CompanyID,
		"status":     string(drive.Status),
	}))
	return drive, nil
}
