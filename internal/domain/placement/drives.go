package placement

import (
	"context"
	"strings"

	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
)

// DriveFilter narrows ListDrives. Zero fields match everything.
type DriveFilter struct {
	Status    models.DriveStatus
	CompanyID string
}

func (f DriveFilter) match(d models.Drive) bool {
	if f.Status != "" && f.Status != d.Status {
		return false
	}
	if f.CompanyID != "" && f.CompanyID != d.CompanyID {
		return false
	}
	return true
}

func (in DriveInput) applyDetails(d *models.Drive) {
	d.Role = strings.TrimSpace(in.Role)
	d.JobDescription = strings.TrimSpace(in.JobDescription)
	d.CTC = in.CTC
	d.EligibilityCriteria = strings.TrimSpace(in.EligibilityCriteria)
	d.DriveDate = in.DriveDate.UTC()
	d.Location = strings.TrimSpace(in.Location)
}

// CreateDrive schedules a drive for an existing company. New drives are upcoming.
func (s *Store) CreateDrive(ctx context.Context, in DriveInput) (models.Drive, error) {
	if err := validateDrive(&in); err != nil {
		return models.Drive{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	company, err := s.st.requireCompany(in.CompanyID)
	if err != nil {
		return models.Drive{}, err
	}

	drive := models.Drive{
		ID:          s.newID(),
		CompanyID:   company.ID,
		CompanyName: company.Name,
		Status:      models.DriveUpcoming,
		CreatedAt:   s.now(),
	}
	in.applyDetails(&drive)

	err = s.commit(ctx, Change{Kind: KindDrive, Op: OpCreate, ID: drive.ID, Entity: drive}, func() {
		s.st.drives.put(drive.ID, drive)
	})
	if err != nil {
		return models.Drive{}, err
	}
	return drive, nil
}

// GetDrive returns a drive by id
func (s *Store) GetDrive(id string) (models.Drive, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.requireDrive(id)
}

// UpdateDrive edits the descriptive fields of a drive. The owning company and
// the status are not editable here; in.CompanyID must be empty or unchanged.
func (s *Store) UpdateDrive(ctx context.Context, id string, in DriveInput) (models.Drive, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drive, err := s.st.requireDrive(id)
	if err != nil {
		return models.Drive{}, err
	}
	if in.CompanyID == "" {
		in.CompanyID = drive.CompanyID
	}
	if err := validateDrive(&in); err != nil {
		return models.Drive{}, err
	}
	if in.CompanyID != drive.CompanyID {
		return models.Drive{}, apperrors.NewValidationError("company_id", "company_id cannot change")
	}

	in.applyDetails(&drive)
	err = s.commit(ctx, Change{Kind: KindDrive, Op: OpUpdate, ID: id, Entity: drive}, func() {
		s.st.drives.put(id, drive)
	})
	if err != nil {
		return models.Drive{}, err
	}
	return drive, nil
}

// DeleteDrive removes a drive with no applications or offers
func (s *Store) DeleteDrive(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	drive, err := s.st.requireDrive(id)
	if err != nil {
		return err
	}
	if err := s.st.checkDriveDelete(id); err != nil {
		return err
	}
	return s.commit(ctx, Change{Kind: KindDrive, Op: OpDelete, ID: id, Entity: drive}, func() {
		s.st.drives.remove(id)
	})
}

// ListDrives returns matching drives in creation order
func (s *Store) ListDrives(filter DriveFilter) []models.Drive {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Drive, 0, s.st.drives.len())
	s.st.drives.each(func(v models.Drive) bool {
		if filter.match(v) {
			out = append(out, v)
		}
		return true
	})
	return out
}
