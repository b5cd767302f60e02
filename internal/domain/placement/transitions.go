package placement

import (
	"context"

	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
)

func invalidTransition(kind Kind, from, to string) error {
	return apperrors.NewCustomError(apperrors.ErrInvalidTransition, string(kind)+" cannot move from "+from+" to "+to).
		WithDetails(map[string]interface{}{"entity": string(kind), "from": from, "to": to})
}

// TransitionDrive moves a drive along upcoming -> ongoing -> completed, or to
// cancelled from either non-terminal state. Completing a drive is refused while
// any of its applications still awaits a decision.
func (s *Store) TransitionDrive(ctx context.Context, id string, next models.DriveStatus) (models.Drive, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drive, err := s.st.requireDrive(id)
	if err != nil {
		return models.Drive{}, err
	}
	if !drive.Status.CanTransitionTo(next) {
		return models.Drive{}, invalidTransition(KindDrive, string(drive.Status), string(next))
	}
	if next == models.DriveCompleted && s.st.anyApplication(func(a models.Application) bool {
		return a.DriveID == id && a.Status.Pending()
	}) {
		return models.Drive{}, apperrors.NewCustomError(apperrors.ErrInvalidTransition, "drive has undecided applications").
			WithDetails(map[string]interface{}{"entity": string(KindDrive), "from": string(drive.Status), "to": string(next)})
	}

	drive.Status = next
	err = s.commit(ctx, Change{Kind: KindDrive, Op: OpUpdate, ID: id, Entity: drive}, func() {
		s.st.drives.put(id, drive)
	})
	if err != nil {
		return models.Drive{}, err
	}
	return drive, nil
}

// TransitionApplication moves an application through its table. Entering
// selected stamps selected_date once; later states keep it. A selection
// backed by an offer letter cannot be rejected until the offer is withdrawn.
func (s *Store) TransitionApplication(ctx context.Context, id string, next models.ApplicationStatus) (models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	app, err := s.st.requireApplication(id)
	if err != nil {
		return models.Application{}, err
	}
	if !app.Status.CanTransitionTo(next) {
		return models.Application{}, invalidTransition(KindApplication, string(app.Status), string(next))
	}
	if app.Status == models.ApplicationSelected {
		if _, exists := s.st.offerFor(app.StudentID, app.DriveID); exists {
			return models.Application{}, referenced(KindApplication, id, KindOfferLetter)
		}
	}

	app = app.Clone()
	app.Status = next
	if next == models.ApplicationSelected && app.SelectedDate == nil {
		now := s.now()
		app.SelectedDate = &now
	}

	err = s.commit(ctx, Change{Kind: KindApplication, Op: OpUpdate, ID: id, Entity: app.Clone()}, func() {
		s.st.putApplication(app)
	})
	if err != nil {
		return models.Application{}, err
	}
	return app.Clone(), nil
}
