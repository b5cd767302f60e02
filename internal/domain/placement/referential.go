package placement

import (
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
)

// The checks below only read state; none of them mutates it.

func notFound(kind Kind, id string) error {
	return apperrors.NewNotFoundError(string(kind), id)
}

func referenced(kind Kind, id string, by Kind) error {
	return apperrors.NewCustomError(apperrors.ErrReferencedEntity, string(kind)+" is referenced by "+string(by)).
		WithDetails(map[string]interface{}{"entity": string(kind), "id": id, "referenced_by": string(by)})
}

func (st *state) requireStudent(id string) (models.Student, error) {
	v, ok := st.students.get(id)
	if !ok {
		return models.Student{}, notFound(KindStudent, id)
	}
	return v, nil
}

func (st *state) requireCompany(id string) (models.Company, error) {
	v, ok := st.companies.get(id)
	if !ok {
		return models.Company{}, notFound(KindCompany, id)
	}
	return v, nil
}

func (st *state) requireDrive(id string) (models.Drive, error) {
	v, ok := st.drives.get(id)
	if !ok {
		return models.Drive{}, notFound(KindDrive, id)
	}
	return v, nil
}

func (st *state) requireApplication(id string) (models.Application, error) {
	v, ok := st.applications.get(id)
	if !ok {
		return models.Application{}, notFound(KindApplication, id)
	}
	return v, nil
}

func (st *state) requireOffer(id string) (models.OfferLetter, error) {
	v, ok := st.offers.get(id)
	if !ok {
		return models.OfferLetter{}, notFound(KindOfferLetter, id)
	}
	return v, nil
}

// requireParticipants checks the student first, then the drive
func (st *state) requireParticipants(studentID, driveID string) error {
	if _, err := st.requireStudent(studentID); err != nil {
		return err
	}
	if _, err := st.requireDrive(driveID); err != nil {
		return err
	}
	return nil
}

func (st *state) checkApplicationUnique(studentID, driveID string) error {
	if _, exists := st.applicationFor(studentID, driveID); exists {
		return apperrors.NewCustomError(apperrors.ErrDuplicateApplication, "application already exists").
			WithDetails(map[string]interface{}{"student_id": studentID, "drive_id": driveID})
	}
	return nil
}

// checkApplicationCreate validates a new (student, drive) application
func (st *state) checkApplicationCreate(studentID, driveID string) error {
	if err := st.requireParticipants(studentID, driveID); err != nil {
		return err
	}
	return st.checkApplicationUnique(studentID, driveID)
}

// checkOfferCreate applies the offer preconditions in order, first failure wins:
// student, drive, selected application, no prior offer.
func (st *state) checkOfferCreate(studentID, driveID string) error {
	if err := st.requireParticipants(studentID, driveID); err != nil {
		return err
	}
	app, ok := st.applicationFor(studentID, driveID)
	if !ok {
		return apperrors.NewCustomError(apperrors.ErrIneligibleOffer, "no application for student and drive").
			WithDetails(map[string]interface{}{"student_id": studentID, "drive_id": driveID})
	}
	if app.Status != models.ApplicationSelected {
		return apperrors.NewCustomError(apperrors.ErrIneligibleOffer, "application is not selected").
			WithDetails(map[string]interface{}{"application_id": app.ID, "status": string(app.Status)})
	}
	if _, exists := st.offerFor(studentID, driveID); exists {
		return apperrors.NewCustomError(apperrors.ErrDuplicateOffer, "offer letter already exists").
			WithDetails(map[string]interface{}{"student_id": studentID, "drive_id": driveID})
	}
	return nil
}

// checkRollNoUnique rejects a roll number held by any student other than exceptID
func (st *state) checkRollNoUnique(rollNo, exceptID string) error {
	var clash bool
	st.students.each(func(s models.Student) bool {
		if s.RollNo == rollNo && s.ID != exceptID {
			clash = true
			return false
		}
		return true
	})
	if clash {
		return apperrors.NewCustomError(apperrors.ErrDuplicateRollNumber, "roll number already registered").
			WithDetails(map[string]interface{}{"roll_no": rollNo})
	}
	return nil
}

func (st *state) checkStudentDelete(id string) error {
	if st.anyApplication(func(a models.Application) bool { return a.StudentID == id }) {
		return referenced(KindStudent, id, KindApplication)
	}
	if st.anyOffer(func(o models.OfferLetter) bool { return o.StudentID == id }) {
		return referenced(KindStudent, id, KindOfferLetter)
	}
	return nil
}

func (st *state) checkDriveDelete(id string) error {
	if st.anyApplication(func(a models.Application) bool { return a.DriveID == id }) {
		return referenced(KindDrive, id, KindApplication)
	}
	if st.anyOffer(func(o models.OfferLetter) bool { return o.DriveID == id }) {
		return referenced(KindDrive, id, KindOfferLetter)
	}
	return nil
}

func (st *state) checkCompanyDelete(id string) error {
	var used bool
	st.drives.each(func(d models.Drive) bool {
		used = d.CompanyID == id
		return !used
	})
	if used {
		return referenced(KindCompany, id, KindDrive)
	}
	return nil
}

// An offer depends on its selected application, so the application outlives it.
func (st *state) checkApplicationDelete(a models.Application) error {
	if _, exists := st.offerFor(a.StudentID, a.DriveID); exists {
		return referenced(KindApplication, a.ID, KindOfferLetter)
	}
	return nil
}

func (st *state) anyApplication(match func(models.Application) bool) bool {
	var found bool
	st.applications.each(func(a models.Application) bool {
		found = match(a)
		return !found
	})
	return found
}

func (st *state) anyOffer(match func(models.OfferLetter) bool) bool {
	var found bool
	st.offers.each(func(o models.OfferLetter) bool {
		found = match(o)
		return !found
	})
	return found
}
