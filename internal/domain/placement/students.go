package placement

import (
	"context"
	"strings"

	"github.com/yigit/placement/internal/app/models"
)

// StudentFilter narrows ListStudents. Zero fields match everything.
type StudentFilter struct {
	Branch       string
	Year         int
	CRTFeeStatus models.CRTFeeStatus
}

func (f StudentFilter) match(s models.Student) bool {
	if f.Branch != "" && !strings.EqualFold(f.Branch, s.Branch) {
		return false
	}
	if f.Year != 0 && f.Year != s.Year {
		return false
	}
	if f.CRTFeeStatus != "" && f.CRTFeeStatus != s.CRTFeeStatus {
		return false
	}
	return true
}

func (in StudentInput) apply(s *models.Student) {
	s.Name = strings.TrimSpace(in.Name)
	s.RollNo = strings.TrimSpace(in.RollNo)
	s.Branch = strings.TrimSpace(in.Branch)
	s.Section = strings.TrimSpace(in.Section)
	s.Year = in.Year
	s.SSCPercentage = in.SSCPercentage
	s.InterDiplomaPercentage = in.InterDiplomaPercentage
	s.CGPA = in.CGPA
	s.BacklogsCount = in.BacklogsCount
	s.BacklogStatus = in.BacklogStatus
	s.YearOfPassing = in.YearOfPassing
	s.Email = strings.TrimSpace(in.Email)
	s.Phone = strings.TrimSpace(in.Phone)
	s.ResumeURL = optionalText(in.ResumeURL)
	s.Skills = normalizeSkills(in.Skills)
	s.CRTFeeStatus = in.CRTFeeStatus
	s.CRTFeeAmount = in.CRTFeeAmount
	s.CRTReceiptNumber = optionalText(in.CRTReceiptNumber)
}

// CreateStudent registers a student
func (s *Store) CreateStudent(ctx context.Context, in StudentInput) (models.Student, error) {
	if err := validateStudent(&in, s.strictBacklog); err != nil {
		return models.Student{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.st.checkRollNoUnique(strings.TrimSpace(in.RollNo), ""); err != nil {
		return models.Student{}, err
	}

	student := models.Student{ID: s.newID(), CreatedAt: s.now()}
	in.apply(&student)

	err := s.commit(ctx, Change{Kind: KindStudent, Op: OpCreate, ID: student.ID, Entity: student.Clone()}, func() {
		s.st.students.put(student.ID, student)
	})
	if err != nil {
		return models.Student{}, err
	}
	return student.Clone(), nil
}

// GetStudent returns a student by id
func (s *Store) GetStudent(id string) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	student, err := s.st.requireStudent(id)
	if err != nil {
		return models.Student{}, err
	}
	return student.Clone(), nil
}

// UpdateStudent replaces the editable fields of a student
func (s *Store) UpdateStudent(ctx context.Context, id string, in StudentInput) (models.Student, error) {
	if err := validateStudent(&in, s.strictBacklog); err != nil {
		return models.Student{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	student, err := s.st.requireStudent(id)
	if err != nil {
		return models.Student{}, err
	}
	if err := s.st.checkRollNoUnique(strings.TrimSpace(in.RollNo), id); err != nil {
		return models.Student{}, err
	}

	in.apply(&student)
	err = s.commit(ctx, Change{Kind: KindStudent, Op: OpUpdate, ID: id, Entity: student.Clone()}, func() {
		s.st.students.put(id, student)
	})
	if err != nil {
		return models.Student{}, err
	}
	return student.Clone(), nil
}

// DeleteStudent removes a student that nothing references
func (s *Store) DeleteStudent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, err := s.st.requireStudent(id)
	if err != nil {
		return err
	}
	if err := s.st.checkStudentDelete(id); err != nil {
		return err
	}
	return s.commit(ctx, Change{Kind: KindStudent, Op: OpDelete, ID: id, Entity: student}, func() {
		s.st.students.remove(id)
	})
}

// ListStudents returns matching students in registration order
func (s *Store) ListStudents(filter StudentFilter) []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Student, 0, s.st.students.len())
	s.st.students.each(func(v models.Student) bool {
		if filter.match(v) {
			out = append(out, v.Clone())
		}
		return true
	})
	return out
}
