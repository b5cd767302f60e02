package placement

import (
	"context"
	"fmt"

	"github.com/yigit/placement/internal/app/models"
)

// OfferFilter narrows ListOffers. Zero fields match everything.
type OfferFilter struct {
	StudentID string
	DriveID   string
}

func (f OfferFilter) match(o models.OfferLetter) bool {
	if f.StudentID != "" && f.StudentID != o.StudentID {
		return false
	}
	if f.DriveID != "" && f.DriveID != o.DriveID {
		return false
	}
	return true
}

func (st *state) offerPayload(o models.OfferLetter) models.OfferPayload {
	student, _ := st.students.get(o.StudentID)
	drive, _ := st.drives.get(o.DriveID)
	return models.OfferPayload{
		OfferID:       o.ID,
		StudentID:     student.ID,
		StudentName:   student.Name,
		StudentRollNo: student.RollNo,
		CompanyID:     drive.CompanyID,
		CompanyName:   drive.CompanyName,
		DriveID:       drive.ID,
		Role:          drive.Role,
		Location:      drive.Location,
		FinalCTC:      o.FinalCTC,
		JoiningDate:   o.JoiningDate,
		OfferDate:     o.OfferDate,
	}
}

func (s *Store) render(payload models.OfferPayload) (string, error) {
	if s.renderer == nil {
		return "", nil
	}
	content, err := s.renderer.Render(payload)
	if err != nil {
		return "", fmt.Errorf("render offer letter: %w", err)
	}
	return content, nil
}

// IssueOffer creates the offer letter for a selected application and returns
// the fields a letter renderer needs. Preconditions are checked in order:
// student, drive, selected application, no previous offer for the pair.
func (s *Store) IssueOffer(ctx context.Context, in OfferInput) (models.OfferLetter, models.OfferPayload, error) {
	if err := validateOfferTerms(in.FinalCTC, in.JoiningDate); err != nil {
		return models.OfferLetter{}, models.OfferPayload{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.st.checkOfferCreate(in.StudentID, in.DriveID); err != nil {
		return models.OfferLetter{}, models.OfferPayload{}, err
	}

	offer := models.OfferLetter{
		ID:          s.newID(),
		StudentID:   in.StudentID,
		DriveID:     in.DriveID,
		FinalCTC:    in.FinalCTC,
		JoiningDate: in.JoiningDate.UTC(),
		OfferDate:   s.now(),
	}
	payload := s.st.offerPayload(offer)
	content, err := s.render(payload)
	if err != nil {
		return models.OfferLetter{}, models.OfferPayload{}, err
	}
	offer.LetterContent = content

	err = s.commit(ctx, Change{Kind: KindOfferLetter, Op: OpCreate, ID: offer.ID, Entity: offer}, func() {
		s.st.putOffer(offer)
	})
	if err != nil {
		return models.OfferLetter{}, models.OfferPayload{}, err
	}
	return offer, payload, nil
}

// GetOffer returns an offer letter by id
func (s *Store) GetOffer(id string) (models.OfferLetter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.requireOffer(id)
}

// OfferPayload returns the rendering fields of an issued offer
func (s *Store) OfferPayload(id string) (models.OfferPayload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	offer, err := s.st.requireOffer(id)
	if err != nil {
		return models.OfferPayload{}, err
	}
	return s.st.offerPayload(offer), nil
}

// UpdateOffer revises the compensation or joining date and re-renders the letter
func (s *Store) UpdateOffer(ctx context.Context, id string, in OfferUpdate) (models.OfferLetter, error) {
	if err := validateOfferTerms(in.FinalCTC, in.JoiningDate); err != nil {
		return models.OfferLetter{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	offer, err := s.st.requireOffer(id)
	if err != nil {
		return models.OfferLetter{}, err
	}
	offer.FinalCTC = in.FinalCTC
	offer.JoiningDate = in.JoiningDate.UTC()

	content, err := s.render(s.st.offerPayload(offer))
	if err != nil {
		return models.OfferLetter{}, err
	}
	offer.LetterContent = content

	err = s.commit(ctx, Change{Kind: KindOfferLetter, Op: OpUpdate, ID: id, Entity: offer}, func() {
		s.st.putOffer(offer)
	})
	if err != nil {
		return models.OfferLetter{}, err
	}
	return offer, nil
}

// DeleteOffer withdraws an offer letter
func (s *Store) DeleteOffer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	offer, err := s.st.requireOffer(id)
	if err != nil {
		return err
	}
	return s.commit(ctx, Change{Kind: KindOfferLetter, Op: OpDelete, ID: id, Entity: offer}, func() {
		s.st.removeOffer(offer)
	})
}

// ListOffers returns matching offer letters in issue order
func (s *Store) ListOffers(filter OfferFilter) []models.OfferLetter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.OfferLetter, 0)
	s.st.offers.each(func(v models.OfferLetter) bool {
		if filter.match(v) {
			out = append(out, v)
		}
		return true
	})
	return out
}
