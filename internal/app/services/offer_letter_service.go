package services

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/domain/placement"
	"github.com/yigit/placement/internal/pkg/events"
)

// OfferLetterService handles offer letters
type OfferLetterService interface {
	Issue(ctx context.Context, in placement.OfferInput) (dto.OfferLetterResponse, error)
	Get(ctx context.Context, id string) (dto.OfferLetterResponse, error)
	Update(ctx context.Context, id string, in placement.OfferUpdate) (dto.OfferLetterResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter placement.OfferFilter) []dto.OfferLetterResponse
}

type offerLetterService struct {
	store    *placement.Store
	notifier notifier
	log      zerolog.Logger
}

// NewOfferLetterService creates a new offer letter service instance
func NewOfferLetterService(store *placement.Store, publisher events.Publisher, log zerolog.Logger) OfferLetterService {
	return &offerLetterService{store: store, notifier: newNotifier(publisher, log), log: log.With().Str("service", "offers").Logger()}
}

func (s *offerLetterService) Issue(ctx context.Context, in placement.OfferInput) (dto.OfferLetterResponse, error) {
	offer, payload, err := s.store.IssueOffer(ctx, in)
	if err != nil {
		return dto.OfferLetterResponse{}, err
	}
	s.log.Info().Str("offer_id", offer.ID).Str("student_id", offer.StudentID).Str("drive_id", offer.DriveID).Msg("Offer letter issued")
	s.notifier.notify(ctx, events.New(events.OfferIssued, offer.ID, map[string]string{
		"student_id":   offer.StudentID,
		"drive_id":     offer.DriveID,
		"company_name": payload.CompanyName,
		"final_ctc":    strconv.FormatFloat(offer.FinalCTC, 'f', -1, 64),
	}))
	return dto.NewOfferLetterResponse(offer, payload), nil
}

func (s *offerLetterService) Get(_ context.Context, id string) (dto.OfferLetterResponse, error) {
	offer, err := s.store.GetOffer(id)
	if err != nil {
		return dto.OfferLetterResponse{}, err
	}
	payload, err := s.store.OfferPayload(id)
	if err != nil {
		return dto.OfferLetterResponse{}, err
	}
	return dto.NewOfferLetterResponse(offer, payload), nil
}

func (s *offerLetterService) Update(ctx context.Context, id string, in placement.OfferUpdate) (dto.OfferLetterResponse, error) {
	offer, err := s.store.UpdateOffer(ctx, id, in)
	if err != nil {
		return dto.OfferLetterResponse{}, err
	}
	payload, err := s.store.OfferPayload(id)
	if err != nil {
		return dto.OfferLetterResponse{}, err
	}
	s.log.Info().Str("offer_id", id).Msg("Offer letter revised")
	return dto.NewOfferLetterResponse(offer, payload), nil
}

func (s *offerLetterService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteOffer(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("offer_id", id).Msg("Offer letter withdrawn")
	return nil
}

func (s *offerLetterService) List(_ context.Context, filter placement.OfferFilter) []dto.OfferLetterResponse {
	offers := s.store.ListOffers(filter)
	out := make([]dto.OfferLetterResponse, 0, len(offers))
	for _, o := range offers {
		payload, err := s.store.OfferPayload(o.ID)
		if err != nil {
			// withdrawn between the two reads
			continue
		}
		out = append(out, dto.NewOfferLetterResponse(o, payload))
	}
	return out
}
