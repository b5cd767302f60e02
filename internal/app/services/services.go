package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/placement/internal/domain/placement"
	"github.com/yigit/placement/internal/pkg/events"
)

// Services holds all the service instances
type Services struct {
	Students     StudentService
	Companies    CompanyService
	Drives       DriveService
	Applications ApplicationService
	Offers       OfferLetterService
	Reports      ReportService
}

// NewServices wires every service to one store and event publisher
func NewServices(store *placement.Store, publisher events.Publisher, log zerolog.Logger) *Services {
	return &Services{
		Students:     NewStudentService(store, log),
		Companies:    NewCompanyService(store, log),
		Drives:       NewDriveService(store, publisher, log),
		Applications: NewApplicationService(store, publisher, log),
		Offers:       NewOfferLetterService(store, publisher, log),
		Reports:      NewReportService(store),
	}
}

// notifier publishes events after a mutation has committed. Failures are
// logged and never reach the caller.
type notifier struct {
	publisher events.Publisher
	log       zerolog.Logger
}

func newNotifier(publisher events.Publisher, log zerolog.Logger) notifier {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return notifier{publisher: publisher, log: log.With().Str("component", "events").Logger()}
}

func (n notifier) notify(ctx context.Context, event events.Event) {
	if err := n.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		n.log.Warn().Err(err).Str("event", event.Type).Str("entity_id", event.EntityID).Msg("Failed to publish event")
	}
}
