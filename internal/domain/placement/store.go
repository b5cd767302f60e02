package placement

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/placement/internal/app/models"
)

// Kind names an entity collection
type Kind string

const (
	KindStudent     Kind = "student"
	KindCompany     Kind = "company"
	KindDrive       Kind = "drive"
	KindApplication Kind = "application"
	KindOfferLetter Kind = "offer_letter"
)

// Op is the kind of mutation a Change describes
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Change is one validated mutation about to be applied. Entity holds the
// new value for create and update and the removed value for delete.
type Change struct {
	Kind   Kind
	Op     Op
	ID     string
	Entity any
}

// Persister writes a validated change to durable storage. It is called with
// the store's write lock held; a returned error aborts the mutation before
// anything is applied in memory.
type Persister interface {
	Persist(ctx context.Context, change Change) error
}

// LetterRenderer produces letter_content for an offer
type LetterRenderer interface {
	Render(payload models.OfferPayload) (string, error)
}

// Store is the entity store. The zero value is not usable; call NewStore.
type Store struct {
	mu sync.RWMutex
	st *state

	persister     Persister
	renderer      LetterRenderer
	now           func() time.Time
	newID         func() string
	strictBacklog bool
}

// Option configures a Store
type Option func(*Store)

// WithPersister enables write-through persistence
func WithPersister(p Persister) Option {
	return func(s *Store) { s.persister = p }
}

// WithLetterRenderer sets the renderer used for offer letter content
func WithLetterRenderer(r LetterRenderer) Option {
	return func(s *Store) { s.renderer = r }
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the UUID generator
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithStrictBacklogStatus toggles the rule
// backlog_status = not_applicable <=> backlogs_count = 0.
func WithStrictBacklogStatus(strict bool) Option {
	return func(s *Store) { s.strictBacklog = strict }
}

// NewStore creates an empty store
func NewStore(opts ...Option) *Store {
	s := &Store{
		st:            newState(),
		now:           func() time.Time { return time.Now().UTC() },
		newID:         uuid.NewString,
		strictBacklog: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// commit persists the change and then applies it. Callers hold the write lock.
func (s *Store) commit(ctx context.Context, change Change, apply func()) error {
	if s.persister != nil {
		if err := s.persister.Persist(ctx, change); err != nil {
			return fmt.Errorf("persist %s %s: %w", change.Op, change.Kind, err)
		}
	}
	apply()
	return nil
}

// Snapshot is a point-in-time copy of every collection in insertion order
type Snapshot struct {
	Students     []models.Student     `json:"students"`
	Companies    []models.Company     `json:"companies"`
	Drives       []models.Drive       `json:"drives"`
	Applications []models.Application `json:"applications"`
	Offers       []models.OfferLetter `json:"offer_letters"`
}

// Snapshot returns a deep copy of the current state
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var snap Snapshot
	s.st.students.each(func(v models.Student) bool {
		snap.Students = append(snap.Students, v.Clone())
		return true
	})
	s.st.companies.each(func(v models.Company) bool {
		snap.Companies = append(snap.Companies, v.Clone())
		return true
	})
	s.st.drives.each(func(v models.Drive) bool {
		snap.Drives = append(snap.Drives, v)
		return true
	})
	s.st.applications.each(func(v models.Application) bool {
		snap.Applications = append(snap.Applications, v.Clone())
		return true
	})
	s.st.offers.each(func(v models.OfferLetter) bool {
		snap.Offers = append(snap.Offers, v)
		return true
	})
	return snap
}

// Restore replaces the store contents with snap. The snapshot must be
// referentially complete; nothing is replaced when it is not. Restore does
// not call the Persister.
func (s *Store) Restore(snap Snapshot) error {
	st := newState()
	for _, v := range snap.Students {
		st.students.put(v.ID, v.Clone())
	}
	for _, v := range snap.Companies {
		st.companies.put(v.ID, v.Clone())
	}
	for _, v := range snap.Drives {
		if _, ok := st.companies.get(v.CompanyID); !ok {
			return notFound(KindCompany, v.CompanyID)
		}
		st.drives.put(v.ID, v)
	}
	for _, v := range snap.Applications {
		if err := st.requireParticipants(v.StudentID, v.DriveID); err != nil {
			return err
		}
		if err := st.checkApplicationUnique(v.StudentID, v.DriveID); err != nil {
			return err
		}
		st.putApplication(v.Clone())
	}
	for _, v := range snap.Offers {
		if err := st.checkOfferCreate(v.StudentID, v.DriveID); err != nil {
			return err
		}
		st.putOffer(v)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = st
	return nil
}
