package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/db"
	"github.com/yigit/placement/internal/domain/placement"
)

// TxRunner runs a function inside a database transaction
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// Persister writes store changes through to Postgres, one transaction per change
type Persister struct {
	tx TxRunner
}

// NewPersister creates a write-through persister
func NewPersister(tx TxRunner) *Persister {
	return &Persister{tx: tx}
}

// Persist implements placement.Persister
func (p *Persister) Persist(ctx context.Context, change placement.Change) error {
	return p.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return NewRepositories(tx).apply(ctx, change)
	})
}

func (r *Repositories) apply(ctx context.Context, c placement.Change) error {
	if c.Op == placement.OpDelete {
		return r.delete(ctx, c.Kind, c.ID)
	}

	switch e := c.Entity.(type) {
	case models.Student:
		if c.Op == placement.OpCreate {
			return r.Students.Create(ctx, e)
		}
		return r.Students.Update(ctx, e)
	case models.Company:
		if c.Op == placement.OpCreate {
			return r.Companies.Create(ctx, e)
		}
		return r.Companies.Update(ctx, e)
	case models.Drive:
		if c.Op == placement.OpCreate {
			return r.Drives.Create(ctx, e)
		}
		return r.Drives.Update(ctx, e)
	case models.Application:
		if c.Op == placement.OpCreate {
			return r.Applications.Create(ctx, e)
		}
		return r.Applications.UpdateStatus(ctx, e)
	case models.OfferLetter:
		if c.Op == placement.OpCreate {
			return r.Offers.Create(ctx, e)
		}
		return r.Offers.Update(ctx, e)
	}
	return fmt.Errorf("unsupported change %s %s (%T)", c.Op, c.Kind, c.Entity)
}

func (r *Repositories) delete(ctx context.Context, kind placement.Kind, id string) error {
	switch kind {
	case placement.KindStudent:
		return r.Students.Delete(ctx, id)
	case placement.KindCompany:
		return r.Companies.Delete(ctx, id)
	case placement.KindDrive:
		return r.Drives.Delete(ctx, id)
	case placement.KindApplication:
		return r.Applications.Delete(ctx, id)
	case placement.KindOfferLetter:
		return r.Offers.Delete(ctx, id)
	}
	return fmt.Errorf("unsupported delete of %s", kind)
}

// LoadSnapshot reads every table in dependency order
func (r *Repositories) LoadSnapshot(ctx context.Context) (placement.Snapshot, error) {
	var (
		snap placement.Snapshot
		err  error
	)
	if snap.Students, err = r.Students.GetAll(ctx); err != nil {
		return snap, err
	}
	if snap.Companies, err = r.Companies.GetAll(ctx); err != nil {
		return snap, err
	}
	if snap.Drives, err = r.Drives.GetAll(ctx); err != nil {
		return snap, err
	}
	if snap.Applications, err = r.Applications.GetAll(ctx); err != nil {
		return snap, err
	}
	if snap.Offers, err = r.Offers.GetAll(ctx); err != nil {
		return snap, err
	}
	return snap, nil
}
