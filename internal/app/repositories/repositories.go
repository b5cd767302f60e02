package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/dberrors"
)

// Querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances bound to one querier
type Repositories struct {
	Students     *StudentRepository
	Companies    *CompanyRepository
	Drives       *DriveRepository
	Applications *ApplicationRepository
	Offers       *OfferLetterRepository
}

// NewRepositories initializes all repositories
func NewRepositories(q Querier) *Repositories {
	return &Repositories{
		Students:     &StudentRepository{db: q},
		Companies:    &CompanyRepository{db: q},
		Drives:       &DriveRepository{db: q},
		Applications: &ApplicationRepository{db: q},
		Offers:       &OfferLetterRepository{db: q},
	}
}

// execOne runs a statement that must touch exactly one row
func execOne(ctx context.Context, q Querier, entity, id, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return dberrors.Translate(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(entity, id)
	}
	return nil
}
