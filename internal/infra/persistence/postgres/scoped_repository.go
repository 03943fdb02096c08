package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ownedFinder resolves records through an owner column. A record owned by someone else
// is indistinguishable from a missing one.
type ownedFinder[M any, E any] struct {
	db          *gorm.DB
	ownerColumn string
	notFound    error
	scopes      []func(*gorm.DB) *gorm.DB
	toDomain    func(*M) *E
}

// FindOwned returns the record with id when ownerID owns it.
func (f ownedFinder[M, E]) FindOwned(ctx context.Context, id, ownerID uuid.UUID) (*E, error) {
	var record M
	err := f.query(ctx, ownerID).
		Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}, Value: id}).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, f.notFound
		}

		return nil, errors.Wrap(err, "failed to find owned record")
	}

	return f.toDomain(&record), nil
}

// findOneByOwner returns the single record owned by ownerID, for one-per-owner tables.
func (f ownedFinder[M, E]) findOneByOwner(ctx context.Context, ownerID uuid.UUID) (*E, error) {
	var record M
	if err := f.query(ctx, ownerID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, f.notFound
		}

		return nil, errors.Wrap(err, "failed to find record by owner")
	}

	return f.toDomain(&record), nil
}

func (f ownedFinder[M, E]) query(ctx context.Context, ownerID uuid.UUID) *gorm.DB {
	return f.db.WithContext(ctx).
		Model(new(M)).
		Scopes(f.scopes...).
		Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: f.ownerColumn}, Value: ownerID})
}
