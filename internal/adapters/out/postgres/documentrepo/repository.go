package documentrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormDocumentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDocumentRepository(db *gorm.DB, tracker aggregateTracker) *GormDocumentRepository {
	return &GormDocumentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add archives a new issuance. Records are never updated.
func (r *GormDocumentRepository) Add(ctx context.Context, record *document.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

func (r *GormDocumentRepository) Get(ctx context.Context, id kernel.UUID) (*document.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DocumentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("document", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByOrder returns the order's issuances, most recent first. Ties on the
// issue time are broken by id so the order is stable.
func (r *GormDocumentRepository) ListByOrder(ctx context.Context, orderID kernel.OrderID) ([]*document.Record, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DocumentDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.String()).
		Order("issued_at DESC").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*document.Record, 0, len(dtos))
	for _, dto := range dtos {
		rec, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
