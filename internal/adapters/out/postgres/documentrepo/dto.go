// Package documentrepo persists the archive of issued invoices and package
// labels. Only the metadata of an issuance is stored; the document itself is
// recomposed on demand.
package documentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DocumentDTO is one row of issued_documents. Listing by order is the only
// access path besides the primary key.
type DocumentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        string    `gorm:"type:varchar(64);not null;index:idx_issued_documents_order_issued,priority:1"`
	Kind           string    `gorm:"type:varchar(16);not null"`
	Filename       string    `gorm:"type:varchar(255);not null"`
	Checksum       string    `gorm:"type:char(64)"`
	BarcodePayload string    `gorm:"type:text"`
	Pages          int       `gorm:"not null"`
	IssuedAt       time.Time `gorm:"not null;index:idx_issued_documents_order_issued,priority:2"`
}

func (DocumentDTO) TableName() string {
	return "issued_documents"
}

func fromDomain(r *document.Record) DocumentDTO {
	return DocumentDTO{
		ID:             r.ID().Bytes(),
		OrderID:        r.OrderID().String(),
		Kind:           r.Kind().String(),
		Filename:       r.Filename(),
		Checksum:       r.Checksum(),
		BarcodePayload: r.BarcodePayload(),
		Pages:          r.Pages(),
		IssuedAt:       r.IssuedAt(),
	}
}

func toDomain(dto DocumentDTO) (*document.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.NewOrderID(dto.OrderID)
	if err != nil {
		return nil, err
	}
	kind, err := document.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}
	return document.RestoreRecord(id, orderID, kind, dto.Filename, dto.Checksum, dto.BarcodePayload, dto.Pages, dto.IssuedAt)
}
