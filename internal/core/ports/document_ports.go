package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/kernel"
)

// BarcodeRenderer turns a barcode payload into a PNG symbol.
type BarcodeRenderer interface {
	Render(payload string) ([]byte, error)
}

// DocumentComposer lays sections out as a printable file. Composition is
// all or nothing: on error the returned handle is the zero value.
type DocumentComposer interface {
	Compose(sections document.Sections) (document.Handle, error)
}

// DocumentRepository is the local archive of issued documents.
type DocumentRepository interface {
	Add(ctx context.Context, record *document.Record) error
	Get(ctx context.Context, id kernel.UUID) (*document.Record, error)

	// ListByOrder returns the order's documents, most recent first.
	ListByOrder(ctx context.Context, orderID kernel.OrderID) ([]*document.Record, error)
}
