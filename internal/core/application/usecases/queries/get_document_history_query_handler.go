package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDocumentHistoryQueryHandler reads issued_documents directly with SQL.
type GetDocumentHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetDocumentHistoryQueryHandler(db *gorm.DB) GetDocumentHistoryQueryHandler {
	return GetDocumentHistoryQueryHandler{db: db}
}

// Handle returns the most recent issuance first. An order with no
// issuance yields an empty slice.
func (h GetDocumentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetDocumentHistoryQuery,
) ([]GetDocumentHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]GetDocumentHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			filename,
			checksum,
			barcode_payload,
			pages,
			issued_at
		FROM issued_documents
		WHERE order_id = ?
		ORDER BY issued_at DESC, id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetDocumentHistoryQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&item.Kind,
			&item.Filename,
			&item.Checksum,
			&item.BarcodePayload,
			&item.Pages,
			&item.IssuedAt,
		)
		if err != nil {
			return nil, err
		}

		documentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = documentID
		history = append(history, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
