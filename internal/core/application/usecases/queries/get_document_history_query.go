package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetDocumentHistoryQueryIsNotConstructed = errors.New(
		"GetDocumentHistoryQuery must be created via NewGetDocumentHistoryQuery constructor",
	)
)

// GetDocumentHistoryQuery lists the invoices and labels issued for an order.
type GetDocumentHistoryQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

func NewGetDocumentHistoryQuery(orderID kernel.OrderID) (GetDocumentHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDocumentHistoryQuery{}, err
	}
	return GetDocumentHistoryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDocumentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetDocumentHistoryQueryIsNotConstructed)
}

func (q GetDocumentHistoryQuery) OrderID() kernel.OrderID { return q.orderID }

// GetDocumentHistoryQueryResponse is one archived issuance.
type GetDocumentHistoryQueryResponse struct {
	ID             kernel.UUID
	Kind           string
	Filename       string
	Checksum       string
	BarcodePayload string
	Pages          int
	IssuedAt       time.Time
}
