// Package queries contains read operations for retrieving pipeline state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read through the order service gateways, except the document
// history which is served from the local archive.
package queries

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetPipelineQueryIsNotConstructed = errors.New(
		"GetPipelineQuery must be created via NewGetPipelineQuery constructor",
	)
)

// GetPipelineQuery loads everything known about one order: the order itself
// and its production, packaging and delivery records.
//
// Example:
//
//	query, err := NewGetPipelineQuery(kernel.MustNewOrderID("ORD-1001"), "wcut")
//	if err != nil {
//	    return err
//	}
//
//	pipeline, err := handler.Handle(ctx, query)
type GetPipelineQuery struct {
	orderID kernel.OrderID
	line    string

	guard guard.ConstructorGuard
}

// NewGetPipelineQuery creates a query for orderID. line is the production
// line the order is scheduled on.
func NewGetPipelineQuery(orderID kernel.OrderID, line string) (GetPipelineQuery, error) {
	query := GetPipelineQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setLine(line),
	); err != nil {
		return GetPipelineQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPipelineQuery) Validate() error {
	return q.guard.Validate(ErrGetPipelineQueryIsNotConstructed)
}

func (q GetPipelineQuery) OrderID() kernel.OrderID { return q.orderID }
func (q GetPipelineQuery) Line() string { return q.line }

func (q *GetPipelineQuery) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetPipelineQuery) setLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return errs.NewValueIsRequiredError("line")
	}

	q.line = line
	return nil
}
