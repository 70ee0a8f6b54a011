package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrSaveDeliveryCommandIsNotConstructed = errors.New(
		"SaveDeliveryCommand must be created via NewSaveDeliveryCommand constructor",
	)
)

// SaveDeliveryCommand submits the delivery form of an order. The draft is
// confirmed on construction; every field is required.
//
// Example:
//
//	draft := delivery.Draft{
//	    VehicleNo:     "KA-01-1234",
//	    DriverName:    "Ravi",
//	    DriverContact: "9000000000",
//	    DeliveryDate:  "2024-05-02",
//	    Status:        "in_transit",
//	}
//	cmd, err := NewSaveDeliveryCommand(kernel.MustNewOrderID("ORD-1001"), draft)
type SaveDeliveryCommand struct {
	orderID    kernel.OrderID
	submission delivery.Submission

	guard guard.ConstructorGuard
}

func NewSaveDeliveryCommand(orderID kernel.OrderID, draft delivery.Draft) (SaveDeliveryCommand, error) {
	submission, err := draft.Confirm()
	if err != nil {
		return SaveDeliveryCommand{}, err
	}
	if err := orderID.Validate(); err != nil {
		return SaveDeliveryCommand{}, errs.NewValidationErrorWithCause("delivery form has no order", err)
	}

	return SaveDeliveryCommand{
		orderID:    orderID,
		submission: submission,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SaveDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrSaveDeliveryCommandIsNotConstructed)
}

func (c SaveDeliveryCommand) OrderID() kernel.OrderID { return c.orderID }
func (c SaveDeliveryCommand) Submission() delivery.Submission { return c.submission }
