package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// Steps of a delivery save, reported by SaveDeliveryStepError.
const (
	StepResolveDriver  = "resolve driver"
	StepUpdateDelivery = "update delivery"
)

// SaveDeliveryStepError reports which remote step of a delivery save failed.
// The steps are not atomic: when StepUpdateDelivery fails the driver lookup
// has already been written.
type SaveDeliveryStepError struct {
	Step string
	Err  error
}

func (e *SaveDeliveryStepError) Error() string {
	return fmt.Sprintf("save delivery: %s: %v", e.Step, e.Err)
}

func (e *SaveDeliveryStepError) Unwrap() error {
	return e.Err
}

// SaveDeliveryResult is the stored delivery and the driver it was saved with.
type SaveDeliveryResult struct {
	Delivery      delivery.Record
	Driver        delivery.Driver
	DriverCreated bool
}

// SaveDeliveryCommandHandler stores a confirmed delivery form in two remote
// steps: the driver is matched by vehicle number (case-insensitively) and
// updated, or created when unknown; then the delivery record is updated.
// A delivered record is locked and rejects the form before any write.
type SaveDeliveryCommandHandler struct {
	deliveries   ports.DeliveryGateway
	drivers      ports.DriverGateway
	stateMachine services.StatusStateMachine
}

func NewSaveDeliveryCommandHandler(deliveries ports.DeliveryGateway, drivers ports.DriverGateway) SaveDeliveryCommandHandler {
	return SaveDeliveryCommandHandler{
		deliveries:   deliveries,
		drivers:      drivers,
		stateMachine: services.NewStatusStateMachine(),
	}
}

func (h SaveDeliveryCommandHandler) Handle(ctx context.Context, cmd SaveDeliveryCommand) (SaveDeliveryResult, error) {
	if err := cmd.Validate(); err != nil {
		return SaveDeliveryResult{}, err
	}

	current, err := h.deliveries.GetDeliveryByOrder(ctx, cmd.OrderID())
	if err != nil {
		return SaveDeliveryResult{}, err
	}
	if current.IsLocked() {
		return SaveDeliveryResult{}, errs.NewInvalidStageError(
			services.DeliveryStage.String(), "edit delivery", current.Status().String())
	}

	submission := cmd.Submission()
	if submission.Status != current.Status() {
		if err := h.stateMachine.ValidateTransition(
			services.DeliveryStage,
			current.Status().String(),
			submission.Status.String(),
			services.TransitionMetadata{},
		); err != nil {
			return SaveDeliveryResult{}, err
		}
	}

	driver, created, err := h.resolveDriver(ctx, submission.Assignment)
	if err != nil {
		return SaveDeliveryResult{}, &SaveDeliveryStepError{Step: StepResolveDriver, Err: err}
	}

	updated, err := h.deliveries.UpdateDelivery(ctx, current.ID(), submission)
	if err != nil {
		return SaveDeliveryResult{}, &SaveDeliveryStepError{Step: StepUpdateDelivery, Err: err}
	}

	return SaveDeliveryResult{Delivery: updated, Driver: driver, DriverCreated: created}, nil
}

func (h SaveDeliveryCommandHandler) resolveDriver(
	ctx context.Context,
	assignment delivery.Assignment,
) (delivery.Driver, bool, error) {
	known, err := h.drivers.ListDrivers(ctx)
	if err != nil {
		return delivery.Driver{}, false, err
	}

	if existing, ok := delivery.FindByVehicle(known, assignment.VehicleNo); ok {
		updated, err := h.drivers.UpdateDriver(ctx, existing.WithContact(assignment.DriverName, assignment.DriverContact))
		return updated, false, err
	}

	driver, err := delivery.NewDriver("", assignment.DriverName, assignment.DriverContact, assignment.VehicleNo)
	if err != nil {
		return delivery.Driver{}, false, errs.NewValidationErrorWithCause("driver is invalid", err)
	}
	created, err := h.drivers.CreateDriver(ctx, driver)
	return created, true, err
}
