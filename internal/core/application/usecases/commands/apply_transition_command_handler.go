package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// TransitionResult is the record as the order service stored it after the
// transition. Exactly one of the stage records is set, matching Stage.
type TransitionResult struct {
	Stage      services.Stage
	From       string
	To         string
	Production *production.Record
	Package    *packaging.Record
	Delivery   *delivery.Record
}

// ApplyTransitionCommandHandler validates a transition against the current
// record and only then forwards it. When the order service rejects the
// update the error is returned and nothing is changed locally; the caller
// keeps the record it had.
type ApplyTransitionCommandHandler struct {
	production   ports.ProductionGateway
	packages     ports.PackageGateway
	deliveries   ports.DeliveryGateway
	stateMachine services.StatusStateMachine
}

func NewApplyTransitionCommandHandler(
	production ports.ProductionGateway,
	packages ports.PackageGateway,
	deliveries ports.DeliveryGateway,
) ApplyTransitionCommandHandler {
	return ApplyTransitionCommandHandler{
		production:   production,
		packages:     packages,
		deliveries:   deliveries,
		stateMachine: services.NewStatusStateMachine(),
	}
}

func (h ApplyTransitionCommandHandler) Handle(ctx context.Context, cmd ApplyTransitionCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	switch cmd.Stage() {
	case services.ProductionStage:
		return h.applyProduction(ctx, cmd)
	case services.PackagingStage:
		return h.applyPackaging(ctx, cmd)
	case services.DeliveryStage:
		return h.applyDelivery(ctx, cmd)
	case services.UnknownStage:
	}
	return TransitionResult{}, errs.NewValidationError(fmt.Sprintf("unknown stage %q", cmd.Stage()))
}

func (h ApplyTransitionCommandHandler) applyProduction(ctx context.Context, cmd ApplyTransitionCommand) (TransitionResult, error) {
	line := cmd.Scope().Line
	current, err := h.production.GetProduction(ctx, line, cmd.OrderID())
	if err != nil {
		return TransitionResult{}, err
	}

	from := current.Status().String()
	if err := h.stateMachine.ValidateTransition(cmd.Stage(), from, cmd.Target(), cmd.Metadata()); err != nil {
		return TransitionResult{}, err
	}
	target, err := production.ParseStatus(cmd.Target())
	if err != nil {
		return TransitionResult{}, errs.NewValidationErrorWithCause("target production status is invalid", err)
	}

	meta := cmd.Metadata()
	updated, err := h.production.UpdateProductionStatus(ctx, line, cmd.OrderID(), target, meta.Unit, meta.Remark)
	if err != nil {
		return TransitionResult{}, err
	}
	return TransitionResult{Stage: cmd.Stage(), From: from, To: target.String(), Production: &updated}, nil
}

func (h ApplyTransitionCommandHandler) applyPackaging(ctx context.Context, cmd ApplyTransitionCommand) (TransitionResult, error) {
	records, err := h.packages.ListPackages(ctx, cmd.OrderID())
	if err != nil {
		return TransitionResult{}, err
	}
	current, err := selectPackageRecord(records, cmd.OrderID(), cmd.Scope().RecordID)
	if err != nil {
		return TransitionResult{}, err
	}

	from := current.Status().String()
	if err := h.stateMachine.ValidateTransition(cmd.Stage(), from, cmd.Target(), cmd.Metadata()); err != nil {
		return TransitionResult{}, err
	}
	target, err := packaging.ParseStatus(cmd.Target())
	if err != nil {
		return TransitionResult{}, errs.NewValidationErrorWithCause("target packaging status is invalid", err)
	}

	updated, err := h.packages.UpdatePackageStatus(ctx, current.ID(), target)
	if err != nil {
		return TransitionResult{}, err
	}
	return TransitionResult{Stage: cmd.Stage(), From: from, To: target.String(), Package: &updated}, nil
}

func (h ApplyTransitionCommandHandler) applyDelivery(ctx context.Context, cmd ApplyTransitionCommand) (TransitionResult, error) {
	current, err := h.deliveries.GetDeliveryByOrder(ctx, cmd.OrderID())
	if err != nil {
		return TransitionResult{}, err
	}

	from := current.Status().String()
	if err := h.stateMachine.ValidateTransition(cmd.Stage(), from, cmd.Target(), cmd.Metadata()); err != nil {
		return TransitionResult{}, err
	}
	target, err := delivery.ParseStatus(cmd.Target())
	if err != nil {
		return TransitionResult{}, errs.NewValidationErrorWithCause("target delivery status is invalid", err)
	}

	updated, err := h.deliveries.UpdateDeliveryStatus(ctx, current.ID(), target)
	if err != nil {
		return TransitionResult{}, err
	}
	return TransitionResult{Stage: cmd.Stage(), From: from, To: target.String(), Delivery: &updated}, nil
}

// selectPackageRecord picks the record a packaging transition applies to.
// recordID may be omitted only when the order has a single record.
func selectPackageRecord(records []packaging.Record, orderID kernel.OrderID, recordID string) (packaging.Record, error) {
	if recordID != "" {
		for _, r := range records {
			if r.ID() == recordID {
				return r, nil
			}
		}
		return packaging.Record{}, errs.NewObjectNotFoundError("package record", recordID)
	}

	switch len(records) {
	case 0:
		return packaging.Record{}, errs.NewObjectNotFoundError("package record of order", orderID)
	case 1:
		return records[0], nil
	default:
		return packaging.Record{}, errs.NewValidationErrorWithCause(
			"order has several package records",
			errs.NewValueIsRequiredError("record id"),
		)
	}
}
