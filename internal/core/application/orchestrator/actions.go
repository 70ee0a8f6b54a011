package orchestrator

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/core/domain/services"
)

// AdvanceRequest moves one stage record to Target. RecordID selects the
// package record when the order has several.
type AdvanceRequest struct {
	Stage    services.Stage
	OrderID  kernel.OrderID
	Target   string
	Metadata services.TransitionMetadata
	RecordID string
}

func (o *Orchestrator) Advance(ctx context.Context, req AdvanceRequest) (Board, error) {
	action := "advance " + req.Stage.String()

	cmd, err := commands.NewApplyTransitionCommand(
		req.Stage,
		req.OrderID,
		req.Target,
		req.Metadata,
		commands.TransitionScope{Line: o.line, RecordID: req.RecordID},
	)
	if err != nil {
		return Board{}, o.fail(ctx, action, req.OrderID, err)
	}

	result, err := o.handlers.ApplyTransition.Handle(ctx, cmd)
	if err != nil {
		return Board{}, o.fail(ctx, action, req.OrderID, err)
	}
	o.logger.InfoContext(ctx, "transition applied",
		"order_id", req.OrderID.String(), "stage", result.Stage.String(), "from", result.From, "to", result.To)

	return o.refresh(ctx, action, req.OrderID)
}

func (o *Orchestrator) MoveToPackaging(ctx context.Context, orderID kernel.OrderID) (Board, error) {
	const action = "move to packaging"

	cmd, err := commands.NewMoveToPackagingCommand(o.line, orderID)
	if err != nil {
		return Board{}, o.fail(ctx, action, orderID, err)
	}
	if err := o.handlers.MoveToPackaging.Handle(ctx, cmd); err != nil {
		return Board{}, o.fail(ctx, action, orderID, err)
	}

	return o.refresh(ctx, action, orderID)
}

func (o *Orchestrator) UpdateProductionDetails(
	ctx context.Context,
	orderID kernel.OrderID,
	details production.Details,
) (Board, error) {
	const action = "update production details"

	cmd, err := commands.NewUpdateProductionDetailsCommand(o.line, orderID, details)
	if err != nil {
		return Board{}, o.fail(ctx, action, orderID, err)
	}
	if _, err := o.handlers.UpdateProductionDetails.Handle(ctx, cmd); err != nil {
		return Board{}, o.fail(ctx, action, orderID, err)
	}

	return o.refresh(ctx, action, orderID)
}

// SavePackages submits a packaging draft. The draft is left to the caller
// on failure so the operator can correct it.
func (o *Orchestrator) SavePackages(ctx context.Context, draft packaging.Draft) (Board, error) {
	const action = "save packages"

	cmd, err := commands.NewSavePackagesCommand(draft)
	if err != nil {
		return Board{}, o.fail(ctx, action, draft.OrderID(), err)
	}
	if _, err := o.handlers.SavePackages.Handle(ctx, cmd); err != nil {
		return Board{}, o.fail(ctx, action, draft.OrderID(), err)
	}

	return o.refresh(ctx, action, draft.OrderID())
}

func (o *Orchestrator) AddPackageDetail(
	ctx context.Context,
	orderID kernel.OrderID,
	line packaging.DraftLine,
) (Board, error) {
	const action = "add package detail"

	cmd, err := commands.NewAddPackageDetailCommand(orderID, line)
	if err != nil {
		return Board{}, o.fail(ctx, action, orderID, err)
	}
	if _, err := o.handlers.AddPackageDetail.Handle(ctx, cmd); err != nil {
		return Board{}, o.fail(ctx, action, orderID, err)
	}

	return o.refresh(ctx, action, orderID)
}

func (o *Orchestrator) UpdatePackageDetail(
	ctx context.Context,
	orderID kernel.OrderID,
	detailID string,
	line packaging.DraftLine,
) (Board, error) {
	const action = "update package detail"

	cmd, err := commands.NewUpdatePackageDetailCommand(orderID, detailID, line)
	if err != nil {
		return Board{}, o.fail(ctx, action, orderID, err)
	}
	if _, err := o.handlers.UpdatePackageDetail.Handle(ctx, cmd); err != nil {
		return Board{}, o.fail(ctx, action, orderID, err)
	}

	return o.refresh(ctx, action, orderID)
}

// SaveDelivery submits the delivery form. The save is two remote writes; a
// step failure is returned as *commands.SaveDeliveryStepError.
func (o *Orchestrator) SaveDelivery(ctx context.Context, orderID kernel.OrderID, draft delivery.Draft) (Board, error) {
	const action = "save delivery"

	cmd, err := commands.NewSaveDeliveryCommand(orderID, draft)
	if err != nil {
		return Board{}, o.fail(ctx, action, orderID, err)
	}
	result, err := o.handlers.SaveDelivery.Handle(ctx, cmd)
	if err != nil {
		return Board{}, o.fail(ctx, action, orderID, err)
	}
	if result.DriverCreated {
		o.logger.InfoContext(ctx, "driver created",
			"order_id", orderID.String(), "vehicle_no", result.Driver.VehicleNumber())
	}

	return o.refresh(ctx, action, orderID)
}
