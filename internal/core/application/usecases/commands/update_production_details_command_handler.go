package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// UpdateProductionDetailsCommandHandler edits the figures of a run that is
// not cancelled. Completed runs stay editable so the final quantities can be
// corrected at hand-over.
type UpdateProductionDetailsCommandHandler struct {
	production ports.ProductionGateway
}

func NewUpdateProductionDetailsCommandHandler(production ports.ProductionGateway) UpdateProductionDetailsCommandHandler {
	return UpdateProductionDetailsCommandHandler{production: production}
}

func (h UpdateProductionDetailsCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateProductionDetailsCommand,
) (production.Record, error) {
	if err := cmd.Validate(); err != nil {
		return production.Record{}, err
	}

	current, err := h.production.GetProduction(ctx, cmd.Line(), cmd.OrderID())
	if err != nil {
		return production.Record{}, err
	}
	if current.Status() == production.Cancelled {
		return production.Record{}, errs.NewInvalidStageError(
			services.ProductionStage.String(), "update details", current.Status().String())
	}

	return h.production.UpdateProductionDetails(ctx, cmd.Line(), cmd.OrderID(), cmd.Details())
}
