package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// MoveToPackagingCommandHandler checks that the run is completed before
// asking the order service to start packaging it.
type MoveToPackagingCommandHandler struct {
	production   ports.ProductionGateway
	stateMachine services.StatusStateMachine
}

func NewMoveToPackagingCommandHandler(production ports.ProductionGateway) MoveToPackagingCommandHandler {
	return MoveToPackagingCommandHandler{
		production:   production,
		stateMachine: services.NewStatusStateMachine(),
	}
}

func (h MoveToPackagingCommandHandler) Handle(ctx context.Context, cmd MoveToPackagingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	current, err := h.production.GetProduction(ctx, cmd.Line(), cmd.OrderID())
	if err != nil {
		return err
	}
	if err := h.stateMachine.ValidateMoveToPackaging(current.Status()); err != nil {
		return err
	}

	return h.production.MoveToPackaging(ctx, cmd.Line(), cmd.OrderID())
}
