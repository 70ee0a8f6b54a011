package orchestrator

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
)

// Invoice composes the invoice of orderID for download.
func (o *Orchestrator) Invoice(ctx context.Context, orderID kernel.OrderID) (commands.GeneratedDocument, error) {
	cmd, err := commands.NewInvoiceCommand(orderID, o.line)
	if err != nil {
		return commands.GeneratedDocument{}, o.fail(ctx, "invoice", orderID, err)
	}
	return o.generate(ctx, "invoice", cmd)
}

// Label composes the label of the sequence-th package, 1-based.
func (o *Orchestrator) Label(ctx context.Context, orderID kernel.OrderID, sequence int) (commands.GeneratedDocument, error) {
	cmd, err := commands.NewLabelCommand(orderID, o.line, sequence)
	if err != nil {
		return commands.GeneratedDocument{}, o.fail(ctx, "label", orderID, err)
	}
	return o.generate(ctx, "label", cmd)
}

func (o *Orchestrator) generate(
	ctx context.Context,
	action string,
	cmd commands.GenerateDocumentCommand,
) (commands.GeneratedDocument, error) {
	generated, err := o.handlers.GenerateDocument.Handle(ctx, cmd)
	if err != nil {
		return commands.GeneratedDocument{}, o.fail(ctx, action, cmd.OrderID(), err)
	}

	o.logger.InfoContext(ctx, "document issued",
		"order_id", cmd.OrderID().String(),
		"kind", cmd.Kind().String(),
		"filename", generated.Handle.Filename,
		"pages", generated.Handle.Pages,
		"reprint", generated.IsReprint(),
	)
	return generated, nil
}
