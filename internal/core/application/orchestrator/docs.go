// Package orchestrator drives one order through the fulfillment pipeline on
// behalf of an operator.
//
// Every mutation follows the same cycle: the command is validated locally,
// forwarded to the order service, and on success the whole pipeline is read
// again so the returned Board reflects authoritative state. Nothing is
// cached between calls. A failed mutation returns its typed error and no
// Board; the caller reads the Board again before retrying.
//
// # Usage
//
//	o := orchestrator.New("wcut", orchestrator.Handlers{...}, logger)
//
//	board, err := o.Board(ctx, orderID)
//	board, err = o.Advance(ctx, orchestrator.AdvanceRequest{
//		Stage:   services.ProductionStage,
//		OrderID: orderID,
//		Target:  "in_progress",
//	})
//
//	invoice, err := o.Invoice(ctx, orderID)
package orchestrator
