package orchestrator

import (
	"context"
	"log/slog"
	"strings"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

type PipelineReader interface {
	Handle(ctx context.Context, query queries.GetPipelineQuery) (queries.Pipeline, error)
}

type TransitionApplier interface {
	Handle(ctx context.Context, cmd commands.ApplyTransitionCommand) (commands.TransitionResult, error)
}

type PackagingMover interface {
	Handle(ctx context.Context, cmd commands.MoveToPackagingCommand) error
}

type ProductionDetailsUpdater interface {
	Handle(ctx context.Context, cmd commands.UpdateProductionDetailsCommand) (production.Record, error)
}

type PackagesSaver interface {
	Handle(ctx context.Context, cmd commands.SavePackagesCommand) (packaging.Record, error)
}

type PackageDetailAdder interface {
	Handle(ctx context.Context, cmd commands.AddPackageDetailCommand) (packaging.Record, error)
}

type PackageDetailUpdater interface {
	Handle(ctx context.Context, cmd commands.UpdatePackageDetailCommand) (packaging.Record, error)
}

type DeliverySaver interface {
	Handle(ctx context.Context, cmd commands.SaveDeliveryCommand) (commands.SaveDeliveryResult, error)
}

type DocumentGenerator interface {
	Handle(ctx context.Context, cmd commands.GenerateDocumentCommand) (commands.GeneratedDocument, error)
}

// Handlers are the use cases the orchestrator coordinates. The composition
// root fills every field.
type Handlers struct {
	Pipeline                PipelineReader
	ApplyTransition         TransitionApplier
	MoveToPackaging         PackagingMover
	UpdateProductionDetails ProductionDetailsUpdater
	SavePackages            PackagesSaver
	AddPackageDetail        PackageDetailAdder
	UpdatePackageDetail     PackageDetailUpdater
	SaveDelivery            DeliverySaver
	GenerateDocument        DocumentGenerator
}

// Actions is the current status of one stage record and the statuses an
// operator may pick next. Current is empty when the record does not exist.
type Actions struct {
	Current string
	Next    []string
}

// PackageActions are the Actions of one package record.
type PackageActions struct {
	RecordID string
	Actions
}

// Board is the refreshed view of one order and everything an operator can
// do with it.
type Board struct {
	Pipeline           queries.Pipeline
	Aggregate          packaging.Aggregate
	Production         Actions
	Packaging          []PackageActions
	Delivery           Actions
	CanMoveToPackaging bool
	DeliveryLocked     bool
}

// Orchestrator serves a single production line.
type Orchestrator struct {
	line     string
	handlers Handlers

	stateMachine services.StatusStateMachine
	aggregator   services.PackageAggregator
	logger       *slog.Logger
}

func New(line string, handlers Handlers, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		line:         strings.TrimSpace(line),
		handlers:     handlers,
		stateMachine: services.NewStatusStateMachine(),
		aggregator:   services.NewPackageAggregator(),
		logger:       logger.With("component", "orchestrator"),
	}
}

// Line is the production line the orchestrator was configured with.
func (o *Orchestrator) Line() string {
	return o.line
}

// Board reads the pipeline of orderID and derives the actionable transitions.
func (o *Orchestrator) Board(ctx context.Context, orderID kernel.OrderID) (Board, error) {
	board, err := o.board(ctx, orderID)
	if err != nil {
		return Board{}, o.fail(ctx, "board", orderID, err)
	}
	return board, nil
}

func (o *Orchestrator) board(ctx context.Context, orderID kernel.OrderID) (Board, error) {
	query, err := queries.NewGetPipelineQuery(orderID, o.line)
	if err != nil {
		return Board{}, err
	}
	pipeline, err := o.handlers.Pipeline.Handle(ctx, query)
	if err != nil {
		return Board{}, err
	}

	board := Board{
		Pipeline:  pipeline,
		Aggregate: o.aggregator.Aggregate(pipeline.Order, pipeline.Packages),
		Packaging: make([]PackageActions, 0, len(pipeline.Packages)),
	}

	if p := pipeline.Production; p != nil {
		board.Production = o.actions(services.ProductionStage, p.Status().String())
		board.CanMoveToPackaging = o.stateMachine.ValidateMoveToPackaging(p.Status()) == nil
	}
	for _, record := range pipeline.Packages {
		board.Packaging = append(board.Packaging, PackageActions{
			RecordID: record.ID(),
			Actions:  o.actions(services.PackagingStage, record.Status().String()),
		})
	}
	if d := pipeline.Delivery; d != nil {
		board.Delivery = o.actions(services.DeliveryStage, d.Status().String())
		board.DeliveryLocked = d.IsLocked()
	}

	return board, nil
}

func (o *Orchestrator) actions(stage services.Stage, current string) Actions {
	next := o.stateMachine.NextStatuses(stage, current)
	if next == nil {
		next = []string{}
	}
	return Actions{Current: current, Next: next}
}

// refresh re-reads the board after a successful mutation. A failed read is
// reported, the mutation itself stays applied.
func (o *Orchestrator) refresh(ctx context.Context, action string, orderID kernel.OrderID) (Board, error) {
	board, err := o.board(ctx, orderID)
	if err != nil {
		return Board{}, o.fail(ctx, action+": refresh", orderID, err)
	}
	o.logger.InfoContext(ctx, "pipeline updated", "action", action, "order_id", orderID.String())
	return board, nil
}

// fail logs err and returns it unchanged. Local rejections are warnings;
// everything else is an error.
func (o *Orchestrator) fail(ctx context.Context, action string, orderID kernel.OrderID, err error) error {
	attrs := []any{"action", action, "order_id", orderID.String(), "error", err}
	if errs.IsValidation(err) || errs.IsInvalidStage(err) {
		o.logger.WarnContext(ctx, "action rejected", attrs...)
		return err
	}
	o.logger.ErrorContext(ctx, "action failed", attrs...)
	return err
}
