package http

import (
	"context"
	"errors"
	"net/http"

	"fulfillment/internal/core/application/orchestrator"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Pipeline is the orchestrator surface the HTTP layer drives.
type Pipeline interface {
	Line() string
	Board(ctx context.Context, orderID kernel.OrderID) (orchestrator.Board, error)
	Advance(ctx context.Context, req orchestrator.AdvanceRequest) (orchestrator.Board, error)
	MoveToPackaging(ctx context.Context, orderID kernel.OrderID) (orchestrator.Board, error)
	UpdateProductionDetails(ctx context.Context, orderID kernel.OrderID, details production.Details) (orchestrator.Board, error)
	SavePackages(ctx context.Context, draft packaging.Draft) (orchestrator.Board, error)
	AddPackageDetail(ctx context.Context, orderID kernel.OrderID, line packaging.DraftLine) (orchestrator.Board, error)
	UpdatePackageDetail(
		ctx context.Context,
		orderID kernel.OrderID,
		detailID string,
		line packaging.DraftLine,
	) (orchestrator.Board, error)
	SaveDelivery(ctx context.Context, orderID kernel.OrderID, draft delivery.Draft) (orchestrator.Board, error)
	Invoice(ctx context.Context, orderID kernel.OrderID) (commands.GeneratedDocument, error)
	Label(ctx context.Context, orderID kernel.OrderID, sequence int) (commands.GeneratedDocument, error)
}

type DeliveryLister interface {
	Handle(ctx context.Context, query queries.ListDeliveriesQuery) (queries.DeliveryPage, error)
}

type ProductionLister interface {
	Handle(ctx context.Context, query queries.ListProductionQuery) ([]production.Record, error)
}

type StatsReader interface {
	Handle(ctx context.Context, query queries.GetDeliveryStatsQuery) (delivery.Stats, error)
}

type DocumentHistoryReader interface {
	Handle(ctx context.Context, query queries.GetDocumentHistoryQuery) ([]queries.GetDocumentHistoryQueryResponse, error)
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// Mutations go through the orchestrator; listings call their query handlers
// directly.
type Server struct {
	pipeline Pipeline

	// Query handlers
	listDeliveriesHandler  DeliveryLister
	listProductionHandler  ProductionLister
	getStatsHandler        StatsReader
	documentHistoryHandler DocumentHistoryReader
}

func NewServer(
	pipeline Pipeline,
	listDeliveriesHandler DeliveryLister,
	listProductionHandler ProductionLister,
	getStatsHandler StatsReader,
	documentHistoryHandler DocumentHistoryReader,
) *Server {
	return &Server{
		pipeline:               pipeline,
		listDeliveriesHandler:  listDeliveriesHandler,
		listProductionHandler:  listProductionHandler,
		getStatsHandler:        getStatsHandler,
		documentHistoryHandler: documentHistoryHandler,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps a pipeline error to its status code. A remote failure
// carries the collaborator's message verbatim and is always retryable.
func respondError(ctx echo.Context, err error) error {
	body := servers.Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	}

	var remote *errs.RemoteError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		body.Code, body.Message = http.StatusNotFound, err.Error()
	case errs.IsValidation(err):
		body.Code, body.Message = http.StatusUnprocessableEntity, err.Error()
	case errs.IsInvalidStage(err):
		body.Code, body.Message = http.StatusConflict, err.Error()
	case errs.IsComposition(err):
		body.Code, body.Message = http.StatusUnprocessableEntity, err.Error()
	case errors.As(err, &remote):
		retryable := remote.Retryable()
		body.Code, body.Message, body.Retryable = http.StatusBadGateway, remote.Message, &retryable
	}

	return ctx.JSON(body.Code, body)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
