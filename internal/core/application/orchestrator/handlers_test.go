package orchestrator_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/core/application/orchestrator"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/core/domain/model/production"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPipelineReader struct{ mock.Mock }

func (m *MockPipelineReader) Handle(ctx context.Context, query queries.GetPipelineQuery) (queries.Pipeline, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.Pipeline), args.Error(1)
}

type MockTransitionApplier struct{ mock.Mock }

func (m *MockTransitionApplier) Handle(
	ctx context.Context,
	cmd commands.ApplyTransitionCommand,
) (commands.TransitionResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.TransitionResult), args.Error(1)
}

type MockPackagingMover struct{ mock.Mock }

func (m *MockPackagingMover) Handle(ctx context.Context, cmd commands.MoveToPackagingCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockProductionDetailsUpdater struct{ mock.Mock }

func (m *MockProductionDetailsUpdater) Handle(
	ctx context.Context,
	cmd commands.UpdateProductionDetailsCommand,
) (production.Record, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(production.Record), args.Error(1)
}

type MockPackagesSaver struct{ mock.Mock }

func (m *MockPackagesSaver) Handle(ctx context.Context, cmd commands.SavePackagesCommand) (packaging.Record, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(packaging.Record), args.Error(1)
}

type MockPackageDetailAdder struct{ mock.Mock }

func (m *MockPackageDetailAdder) Handle(
	ctx context.Context,
	cmd commands.AddPackageDetailCommand,
) (packaging.Record, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(packaging.Record), args.Error(1)
}

type MockPackageDetailUpdater struct{ mock.Mock }

func (m *MockPackageDetailUpdater) Handle(
	ctx context.Context,
	cmd commands.UpdatePackageDetailCommand,
) (packaging.Record, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(packaging.Record), args.Error(1)
}

type MockDeliverySaver struct{ mock.Mock }

func (m *MockDeliverySaver) Handle(
	ctx context.Context,
	cmd commands.SaveDeliveryCommand,
) (commands.SaveDeliveryResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.SaveDeliveryResult), args.Error(1)
}

type MockDocumentGenerator struct{ mock.Mock }

func (m *MockDocumentGenerator) Handle(
	ctx context.Context,
	cmd commands.GenerateDocumentCommand,
) (commands.GeneratedDocument, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.GeneratedDocument), args.Error(1)
}

type handlerMocks struct {
	pipeline       *MockPipelineReader
	transition     *MockTransitionApplier
	mover          *MockPackagingMover
	detailsUpdater *MockProductionDetailsUpdater
	packagesSaver  *MockPackagesSaver
	detailAdder    *MockPackageDetailAdder
	detailUpdater  *MockPackageDetailUpdater
	deliverySaver  *MockDeliverySaver
	generator      *MockDocumentGenerator
}

func newOrchestrator() (*orchestrator.Orchestrator, handlerMocks) {
	m := handlerMocks{
		pipeline:       new(MockPipelineReader),
		transition:     new(MockTransitionApplier),
		mover:          new(MockPackagingMover),
		detailsUpdater: new(MockProductionDetailsUpdater),
		packagesSaver:  new(MockPackagesSaver),
		detailAdder:    new(MockPackageDetailAdder),
		detailUpdater:  new(MockPackageDetailUpdater),
		deliverySaver:  new(MockDeliverySaver),
		generator:      new(MockDocumentGenerator),
	}
	o := orchestrator.New(" wcut ", orchestrator.Handlers{
		Pipeline:                m.pipeline,
		ApplyTransition:         m.transition,
		MoveToPackaging:         m.mover,
		UpdateProductionDetails: m.detailsUpdater,
		SavePackages:            m.packagesSaver,
		AddPackageDetail:        m.detailAdder,
		UpdatePackageDetail:     m.detailUpdater,
		SaveDelivery:            m.deliverySaver,
		GenerateDocument:        m.generator,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return o, m
}

func (m handlerMocks) assert(t *testing.T) {
	m.pipeline.AssertExpectations(t)
	m.transition.AssertExpectations(t)
	m.mover.AssertExpectations(t)
	m.detailsUpdater.AssertExpectations(t)
	m.packagesSaver.AssertExpectations(t)
	m.detailAdder.AssertExpectations(t)
	m.detailUpdater.AssertExpectations(t)
	m.deliverySaver.AssertExpectations(t)
	m.generator.AssertExpectations(t)
}

var orderID = kernel.MustNewOrderID("ORD-1001")

func pipelineQuery(t *testing.T) queries.GetPipelineQuery {
	t.Helper()
	q, err := queries.NewGetPipelineQuery(orderID, "wcut")
	require.NoError(t, err)
	return q
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		"64f0c2",
		orderID,
		"Shopping Bags",
		"Sam",
		order.NewCustomer("Acme Corp", "ops@acme.test", "555-0100", "1 Main St"),
		order.NewBagSpecification("Non Woven", "Red", "White", "12x16", "80"),
		kernel.ParseValue("10"),
		kernel.ParseValue("50"),
		time.Date(2024, 4, 30, 8, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func newPipeline(
	t *testing.T,
	productionStatus production.Status,
	packageStatuses []packaging.Status,
	deliveryStatus delivery.Status,
) queries.Pipeline {
	t.Helper()
	p := queries.Pipeline{Order: newOrder(t), Packages: []packaging.Record{}}

	if productionStatus != production.Unknown {
		r, err := production.NewRecord("prd-1", orderID, "wcut", productionStatus, production.Details{}, "")
		require.NoError(t, err)
		p.Production = &r
	}
	for i, s := range packageStatuses {
		detail := packaging.RestoreDetail("d-"+string(rune('1'+i)),
			kernel.ParseValue("40"), kernel.ParseValue("30"), kernel.ParseValue("20"), kernel.ParseValue("2"))
		r, err := packaging.NewRecord("pkg-"+string(rune('1'+i)), orderID, s, []packaging.Detail{detail})
		require.NoError(t, err)
		p.Packages = append(p.Packages, r)
	}
	if deliveryStatus != delivery.Unknown {
		r, err := delivery.NewRecord("dlv-1", orderID, deliveryStatus, delivery.Assignment{}, nil)
		require.NoError(t, err)
		p.Delivery = &r
	}
	return p
}
