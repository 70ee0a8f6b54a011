package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/core/application/orchestrator"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPipeline struct {
	mock.Mock
}

func (m *MockPipeline) Line() string {
	return m.Called().String(0)
}

func (m *MockPipeline) Board(ctx context.Context, orderID kernel.OrderID) (orchestrator.Board, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(orchestrator.Board), args.Error(1)
}

func (m *MockPipeline) Advance(ctx context.Context, req orchestrator.AdvanceRequest) (orchestrator.Board, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(orchestrator.Board), args.Error(1)
}

func (m *MockPipeline) MoveToPackaging(ctx context.Context, orderID kernel.OrderID) (orchestrator.Board, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(orchestrator.Board), args.Error(1)
}

func (m *MockPipeline) UpdateProductionDetails(
	ctx context.Context,
	orderID kernel.OrderID,
	details production.Details,
) (orchestrator.Board, error) {
	args := m.Called(ctx, orderID, details)
	return args.Get(0).(orchestrator.Board), args.Error(1)
}

func (m *MockPipeline) SavePackages(ctx context.Context, draft packaging.Draft) (orchestrator.Board, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(orchestrator.Board), args.Error(1)
}

func (m *MockPipeline) AddPackageDetail(
	ctx context.Context,
	orderID kernel.OrderID,
	line packaging.DraftLine,
) (orchestrator.Board, error) {
	args := m.Called(ctx, orderID, line)
	return args.Get(0).(orchestrator.Board), args.Error(1)
}

func (m *MockPipeline) UpdatePackageDetail(
	ctx context.Context,
	orderID kernel.OrderID,
	detailID string,
	line packaging.DraftLine,
) (orchestrator.Board, error) {
	args := m.Called(ctx, orderID, detailID, line)
	return args.Get(0).(orchestrator.Board), args.Error(1)
}

func (m *MockPipeline) SaveDelivery(
	ctx context.Context,
	orderID kernel.OrderID,
	draft delivery.Draft,
) (orchestrator.Board, error) {
	args := m.Called(ctx, orderID, draft)
	return args.Get(0).(orchestrator.Board), args.Error(1)
}

func (m *MockPipeline) Invoice(ctx context.Context, orderID kernel.OrderID) (commands.GeneratedDocument, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(commands.GeneratedDocument), args.Error(1)
}

func (m *MockPipeline) Label(
	ctx context.Context,
	orderID kernel.OrderID,
	sequence int,
) (commands.GeneratedDocument, error) {
	args := m.Called(ctx, orderID, sequence)
	return args.Get(0).(commands.GeneratedDocument), args.Error(1)
}

type MockDeliveryLister struct {
	mock.Mock
}

func (m *MockDeliveryLister) Handle(ctx context.Context, query queries.ListDeliveriesQuery) (queries.DeliveryPage, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.DeliveryPage), args.Error(1)
}

type MockProductionLister struct {
	mock.Mock
}

func (m *MockProductionLister) Handle(ctx context.Context, query queries.ListProductionQuery) ([]production.Record, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]production.Record), args.Error(1)
}

type MockStatsReader struct {
	mock.Mock
}

func (m *MockStatsReader) Handle(ctx context.Context, query queries.GetDeliveryStatsQuery) (delivery.Stats, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(delivery.Stats), args.Error(1)
}

type MockDocumentHistoryReader struct {
	mock.Mock
}

func (m *MockDocumentHistoryReader) Handle(
	ctx context.Context,
	query queries.GetDocumentHistoryQuery,
) ([]queries.GetDocumentHistoryQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.GetDocumentHistoryQueryResponse), args.Error(1)
}

type serverMocks struct {
	pipeline   *MockPipeline
	deliveries *MockDeliveryLister
	production *MockProductionLister
	stats      *MockStatsReader
	history    *MockDocumentHistoryReader
}

var orderID = kernel.MustNewOrderID("ORD-1001")

func newTestServer() (*echo.Echo, serverMocks) {
	m := serverMocks{
		pipeline:   new(MockPipeline),
		deliveries: new(MockDeliveryLister),
		production: new(MockProductionLister),
		stats:      new(MockStatsReader),
		history:    new(MockDocumentHistoryReader),
	}
	server := httpin.NewServer(m.pipeline, m.deliveries, m.production, m.stats, m.history)

	e := echo.New()
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")
	return e, m
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
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
		kernel.Value{},
		time.Date(2024, 4, 30, 8, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func newBoard(t *testing.T) orchestrator.Board {
	t.Helper()
	o := newOrder(t)

	run, err := production.NewRecord("prd-1", orderID, "wcut", production.Completed, production.Details{
		RollSize:    "24",
		QuantityKgs: kernel.ParseValue("120.5"),
	}, "U2")
	require.NoError(t, err)

	detail := packaging.RestoreDetail("d-1",
		kernel.ParseValue("40"), kernel.ParseValue("30"), kernel.ParseValue("20"), kernel.ParseValue("2.5"))
	pkg, err := packaging.NewRecord("pkg-1", orderID, packaging.Pending, []packaging.Detail{detail})
	require.NoError(t, err)

	shipment, err := delivery.NewRecord("dlv-1", orderID, delivery.InTransit, delivery.Assignment{
		VehicleNo:     "KA01AB1234",
		DriverName:    "Ravi",
		DriverContact: "9000000000",
		DeliveryDate:  time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	}, o)
	require.NoError(t, err)

	return orchestrator.Board{
		Pipeline: queries.Pipeline{
			Order:      o,
			Production: &run,
			Packages:   []packaging.Record{pkg},
			Delivery:   &shipment,
		},
		Aggregate: packaging.Aggregate{
			OrderID:            orderID,
			TotalWeight:        detail.Weight().Decimal(),
			DimensionSummaries: []string{detail.Dimensions()},
			Rows: []packaging.Row{
				{Sequence: 1, RecordID: "pkg-1", Detail: detail, Dimensions: detail.Dimensions()},
			},
		},
		Production: orchestrator.Actions{Current: "completed", Next: []string{}},
		Packaging: []orchestrator.PackageActions{
			{RecordID: "pkg-1", Actions: orchestrator.Actions{Current: "pending", Next: []string{"completed", "cancelled"}}},
		},
		Delivery:           orchestrator.Actions{Current: "in_transit", Next: []string{"pending", "cancelled", "delivered"}},
		CanMoveToPackaging: true,
	}
}
