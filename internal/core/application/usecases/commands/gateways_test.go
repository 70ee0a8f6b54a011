package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/document"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductionGateway struct {
	mock.Mock
}

func (m *MockProductionGateway) ListProduction(ctx context.Context, line string) ([]production.Record, error) {
	args := m.Called(ctx, line)
	records, _ := args.Get(0).([]production.Record)
	return records, args.Error(1)
}

func (m *MockProductionGateway) GetProduction(
	ctx context.Context,
	line string,
	orderID kernel.OrderID,
) (production.Record, error) {
	args := m.Called(ctx, line, orderID)
	return args.Get(0).(production.Record), args.Error(1)
}

func (m *MockProductionGateway) UpdateProductionStatus(
	ctx context.Context,
	line string,
	orderID kernel.OrderID,
	status production.Status,
	unit, remark string,
) (production.Record, error) {
	args := m.Called(ctx, line, orderID, status, unit, remark)
	return args.Get(0).(production.Record), args.Error(1)
}

func (m *MockProductionGateway) UpdateProductionDetails(
	ctx context.Context,
	line string,
	orderID kernel.OrderID,
	details production.Details,
) (production.Record, error) {
	args := m.Called(ctx, line, orderID, details)
	return args.Get(0).(production.Record), args.Error(1)
}

func (m *MockProductionGateway) MoveToPackaging(ctx context.Context, line string, orderID kernel.OrderID) error {
	args := m.Called(ctx, line, orderID)
	return args.Error(0)
}

type MockPackageGateway struct {
	mock.Mock
}

func (m *MockPackageGateway) ListPackages(ctx context.Context, orderID kernel.OrderID) ([]packaging.Record, error) {
	args := m.Called(ctx, orderID)
	records, _ := args.Get(0).([]packaging.Record)
	return records, args.Error(1)
}

func (m *MockPackageGateway) CreatePackages(
	ctx context.Context,
	orderID kernel.OrderID,
	details []packaging.Detail,
) (packaging.Record, error) {
	args := m.Called(ctx, orderID, details)
	return args.Get(0).(packaging.Record), args.Error(1)
}

func (m *MockPackageGateway) AddPackageDetail(
	ctx context.Context,
	orderID kernel.OrderID,
	detail packaging.Detail,
) (packaging.Record, error) {
	args := m.Called(ctx, orderID, detail)
	return args.Get(0).(packaging.Record), args.Error(1)
}

func (m *MockPackageGateway) UpdatePackageDetail(
	ctx context.Context,
	orderID kernel.OrderID,
	detailID string,
	detail packaging.Detail,
) (packaging.Record, error) {
	args := m.Called(ctx, orderID, detailID, detail)
	return args.Get(0).(packaging.Record), args.Error(1)
}

func (m *MockPackageGateway) UpdatePackageStatus(
	ctx context.Context,
	recordID string,
	status packaging.Status,
) (packaging.Record, error) {
	args := m.Called(ctx, recordID, status)
	return args.Get(0).(packaging.Record), args.Error(1)
}

type MockDeliveryGateway struct {
	mock.Mock
}

func (m *MockDeliveryGateway) ListDeliveries(ctx context.Context) ([]delivery.Record, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]delivery.Record)
	return records, args.Error(1)
}

func (m *MockDeliveryGateway) GetDeliveryByOrder(ctx context.Context, orderID kernel.OrderID) (delivery.Record, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(delivery.Record), args.Error(1)
}

func (m *MockDeliveryGateway) UpdateDelivery(
	ctx context.Context,
	recordID string,
	submission delivery.Submission,
) (delivery.Record, error) {
	args := m.Called(ctx, recordID, submission)
	return args.Get(0).(delivery.Record), args.Error(1)
}

func (m *MockDeliveryGateway) UpdateDeliveryStatus(
	ctx context.Context,
	recordID string,
	status delivery.Status,
) (delivery.Record, error) {
	args := m.Called(ctx, recordID, status)
	return args.Get(0).(delivery.Record), args.Error(1)
}

type MockStatsStore struct {
	mock.Mock
}

func (m *MockStatsStore) Save(ctx context.Context, stats delivery.Stats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

func (m *MockStatsStore) Load(ctx context.Context) (delivery.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(delivery.Stats), args.Error(1)
}

type MockDriverGateway struct {
	mock.Mock
}

func (m *MockDriverGateway) ListDrivers(ctx context.Context) ([]delivery.Driver, error) {
	args := m.Called(ctx)
	drivers, _ := args.Get(0).([]delivery.Driver)
	return drivers, args.Error(1)
}

func (m *MockDriverGateway) CreateDriver(ctx context.Context, driver delivery.Driver) (delivery.Driver, error) {
	args := m.Called(ctx, driver)
	return args.Get(0).(delivery.Driver), args.Error(1)
}

func (m *MockDriverGateway) UpdateDriver(ctx context.Context, driver delivery.Driver) (delivery.Driver, error) {
	args := m.Called(ctx, driver)
	return args.Get(0).(delivery.Driver), args.Error(1)
}

type MockPipelineReader struct {
	mock.Mock
}

func (m *MockPipelineReader) Handle(ctx context.Context, query queries.GetPipelineQuery) (queries.Pipeline, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.Pipeline), args.Error(1)
}

type MockBarcodeRenderer struct {
	mock.Mock
}

func (m *MockBarcodeRenderer) Render(payload string) ([]byte, error) {
	args := m.Called(payload)
	png, _ := args.Get(0).([]byte)
	return png, args.Error(1)
}

type MockDocumentComposer struct {
	mock.Mock
}

func (m *MockDocumentComposer) Compose(sections document.Sections) (document.Handle, error) {
	args := m.Called(sections)
	return args.Get(0).(document.Handle), args.Error(1)
}

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Add(ctx context.Context, record *document.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockDocumentRepository) Get(ctx context.Context, id kernel.UUID) (*document.Record, error) {
	args := m.Called(ctx, id)
	record, _ := args.Get(0).(*document.Record)
	return record, args.Error(1)
}

func (m *MockDocumentRepository) ListByOrder(ctx context.Context, orderID kernel.OrderID) ([]*document.Record, error) {
	args := m.Called(ctx, orderID)
	records, _ := args.Get(0).([]*document.Record)
	return records, args.Error(1)
}

type MockDocumentUoW struct {
	mock.Mock
}

func (m *MockDocumentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDocumentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDocumentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDocumentUoW) DocumentRepository() ports.DocumentRepository {
	args := m.Called()
	return args.Get(0).(ports.DocumentRepository)
}

type MockDocumentUoWFactory struct {
	mock.Mock
}

func (m *MockDocumentUoWFactory) Create() commands.DocumentUoW {
	args := m.Called()
	return args.Get(0).(commands.DocumentUoW)
}

var orderID = kernel.MustNewOrderID("ORD-1001")

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

func newProductionRecord(t *testing.T, status production.Status) production.Record {
	t.Helper()
	r, err := production.NewRecord("prd-1", orderID, "wcut", status, production.Details{}, "")
	require.NoError(t, err)
	return r
}

func newPackageRecord(t *testing.T, id string, status packaging.Status, details ...packaging.Detail) packaging.Record {
	t.Helper()
	r, err := packaging.NewRecord(id, orderID, status, details)
	require.NoError(t, err)
	return r
}

func newDetail(id, length, width, height, weight string) packaging.Detail {
	return packaging.RestoreDetail(id,
		kernel.ParseValue(length), kernel.ParseValue(width), kernel.ParseValue(height), kernel.ParseValue(weight))
}

func newDeliveryRecord(t *testing.T, status delivery.Status) delivery.Record {
	t.Helper()
	r, err := delivery.NewRecord("dlv-1", orderID, status, delivery.Assignment{}, nil)
	require.NoError(t, err)
	return r
}
