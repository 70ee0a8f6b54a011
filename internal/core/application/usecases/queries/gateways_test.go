package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/core/domain/model/production"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderGateway struct {
	mock.Mock
}

func (m *MockOrderGateway) GetOrder(ctx context.Context, orderID kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

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

func newOrder(t *testing.T, id, customer, job, mobile, agent string) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		"storage-"+id,
		kernel.MustNewOrderID(id),
		job,
		agent,
		order.NewCustomer(customer, customer+"@example.test", mobile, "1 Main St"),
		order.NewBagSpecification("Non Woven", "Red", "White", "12x16", "80"),
		kernel.ParseValue("10"),
		kernel.ParseValue("50"),
		time.Time{},
	)
	require.NoError(t, err)
	return o
}

func newDelivery(t *testing.T, id string, status delivery.Status, o *order.Order) delivery.Record {
	t.Helper()
	r, err := delivery.NewRecord("dlv-"+id, kernel.MustNewOrderID(id), status, delivery.Assignment{}, o)
	require.NoError(t, err)
	return r
}

func newProduction(t *testing.T, id string, status production.Status, o *order.Order) production.Record {
	t.Helper()
	r, err := production.NewRecord("prd-"+id, kernel.MustNewOrderID(id), "wcut", status, production.Details{}, "")
	require.NoError(t, err)
	return r.WithOrder(o)
}
