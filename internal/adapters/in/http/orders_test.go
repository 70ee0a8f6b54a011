package http_test

import (
	"errors"
	"net/http"
	"testing"

	"fulfillment/internal/core/application/orchestrator"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestServer_GetBoard(t *testing.T) {
	t.Run("maps the pipeline and its actions", func(t *testing.T) {
		// Arrange
		e, m := newTestServer()
		m.pipeline.On("Board", mock.Anything, orderID).Return(newBoard(t), nil).Once()

		// Act
		rec := serve(e, http.MethodGet, "/api/v1/orders/ORD-1001/board", "")

		// Assert
		require.Equal(t, http.StatusOK, rec.Code)
		board := decode[servers.Board](t, rec)

		assert.Equal(t, "ORD-1001", board.Order.OrderId)
		assert.Equal(t, "Acme Corp", board.Order.Customer.Name)
		require.NotNil(t, board.Order.Quantity)
		assert.Equal(t, "10", *board.Order.Quantity)
		assert.Nil(t, board.Order.UnitPrice)

		require.NotNil(t, board.Production)
		assert.Equal(t, "completed", board.Production.Status)
		assert.Equal(t, "U2", board.Production.Unit)
		assert.Equal(t, "Shopping Bags", board.Production.JobName)
		require.NotNil(t, board.Production.QuantityKgs)
		assert.Equal(t, "120.50", *board.Production.QuantityKgs)
		assert.Nil(t, board.Production.QuantityRolls)

		require.Len(t, board.Packages, 1)
		require.Len(t, board.Packages[0].Details, 1)
		assert.Equal(t, "2.50", *board.Packages[0].Details[0].Weight)
		assert.Equal(t, "2.50", board.Aggregate.TotalWeight)
		assert.Equal(t, []string{"40x30x20 cm"}, board.Aggregate.DimensionSummaries)

		require.NotNil(t, board.Delivery)
		assert.Equal(t, "in_transit", board.Delivery.Status)
		assert.Equal(t, "Acme Corp", board.Delivery.CustomerName)
		require.NotNil(t, board.Delivery.DeliveryDate)
		assert.Equal(t, "2024-05-02", board.Delivery.DeliveryDate.String())

		assert.True(t, board.Actions.CanMoveToPackaging)
		assert.False(t, board.Actions.DeliveryLocked)
		assert.Empty(t, board.Actions.Production.Next)
		require.Len(t, board.Actions.Packaging, 1)
		assert.Equal(t, "pkg-1", board.Actions.Packaging[0].RecordId)
		assert.Equal(t, []string{"completed", "cancelled"}, board.Actions.Packaging[0].Next)
		m.pipeline.AssertExpectations(t)
	})

	t.Run("stages that were not reached are omitted", func(t *testing.T) {
		e, m := newTestServer()
		board := newBoard(t)
		board.Pipeline.Production = nil
		board.Pipeline.Delivery = nil
		m.pipeline.On("Board", mock.Anything, orderID).Return(board, nil).Once()

		rec := serve(e, http.MethodGet, "/api/v1/orders/ORD-1001/board", "")

		require.Equal(t, http.StatusOK, rec.Code)
		decoded := decode[servers.Board](t, rec)
		assert.Nil(t, decoded.Production)
		assert.Nil(t, decoded.Delivery)
	})
}

func TestServer_ErrorMapping(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		status    int
		message   string
		retryable bool
	}{
		{
			name:   "missing order",
			err:    errs.NewObjectNotFoundError("order", "ORD-1001"),
			status: http.StatusNotFound,
		},
		{
			name:   "local precondition",
			err:    errs.NewValidationError("unit is required"),
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "wrong stage",
			err:    errs.NewInvalidStageError("production", "move to packaging", "pending"),
			status: http.StatusConflict,
		},
		{
			name:   "composition",
			err:    errs.NewCompositionError("invoice", "no packages"),
			status: http.StatusUnprocessableEntity,
		},
		{
			name:      "collaborator message is passed through",
			err:       errs.NewRemoteError("update production", http.StatusBadRequest, "Production already completed"),
			status:    http.StatusBadGateway,
			message:   "Production already completed",
			retryable: true,
		},
		{
			name:      "collaborator without message",
			err:       errs.NewRemoteErrorWithCause("get order", errors.New("connection refused")),
			status:    http.StatusBadGateway,
			message:   errs.RemoteFallbackMessage,
			retryable: true,
		},
		{
			name:    "anything else",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			message: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m := newTestServer()
			m.pipeline.On("Board", mock.Anything, orderID).Return(orchestrator.Board{}, tt.err).Once()

			rec := serve(e, http.MethodGet, "/api/v1/orders/ORD-1001/board", "")

			require.Equal(t, tt.status, rec.Code)
			body := decode[servers.Error](t, rec)
			assert.Equal(t, tt.status, body.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, body.Message)
			}
			if tt.retryable {
				require.NotNil(t, body.Retryable)
				assert.True(t, *body.Retryable)
			} else {
				assert.Nil(t, body.Retryable)
			}
		})
	}
}

func TestServer_ApplyTransition(t *testing.T) {
	t.Run("forwards stage, target and metadata", func(t *testing.T) {
		e, m := newTestServer()
		m.pipeline.On("Advance", mock.Anything, orchestrator.AdvanceRequest{
			Stage:    services.ProductionStage,
			OrderID:  orderID,
			Target:   "completed",
			Metadata: services.TransitionMetadata{Unit: "U2", Remark: "order move to completed"},
		}).Return(newBoard(t), nil).Once()

		rec := serve(e, http.MethodPost, "/api/v1/orders/ORD-1001/transitions",
			`{"stage":"production","target":"completed","unit":"U2","remark":"order move to completed"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		m.pipeline.AssertExpectations(t)
	})

	t.Run("package record is selected by id", func(t *testing.T) {
		e, m := newTestServer()
		m.pipeline.On("Advance", mock.Anything, mock.MatchedBy(func(req orchestrator.AdvanceRequest) bool {
			return req.Stage == services.PackagingStage && req.RecordID == "pkg-2" && req.Target == "delivery"
		})).Return(newBoard(t), nil).Once()

		rec := serve(e, http.MethodPost, "/api/v1/orders/ORD-1001/transitions",
			`{"stage":"packaging","target":"delivery","recordId":"pkg-2"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		m.pipeline.AssertExpectations(t)
	})

	t.Run("unknown stage is rejected before the orchestrator", func(t *testing.T) {
		e, m := newTestServer()

		rec := serve(e, http.MethodPost, "/api/v1/orders/ORD-1001/transitions",
			`{"stage":"shipping","target":"completed"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		m.pipeline.AssertNotCalled(t, "Advance", mock.Anything, mock.Anything)
	})

	t.Run("malformed body", func(t *testing.T) {
		e, m := newTestServer()

		rec := serve(e, http.MethodPost, "/api/v1/orders/ORD-1001/transitions", `{"stage":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		m.pipeline.AssertNotCalled(t, "Advance", mock.Anything, mock.Anything)
	})

	t.Run("rejected transition", func(t *testing.T) {
		e, m := newTestServer()
		m.pipeline.On("Advance", mock.Anything, mock.Anything).
			Return(orchestrator.Board{}, errs.NewValidationError("a unit must be selected")).Once()

		rec := serve(e, http.MethodPost, "/api/v1/orders/ORD-1001/transitions",
			`{"stage":"production","target":"completed"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "a unit must be selected")
	})
}

func TestServer_MoveToPackaging(t *testing.T) {
	e, m := newTestServer()
	m.pipeline.On("MoveToPackaging", mock.Anything, orderID).Return(newBoard(t), nil).Once()

	rec := serve(e, http.MethodPost, "/api/v1/orders/ORD-1001/move-to-packaging", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	m.pipeline.AssertExpectations(t)
}

func TestServer_UpdateProductionDetails(t *testing.T) {
	e, m := newTestServer()
	m.pipeline.On("UpdateProductionDetails", mock.Anything, orderID, production.Details{
		RollSize:      "24",
		CylinderSize:  "",
		QuantityKgs:   kernel.ParseValue("120"),
		QuantityRolls: kernel.Value{},
		Remarks:       "rush",
		Progress:      "half",
	}).Return(newBoard(t), nil).Once()

	rec := serve(e, http.MethodPut, "/api/v1/orders/ORD-1001/production",
		`{"rollSize":"24","quantityKgs":"120","remarks":"rush","progress":"half"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	m.pipeline.AssertExpectations(t)
}

func TestServer_SavePackages(t *testing.T) {
	t.Run("lines become the draft", func(t *testing.T) {
		e, m := newTestServer()
		m.pipeline.On("SavePackages", mock.Anything, mock.MatchedBy(func(d packaging.Draft) bool {
			lines := d.Lines()
			return d.OrderID().IsEqual(orderID) && len(lines) == 2 &&
				lines[0] == packaging.DraftLine{Length: "40", Width: "30", Height: "20", Weight: "2.5"} &&
				lines[1] == packaging.DraftLine{Weight: "1"}
		})).Return(newBoard(t), nil).Once()

		rec := serve(e, http.MethodPost, "/api/v1/orders/ORD-1001/packages",
			`{"lines":[{"length":"40","width":"30","height":"20","weight":"2.5"},{"weight":"1"}]}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		m.pipeline.AssertExpectations(t)
	})

	t.Run("empty draft is rejected by the orchestrator", func(t *testing.T) {
		e, m := newTestServer()
		m.pipeline.On("SavePackages", mock.Anything, mock.Anything).
			Return(orchestrator.Board{}, errs.NewValidationError("add at least one package")).Once()

		rec := serve(e, http.MethodPost, "/api/v1/orders/ORD-1001/packages", `{"lines":[]}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestServer_PackageDetails(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		e, m := newTestServer()
		m.pipeline.On("AddPackageDetail", mock.Anything, orderID,
			packaging.DraftLine{Length: "5", Width: "6", Height: "7", Weight: "1"},
		).Return(newBoard(t), nil).Once()

		rec := serve(e, http.MethodPost, "/api/v1/orders/ORD-1001/packages/details",
			`{"length":"5","width":"6","height":"7","weight":"1"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		m.pipeline.AssertExpectations(t)
	})

	t.Run("update", func(t *testing.T) {
		e, m := newTestServer()
		m.pipeline.On("UpdatePackageDetail", mock.Anything, orderID, "d-1",
			packaging.DraftLine{Length: "41", Width: "30", Height: "20", Weight: "2.5"},
		).Return(newBoard(t), nil).Once()

		rec := serve(e, http.MethodPut, "/api/v1/orders/ORD-1001/packages/details/d-1",
			`{"length":"41","width":"30","height":"20","weight":"2.5"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		m.pipeline.AssertExpectations(t)
	})

	t.Run("unknown detail", func(t *testing.T) {
		e, m := newTestServer()
		m.pipeline.On("UpdatePackageDetail", mock.Anything, orderID, "d-9", mock.Anything).
			Return(orchestrator.Board{}, errs.NewObjectNotFoundError("package detail", "d-9")).Once()

		rec := serve(e, http.MethodPut, "/api/v1/orders/ORD-1001/packages/details/d-9", `{"weight":"1"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_SaveDelivery(t *testing.T) {
	t.Run("form becomes the draft", func(t *testing.T) {
		e, m := newTestServer()
		m.pipeline.On("SaveDelivery", mock.Anything, orderID, delivery.Draft{
			VehicleNo:     "KA01AB1234",
			DriverName:    "Ravi",
			DriverContact: "9000000000",
			DeliveryDate:  "2024-05-02",
			Status:        "in_transit",
		}).Return(newBoard(t), nil).Once()

		rec := serve(e, http.MethodPut, "/api/v1/orders/ORD-1001/delivery",
			`{"vehicleNo":"KA01AB1234","driverName":"Ravi","driverContact":"9000000000",`+
				`"deliveryDate":"2024-05-02","status":"in_transit"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		m.pipeline.AssertExpectations(t)
	})

	t.Run("partial failure reports the collaborator message", func(t *testing.T) {
		e, m := newTestServer()
		stepErr := &commands.SaveDeliveryStepError{
			Step: commands.StepUpdateDelivery,
			Err:  errs.NewRemoteError("update delivery", http.StatusConflict, "Delivery already delivered"),
		}
		m.pipeline.On("SaveDelivery", mock.Anything, orderID, mock.Anything).
			Return(orchestrator.Board{}, stepErr).Once()

		rec := serve(e, http.MethodPut, "/api/v1/orders/ORD-1001/delivery", `{"status":"delivered"}`)

		require.Equal(t, http.StatusBadGateway, rec.Code)
		body := decode[servers.Error](t, rec)
		assert.Equal(t, "Delivery already delivered", body.Message)
	})
}
