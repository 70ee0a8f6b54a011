package commands_test

import (
	"net/http"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func draftWith(t *testing.T, lines ...packaging.DraftLine) packaging.Draft {
	t.Helper()
	draft := packaging.NewDraft(orderID)
	for _, l := range lines {
		var err error
		draft, err = packaging.Reduce(draft, packaging.AddLine{Line: l})
		require.NoError(t, err)
	}
	return draft
}

func TestNewSavePackagesCommand(t *testing.T) {
	t.Run("confirmed draft", func(t *testing.T) {
		draft := draftWith(t,
			packaging.DraftLine{Length: "40", Width: "30", Height: "20", Weight: "2.5"},
			packaging.DraftLine{Length: "10", Width: "10", Height: "10", Weight: "1"},
		)

		cmd, err := commands.NewSavePackagesCommand(draft)

		require.NoError(t, err)
		assert.Equal(t, orderID, cmd.OrderID())
		require.Len(t, cmd.Details(), 2)
		assert.Equal(t, "2.50", cmd.Details()[0].Weight().String())
	})

	t.Run("empty draft", func(t *testing.T) {
		_, err := commands.NewSavePackagesCommand(packaging.NewDraft(orderID))

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("non-numeric figure", func(t *testing.T) {
		draft := draftWith(t, packaging.DraftLine{Length: "forty", Width: "30", Height: "20", Weight: "2"})

		_, err := commands.NewSavePackagesCommand(draft)

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})
}

func TestSavePackagesCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.SavePackagesCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrSavePackagesCommandIsNotConstructed)
}

func TestSavePackagesCommandHandler_Handle(t *testing.T) {
	t.Run("submits the confirmed details", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewSavePackagesCommand(
			draftWith(t, packaging.DraftLine{Length: "40", Width: "30", Height: "20", Weight: "2.5"}),
		)
		require.NoError(t, err)

		stored := newPackageRecord(t, "pkg-1", packaging.Pending, newDetail("d-1", "40", "30", "20", "2.5"))
		gateway := new(MockPackageGateway)
		gateway.On("CreatePackages", ctx, orderID, cmd.Details()).Return(stored, nil).Once()
		handler := commands.NewSavePackagesCommandHandler(gateway)

		record, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "pkg-1", record.ID())
		gateway.AssertExpectations(t)
	})

	t.Run("remote rejection", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewSavePackagesCommand(
			draftWith(t, packaging.DraftLine{Length: "1", Width: "1", Height: "1", Weight: "1"}),
		)
		require.NoError(t, err)

		gateway := new(MockPackageGateway)
		gateway.On("CreatePackages", ctx, orderID, mock.Anything).
			Return(packaging.Record{}, errs.NewRemoteError("create packages", http.StatusBadRequest, "order not in packaging")).Once()
		handler := commands.NewSavePackagesCommandHandler(gateway)

		_, err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.True(t, errs.IsRemote(err))
		assert.Contains(t, err.Error(), "order not in packaging")
	})
}

func TestAddPackageDetailCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddPackageDetailCommand(orderID, packaging.DraftLine{Length: "5", Width: "6", Height: "7", Weight: "0.8"})
	require.NoError(t, err)
	assert.Equal(t, "5x6x7 cm", cmd.Detail().Dimensions())

	stored := newPackageRecord(t, "pkg-1", packaging.Pending, newDetail("d-1", "5", "6", "7", "0.8"))
	gateway := new(MockPackageGateway)
	gateway.On("AddPackageDetail", ctx, orderID, cmd.Detail()).Return(stored, nil).Once()
	handler := commands.NewAddPackageDetailCommandHandler(gateway)

	record, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Len(t, record.Details(), 1)
	gateway.AssertExpectations(t)
}

func TestNewAddPackageDetailCommand_NegativeWeight(t *testing.T) {
	_, err := commands.NewAddPackageDetailCommand(orderID, packaging.DraftLine{Length: "5", Width: "6", Height: "7", Weight: "-1"})

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestNewUpdatePackageDetailCommand(t *testing.T) {
	t.Run("carries the detail id", func(t *testing.T) {
		cmd, err := commands.NewUpdatePackageDetailCommand(orderID, " d-1 ", packaging.DraftLine{
			Length: "5", Width: "6", Height: "7", Weight: "1",
		})

		require.NoError(t, err)
		assert.Equal(t, "d-1", cmd.DetailID())
		assert.Equal(t, "d-1", cmd.Detail().ID())
	})

	t.Run("missing detail id", func(t *testing.T) {
		_, err := commands.NewUpdatePackageDetailCommand(orderID, "", packaging.DraftLine{
			Length: "5", Width: "6", Height: "7", Weight: "1",
		})

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("missing order", func(t *testing.T) {
		_, err := commands.NewUpdatePackageDetailCommand(kernel.OrderID{}, "d-1", packaging.DraftLine{
			Length: "5", Width: "6", Height: "7", Weight: "1",
		})

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})
}

func TestUpdatePackageDetailCommandHandler_Handle(t *testing.T) {
	line := packaging.DraftLine{Length: "50", Width: "40", Height: "30", Weight: "3"}
	existing := newPackageRecord(t, "pkg-1", packaging.Pending, newDetail("d-1", "40", "30", "20", "2.5"))

	t.Run("edits in place", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewUpdatePackageDetailCommand(orderID, "d-1", line)
		require.NoError(t, err)

		updated := newPackageRecord(t, "pkg-1", packaging.Pending, newDetail("d-1", "50", "40", "30", "3"))
		gateway := new(MockPackageGateway)
		mock.InOrder(
			gateway.On("ListPackages", ctx, orderID).Return([]packaging.Record{existing}, nil).Once(),
			gateway.On("UpdatePackageDetail", ctx, orderID, "d-1", cmd.Detail()).Return(updated, nil).Once(),
		)
		handler := commands.NewUpdatePackageDetailCommandHandler(gateway)

		record, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		detail, ok := record.FindDetail("d-1")
		require.True(t, ok)
		assert.Equal(t, "3", detail.Weight().String())
		gateway.AssertExpectations(t)
	})

	t.Run("unknown detail", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewUpdatePackageDetailCommand(orderID, "d-9", line)
		require.NoError(t, err)

		gateway := new(MockPackageGateway)
		gateway.On("ListPackages", ctx, orderID).Return([]packaging.Record{existing}, nil).Once()
		handler := commands.NewUpdatePackageDetailCommandHandler(gateway)

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		gateway.AssertNotCalled(t, "UpdatePackageDetail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
