package http

import (
	"net/http"

	"fulfillment/internal/core/application/orchestrator"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetBoard handles GET /api/v1/orders/{orderId}/board.
func (s *Server) GetBoard(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.NewOrderID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	board, err := s.pipeline.Board(ctx.Request().Context(), orderID)
	return respondBoard(ctx, board, err)
}

// ApplyTransition handles POST /api/v1/orders/{orderId}/transitions.
func (s *Server) ApplyTransition(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.NewOrderID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body servers.ApplyTransitionJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	stage, err := services.ParseStage(string(body.Stage))
	if err != nil {
		return badRequest(ctx, "Invalid stage: "+err.Error())
	}

	board, err := s.pipeline.Advance(ctx.Request().Context(), orchestrator.AdvanceRequest{
		Stage:   stage,
		OrderID: orderID,
		Target:  body.Target,
		Metadata: services.TransitionMetadata{
			Unit:   deref(body.Unit),
			Remark: deref(body.Remark),
		},
		RecordID: deref(body.RecordId),
	})
	return respondBoard(ctx, board, err)
}

// MoveToPackaging handles POST /api/v1/orders/{orderId}/move-to-packaging.
func (s *Server) MoveToPackaging(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.NewOrderID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	board, err := s.pipeline.MoveToPackaging(ctx.Request().Context(), orderID)
	return respondBoard(ctx, board, err)
}

// UpdateProductionDetails handles PUT /api/v1/orders/{orderId}/production.
// Absent quantities are stored as absent, not as zero.
func (s *Server) UpdateProductionDetails(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.NewOrderID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body servers.UpdateProductionDetailsJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	board, err := s.pipeline.UpdateProductionDetails(ctx.Request().Context(), orderID, production.Details{
		RollSize:      deref(body.RollSize),
		CylinderSize:  deref(body.CylinderSize),
		QuantityKgs:   kernel.ParseValue(deref(body.QuantityKgs)),
		QuantityRolls: kernel.ParseValue(deref(body.QuantityRolls)),
		Remarks:       deref(body.Remarks),
		Progress:      deref(body.Progress),
	})
	return respondBoard(ctx, board, err)
}

// SavePackages handles POST /api/v1/orders/{orderId}/packages.
func (s *Server) SavePackages(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.NewOrderID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body servers.SavePackagesJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	draft := packaging.NewDraft(orderID)
	for _, line := range body.Lines {
		draft, err = packaging.Reduce(draft, packaging.AddLine{Line: toDraftLine(line)})
		if err != nil {
			return respondError(ctx, err)
		}
	}

	board, err := s.pipeline.SavePackages(ctx.Request().Context(), draft)
	return respondBoard(ctx, board, err)
}

// AddPackageDetail handles POST /api/v1/orders/{orderId}/packages/details.
func (s *Server) AddPackageDetail(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.NewOrderID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body servers.AddPackageDetailJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	board, err := s.pipeline.AddPackageDetail(ctx.Request().Context(), orderID, toDraftLine(body))
	return respondBoard(ctx, board, err)
}

// UpdatePackageDetail handles PUT /api/v1/orders/{orderId}/packages/details/{detailId}.
func (s *Server) UpdatePackageDetail(ctx echo.Context, orderId servers.OrderId, detailId string) error {
	orderID, err := kernel.NewOrderID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body servers.UpdatePackageDetailJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	board, err := s.pipeline.UpdatePackageDetail(ctx.Request().Context(), orderID, detailId, toDraftLine(body))
	return respondBoard(ctx, board, err)
}

// SaveDelivery handles PUT /api/v1/orders/{orderId}/delivery. Field rules
// are checked by the delivery draft, so missing fields come back as 422.
func (s *Server) SaveDelivery(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.NewOrderID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body servers.SaveDeliveryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	board, err := s.pipeline.SaveDelivery(ctx.Request().Context(), orderID, delivery.Draft{
		VehicleNo:     deref(body.VehicleNo),
		DriverName:    deref(body.DriverName),
		DriverContact: deref(body.DriverContact),
		DeliveryDate:  deref(body.DeliveryDate),
		Status:        string(deref(body.Status)),
	})
	return respondBoard(ctx, board, err)
}

func respondBoard(ctx echo.Context, board orchestrator.Board, err error) error {
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toBoard(board))
}

func toDraftLine(line servers.PackageLine) packaging.DraftLine {
	return packaging.DraftLine{
		Length: deref(line.Length),
		Width:  deref(line.Width),
		Height: deref(line.Height),
		Weight: deref(line.Weight),
	}
}
