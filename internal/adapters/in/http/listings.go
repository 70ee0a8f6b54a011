package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListProduction handles GET /api/v1/production for the configured line.
func (s *Server) ListProduction(ctx echo.Context, params servers.ListProductionParams) error {
	query, err := queries.NewListProductionQuery(s.pipeline.Line(), deref(params.Search), deref(params.Status))
	if err != nil {
		return respondError(ctx, err)
	}

	records, err := s.listProductionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.Production, len(records))
	for i, record := range records {
		response[i] = toProduction(record)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListDeliveries handles GET /api/v1/deliveries.
func (s *Server) ListDeliveries(ctx echo.Context, params servers.ListDeliveriesParams) error {
	query, err := queries.NewListDeliveriesQuery(
		deref(params.Search),
		deref(params.Status),
		deref(params.Page),
		deref(params.PageSize),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	page, err := s.listDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := servers.DeliveryPage{
		Items:      make([]servers.Delivery, len(page.Items)),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
	for i, record := range page.Items {
		response.Items[i] = toDelivery(record)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveryStats handles GET /api/v1/deliveries/stats.
func (s *Server) GetDeliveryStats(ctx echo.Context) error {
	stats, err := s.getStatsHandler.Handle(ctx.Request().Context(), queries.NewGetDeliveryStatsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DeliveryStats{
		Total:      stats.Total,
		Pending:    stats.Pending,
		InTransit:  stats.InTransit,
		Delivered:  stats.Delivered,
		Cancelled:  stats.Cancelled,
		ComputedAt: stats.ComputedAt,
	})
}
