package http

import (
	"fmt"
	"net/http"
	"strconv"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const (
	HeaderDocumentChecksum = "X-Document-Checksum"
	HeaderDocumentReprint  = "X-Document-Reprint"
)

// GetInvoice handles GET /api/v1/orders/{orderId}/invoice.
func (s *Server) GetInvoice(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.NewOrderID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	generated, err := s.pipeline.Invoice(ctx.Request().Context(), orderID)
	if err != nil {
		return respondError(ctx, err)
	}
	return respondDocument(ctx, generated)
}

// GetLabel handles GET /api/v1/orders/{orderId}/labels/{sequence}.
func (s *Server) GetLabel(ctx echo.Context, orderId servers.OrderId, sequence int) error {
	orderID, err := kernel.NewOrderID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	generated, err := s.pipeline.Label(ctx.Request().Context(), orderID, sequence)
	if err != nil {
		return respondError(ctx, err)
	}
	return respondDocument(ctx, generated)
}

// GetDocumentHistory handles GET /api/v1/orders/{orderId}/documents.
func (s *Server) GetDocumentHistory(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.NewOrderID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}
	query, err := queries.NewGetDocumentHistoryQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	issued, err := s.documentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.IssuedDocument, len(issued))
	for i, doc := range issued {
		response[i] = servers.IssuedDocument{
			Id:             doc.ID.Bytes(),
			Kind:           doc.Kind,
			Filename:       doc.Filename,
			Checksum:       doc.Checksum,
			BarcodePayload: doc.BarcodePayload,
			Pages:          doc.Pages,
			IssuedAt:       doc.IssuedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func respondDocument(ctx echo.Context, generated commands.GeneratedDocument) error {
	handle := generated.Handle

	header := ctx.Response().Header()
	header.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", handle.Filename))
	header.Set(HeaderDocumentChecksum, handle.Checksum)
	header.Set(HeaderDocumentReprint, strconv.FormatBool(generated.IsReprint()))

	return ctx.Blob(http.StatusOK, handle.ContentType, handle.Content)
}
