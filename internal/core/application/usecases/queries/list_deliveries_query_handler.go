package queries

import (
	"context"
	"strings"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/ports"
)

// ListDeliveriesQueryHandler filters and pages the delivery listing of the
// order service. The service has no server-side search, so every read pulls
// the whole listing.
type ListDeliveriesQueryHandler struct {
	deliveries ports.DeliveryGateway
}

func NewListDeliveriesQueryHandler(deliveries ports.DeliveryGateway) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{deliveries: deliveries}
}

// Handle keeps the service order of the records. A page past the end is
// empty, not an error.
func (h ListDeliveriesQueryHandler) Handle(ctx context.Context, query ListDeliveriesQuery) (DeliveryPage, error) {
	if err := query.Validate(); err != nil {
		return DeliveryPage{}, err
	}

	records, err := h.deliveries.ListDeliveries(ctx)
	if err != nil {
		return DeliveryPage{}, err
	}

	matched := make([]delivery.Record, 0, len(records))
	for _, r := range records {
		if query.Status() != delivery.Unknown && r.Status() != query.Status() {
			continue
		}
		if !deliveryMatches(r, query.Search()) {
			continue
		}
		matched = append(matched, r)
	}

	page := DeliveryPage{
		Items:      []delivery.Record{},
		Total:      len(matched),
		Page:       query.Page(),
		PageSize:   query.PageSize(),
		TotalPages: (len(matched) + query.PageSize() - 1) / query.PageSize(),
	}
	start := (query.Page() - 1) * query.PageSize()
	if start < len(matched) {
		end := min(start+query.PageSize(), len(matched))
		page.Items = matched[start:end]
	}
	return page, nil
}

func deliveryMatches(r delivery.Record, search string) bool {
	if search == "" {
		return true
	}
	fields := []string{r.OrderID().String()}
	if o := r.Order(); o != nil {
		fields = append(fields,
			o.Customer().Name(),
			o.JobName(),
			o.Customer().Mobile(),
			o.Agent(),
		)
	}
	return containsFold(fields, search)
}

// containsFold reports whether any field contains the lower-cased needle.
func containsFold(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
