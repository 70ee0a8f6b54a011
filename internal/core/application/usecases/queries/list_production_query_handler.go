package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/core/ports"
)

// ListProductionQueryHandler filters the listing of a production line.
type ListProductionQueryHandler struct {
	production ports.ProductionGateway
}

func NewListProductionQueryHandler(production ports.ProductionGateway) ListProductionQueryHandler {
	return ListProductionQueryHandler{production: production}
}

func (h ListProductionQueryHandler) Handle(ctx context.Context, query ListProductionQuery) ([]production.Record, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records, err := h.production.ListProduction(ctx, query.Line())
	if err != nil {
		return nil, err
	}

	matched := make([]production.Record, 0, len(records))
	for _, r := range records {
		if query.Status() != production.Unknown && r.Status() != query.Status() {
			continue
		}
		if !productionMatches(r, query.Search()) {
			continue
		}
		matched = append(matched, r)
	}
	return matched, nil
}

func productionMatches(r production.Record, search string) bool {
	if search == "" {
		return true
	}
	fields := []string{r.OrderID().String()}
	if o := r.Order(); o != nil {
		fields = append(fields, o.JobName())
	}
	return containsFold(fields, search)
}
