package remoteapi

import (
	"context"
	"net/http"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/production"
)

type productionDetailsDTO struct {
	RollSize      text   `json:"roll_size"`
	CylinderSize  text   `json:"cylinder_size"`
	QuantityKgs   number `json:"quantity_kgs"`
	QuantityRolls number `json:"quantity_rolls"`
	Remarks       text   `json:"remarks"`
	Progress      text   `json:"progress"`
}

type productionManagerDTO struct {
	Status text `json:"status"`
}

// productionDTO is a production record. Line listings inline the order
// fields next to the production ones.
type productionDTO struct {
	orderDTO
	Status            text                  `json:"status"`
	ProductionManager *productionManagerDTO `json:"productionManager"`
	Details           *productionDetailsDTO `json:"production_details"`
	Unit              text                  `json:"unitToUpdate"`
}

func (d productionDTO) toDomain(line string) (production.Record, error) {
	orderID, err := kernel.NewOrderID(first(d.OrderID, d.OrderIDSnake))
	if err != nil {
		return production.Record{}, err
	}
	status := d.Status
	if status.String() == "" && d.ProductionManager != nil {
		status = d.ProductionManager.Status
	}
	s, err := parseStatus(status, production.Pending, production.ParseStatus)
	if err != nil {
		return production.Record{}, err
	}
	var details production.Details
	if pd := d.Details; pd != nil {
		details = production.Details{
			RollSize:      pd.RollSize.String(),
			CylinderSize:  pd.CylinderSize.String(),
			QuantityKgs:   pd.QuantityKgs.value,
			QuantityRolls: pd.QuantityRolls.value,
			Remarks:       pd.Remarks.String(),
			Progress:      pd.Progress.String(),
		}
	}
	r, err := production.NewRecord(d.ID.String(), orderID, line, s, details, d.Unit.String())
	if err != nil {
		return production.Record{}, err
	}
	if d.JobName.String() != "" || d.CustomerName.String() != "" {
		if o, err := d.orderDTO.toDomain(); err == nil {
			r = r.WithOrder(o)
		}
	}
	return r, nil
}

func productionDetailsFromDomain(d production.Details) productionDetailsDTO {
	return productionDetailsDTO{
		RollSize:      text(d.RollSize),
		CylinderSize:  text(d.CylinderSize),
		QuantityKgs:   numberOf(d.QuantityKgs),
		QuantityRolls: numberOf(d.QuantityRolls),
		Remarks:       text(d.Remarks),
		Progress:      text(d.Progress),
	}
}

type productionStatusRequest struct {
	Status  string `json:"status"`
	Unit    string `json:"unitToUpdate,omitempty"`
	Remarks string `json:"remarks,omitempty"`
}

type productionDetailsRequest struct {
	Details productionDetailsDTO `json:"production_details"`
}

func (cl *Client) ListProduction(ctx context.Context, line string) ([]production.Record, error) {
	const op = "list production"
	p, err := path(op, "/production/%s", param{"line", line})
	if err != nil {
		return nil, err
	}

	var out envelope[[]productionDTO]
	if err := cl.do(ctx, call{op: op, method: http.MethodGet, path: p}, &out); err != nil {
		return nil, err
	}
	records := make([]production.Record, 0, len(out.Data))
	for _, dto := range out.Data {
		r, err := dto.toDomain(line)
		if err != nil {
			return nil, invalidRecord(op, err)
		}
		records = append(records, r)
	}
	return records, nil
}

func (cl *Client) GetProduction(ctx context.Context, line string, orderID kernel.OrderID) (production.Record, error) {
	const op = "get production"
	p, err := path(op, "/production/%s/%s", param{"line", line}, param{"orderId", orderID.String()})
	if err != nil {
		return production.Record{}, err
	}
	return cl.productionRecord(ctx, call{op: op, method: http.MethodGet, path: p}, line)
}

func (cl *Client) UpdateProductionStatus(
	ctx context.Context,
	line string,
	orderID kernel.OrderID,
	status production.Status,
	unit, remark string,
) (production.Record, error) {
	const op = "update production status"
	p, err := path(op, "/production/%s/%s/status", param{"line", line}, param{"orderId", orderID.String()})
	if err != nil {
		return production.Record{}, err
	}
	body := productionStatusRequest{Status: status.String(), Unit: unit, Remarks: remark}
	return cl.productionRecord(ctx, call{op: op, method: http.MethodPut, path: p, body: body}, line)
}

func (cl *Client) UpdateProductionDetails(
	ctx context.Context,
	line string,
	orderID kernel.OrderID,
	details production.Details,
) (production.Record, error) {
	const op = "update production details"
	p, err := path(op, "/production/%s/%s", param{"line", line}, param{"orderId", orderID.String()})
	if err != nil {
		return production.Record{}, err
	}
	body := productionDetailsRequest{Details: productionDetailsFromDomain(details)}
	return cl.productionRecord(ctx, call{op: op, method: http.MethodPut, path: p, body: body}, line)
}

func (cl *Client) MoveToPackaging(ctx context.Context, line string, orderID kernel.OrderID) error {
	const op = "move to packaging"
	p, err := path(op, "/production/%s/%s/move-to-packaging", param{"line", line}, param{"orderId", orderID.String()})
	if err != nil {
		return err
	}
	return cl.do(ctx, call{op: op, method: http.MethodPost, path: p}, nil)
}

func (cl *Client) productionRecord(ctx context.Context, c call, line string) (production.Record, error) {
	var out envelope[productionDTO]
	if err := cl.do(ctx, c, &out); err != nil {
		return production.Record{}, err
	}
	r, err := out.Data.toDomain(line)
	if err != nil {
		return production.Record{}, invalidRecord(c.op, err)
	}
	return r, nil
}
