package http

import (
	"fulfillment/internal/core/application/orchestrator"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/numfmt"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toBoard(b orchestrator.Board) servers.Board {
	response := servers.Board{
		Packages:  make([]servers.PackageRecord, len(b.Pipeline.Packages)),
		Aggregate: toAggregate(b.Aggregate),
		Actions: servers.Actions{
			Production:         toStageActions(b.Production),
			Packaging:          make([]servers.PackageActions, len(b.Packaging)),
			Delivery:           toStageActions(b.Delivery),
			CanMoveToPackaging: b.CanMoveToPackaging,
			DeliveryLocked:     b.DeliveryLocked,
		},
	}

	if o := b.Pipeline.Order; o != nil {
		response.Order = toOrder(o)
	}
	if p := b.Pipeline.Production; p != nil {
		run := toProduction(*p)
		response.Production = &run
	}
	for i, record := range b.Pipeline.Packages {
		response.Packages[i] = toPackageRecord(record)
	}
	if d := b.Pipeline.Delivery; d != nil {
		shipment := toDelivery(*d)
		response.Delivery = &shipment
	}
	for i, actions := range b.Packaging {
		response.Actions.Packaging[i] = servers.PackageActions{
			RecordId: actions.RecordID,
			Current:  actions.Current,
			Next:     actions.Next,
		}
	}

	return response
}

func toStageActions(a orchestrator.Actions) servers.StageActions {
	next := a.Next
	if next == nil {
		next = []string{}
	}
	return servers.StageActions{Current: a.Current, Next: next}
}

func toOrder(o *order.Order) servers.Order {
	customer := o.Customer()
	bag := o.Bag()
	return servers.Order{
		OrderId: o.OrderID().String(),
		JobName: o.JobName(),
		Agent:   o.Agent(),
		Customer: servers.Customer{
			Name:    customer.Name(),
			Email:   customer.Email(),
			Mobile:  customer.Mobile(),
			Address: customer.Address(),
		},
		Bag: servers.Bag{
			Type:       bag.Type(),
			Color:      bag.Color(),
			PrintColor: bag.PrintColor(),
			Size:       bag.Size(),
			Gsm:        bag.GSM(),
		},
		Quantity:  valueOrNil(o.Quantity()),
		UnitPrice: valueOrNil(o.UnitPrice()),
		CreatedAt: o.CreatedAt(),
	}
}

func toProduction(r production.Record) servers.Production {
	details := r.Details()
	response := servers.Production{
		Id:            r.ID(),
		OrderId:       r.OrderID().String(),
		Line:          r.Line(),
		Status:        r.Status().String(),
		Unit:          r.Unit(),
		RollSize:      details.RollSize,
		CylinderSize:  details.CylinderSize,
		QuantityKgs:   valueOrNil(details.QuantityKgs),
		QuantityRolls: valueOrNil(details.QuantityRolls),
		Remarks:       details.Remarks,
		Progress:      details.Progress,
	}
	if o := r.Order(); o != nil {
		response.JobName = o.JobName()
	}
	return response
}

func toPackageRecord(r packaging.Record) servers.PackageRecord {
	details := r.Details()
	response := servers.PackageRecord{
		Id:      r.ID(),
		Status:  r.Status().String(),
		Details: make([]servers.PackageDetail, len(details)),
	}
	for i, d := range details {
		response.Details[i] = servers.PackageDetail{
			Id:     d.ID(),
			Length: valueOrNil(d.Length()),
			Width:  valueOrNil(d.Width()),
			Height: valueOrNil(d.Height()),
			Weight: valueOrNil(d.Weight()),
		}
	}
	return response
}

func toAggregate(a packaging.Aggregate) servers.PackageAggregate {
	summaries := a.DimensionSummaries
	if summaries == nil {
		summaries = []string{}
	}
	response := servers.PackageAggregate{
		TotalWeight:        numfmt.Number(a.TotalWeight),
		DimensionSummaries: summaries,
		Rows:               make([]servers.PackageRow, len(a.Rows)),
	}
	for i, row := range a.Rows {
		response.Rows[i] = servers.PackageRow{
			Sequence:   row.Sequence,
			RecordId:   row.RecordID,
			Dimensions: row.Dimensions,
			Weight:     valueOrNil(row.Detail.Weight()),
		}
	}
	return response
}

func toDelivery(r delivery.Record) servers.Delivery {
	assignment := r.Assignment()
	response := servers.Delivery{
		Id:            r.ID(),
		OrderId:       r.OrderID().String(),
		Status:        r.Status().String(),
		VehicleNo:     assignment.VehicleNo,
		DriverName:    assignment.DriverName,
		DriverContact: assignment.DriverContact,
	}
	if !assignment.DeliveryDate.IsZero() {
		response.DeliveryDate = &openapi_types.Date{Time: assignment.DeliveryDate}
	}
	if o := r.Order(); o != nil {
		response.CustomerName = o.Customer().Name()
		response.JobName = o.JobName()
	}
	return response
}

// valueOrNil renders a present value with the display rule and an absent one
// as JSON null.
func valueOrNil(v kernel.Value) *string {
	if !v.Present() {
		return nil
	}
	s := v.String()
	return &s
}
