package remoteapi

import (
	"context"
	"net/http"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

type bagDTO struct {
	Type       text `json:"type"`
	Color      text `json:"color"`
	PrintColor text `json:"printColor"`
	Size       text `json:"size"`
	GSM        text `json:"gsm"`
}

type orderDTO struct {
	ID           text    `json:"_id"`
	OrderID      text    `json:"orderId"`
	OrderIDSnake text    `json:"order_id"`
	CustomerName text    `json:"customerName"`
	Email        text    `json:"email"`
	MobileNumber text    `json:"mobileNumber"`
	Address      text    `json:"address"`
	JobName      text    `json:"jobName"`
	Quantity     number  `json:"quantity"`
	OrderPrice   number  `json:"orderPrice"`
	Agent        text    `json:"agent"`
	CreatedAt    text    `json:"createdAt"`
	BagDetails   *bagDTO `json:"bagDetails"`
}

func (d orderDTO) toDomain() (*order.Order, error) {
	orderID, err := kernel.NewOrderID(first(d.OrderID, d.OrderIDSnake))
	if err != nil {
		return nil, err
	}
	bag := order.BagSpecification{}
	if b := d.BagDetails; b != nil {
		bag = order.NewBagSpecification(b.Type.String(), b.Color.String(), b.PrintColor.String(), b.Size.String(), b.GSM.String())
	}
	return order.RestoreOrder(
		d.ID.String(),
		orderID,
		d.JobName.String(),
		d.Agent.String(),
		order.NewCustomer(d.CustomerName.String(), d.Email.String(), d.MobileNumber.String(), d.Address.String()),
		bag,
		d.Quantity.value,
		d.OrderPrice.value,
		timestamp(d.CreatedAt),
	)
}

func (cl *Client) GetOrder(ctx context.Context, orderID kernel.OrderID) (*order.Order, error) {
	const op = "get order"
	p, err := path(op, "/orders/%s", param{"orderId", orderID.String()})
	if err != nil {
		return nil, err
	}

	var out envelope[orderDTO]
	if err := cl.do(ctx, call{op: op, method: http.MethodGet, path: p}, &out); err != nil {
		return nil, err
	}
	o, err := out.Data.toDomain()
	if err != nil {
		return nil, invalidRecord(op, err)
	}
	return o, nil
}
