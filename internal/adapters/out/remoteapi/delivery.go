package remoteapi

import (
	"context"
	"net/http"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

type deliveryDTO struct {
	ID            text      `json:"_id"`
	OrderID       text      `json:"orderId"`
	OrderIDSnake  text      `json:"order_id"`
	OrderDetails  *orderDTO `json:"orderDetails"`
	VehicleNo     text      `json:"vehicleNo"`
	DriverName    text      `json:"driverName"`
	DriverContact text      `json:"driverContact"`
	DeliveryDate  text      `json:"deliveryDate"`
	Status        text      `json:"status"`
}

// toDomain keeps the record when the embedded order is unusable; the order
// is then left out.
func (d deliveryDTO) toDomain() (delivery.Record, error) {
	var o *order.Order
	if d.OrderDetails != nil {
		if embedded, err := d.OrderDetails.toDomain(); err == nil {
			o = embedded
		}
	}
	key := first(d.OrderID, d.OrderIDSnake)
	if key == "" && o != nil {
		key = o.OrderID().String()
	}
	orderID, err := kernel.NewOrderID(key)
	if err != nil {
		return delivery.Record{}, err
	}
	status, err := parseStatus(d.Status, delivery.Pending, delivery.ParseStatus)
	if err != nil {
		return delivery.Record{}, err
	}
	assignment := delivery.Assignment{
		VehicleNo:     d.VehicleNo.String(),
		DriverName:    d.DriverName.String(),
		DriverContact: d.DriverContact.String(),
		DeliveryDate:  timestamp(d.DeliveryDate),
	}
	return delivery.NewRecord(d.ID.String(), orderID, status, assignment, o)
}

type updateDeliveryRequest struct {
	VehicleNo     string `json:"vehicleNo"`
	DriverName    string `json:"driverName"`
	DriverContact string `json:"driverContact"`
	DeliveryDate  string `json:"deliveryDate"`
	Status        string `json:"status"`
}

type driverDTO struct {
	ID            text `json:"_id,omitempty"`
	Name          text `json:"name"`
	Contact       text `json:"contact"`
	VehicleNumber text `json:"vehicleNumber"`
}

func (d driverDTO) toDomain() (delivery.Driver, error) {
	return delivery.NewDriver(d.ID.String(), d.Name.String(), d.Contact.String(), d.VehicleNumber.String())
}

func driverFromDomain(d delivery.Driver) driverDTO {
	return driverDTO{
		Name:          text(d.Name()),
		Contact:       text(d.Contact()),
		VehicleNumber: text(d.VehicleNumber()),
	}
}

func (cl *Client) ListDeliveries(ctx context.Context) ([]delivery.Record, error) {
	const op = "list deliveries"
	var out envelope[[]deliveryDTO]
	if err := cl.do(ctx, call{op: op, method: http.MethodGet, path: "/delivery"}, &out); err != nil {
		return nil, err
	}
	records := make([]delivery.Record, 0, len(out.Data))
	for _, dto := range out.Data {
		r, err := dto.toDomain()
		if err != nil {
			return nil, invalidRecord(op, err)
		}
		records = append(records, r)
	}
	return records, nil
}

func (cl *Client) GetDeliveryByOrder(ctx context.Context, orderID kernel.OrderID) (delivery.Record, error) {
	const op = "get delivery"
	p, err := path(op, "/delivery/order/%s", param{"orderId", orderID.String()})
	if err != nil {
		return delivery.Record{}, err
	}
	return cl.deliveryRecord(ctx, call{op: op, method: http.MethodGet, path: p})
}

func (cl *Client) UpdateDelivery(
	ctx context.Context,
	recordID string,
	submission delivery.Submission,
) (delivery.Record, error) {
	const op = "update delivery"
	p, err := path(op, "/inventory/delivery/%s", param{"id", recordID})
	if err != nil {
		return delivery.Record{}, err
	}
	a := submission.Assignment
	body := updateDeliveryRequest{
		VehicleNo:     a.VehicleNo,
		DriverName:    a.DriverName,
		DriverContact: a.DriverContact,
		Status:        submission.Status.String(),
	}
	if !a.DeliveryDate.IsZero() {
		body.DeliveryDate = a.DeliveryDate.Format(delivery.DateLayout)
	}
	return cl.deliveryRecord(ctx, call{op: op, method: http.MethodPut, path: p, body: body})
}

func (cl *Client) UpdateDeliveryStatus(
	ctx context.Context,
	recordID string,
	status delivery.Status,
) (delivery.Record, error) {
	const op = "update delivery status"
	p, err := path(op, "/delivery/%s", param{"id", recordID})
	if err != nil {
		return delivery.Record{}, err
	}
	body := statusRequest{Status: status.String()}
	return cl.deliveryRecord(ctx, call{op: op, method: http.MethodPut, path: p, body: body})
}

func (cl *Client) deliveryRecord(ctx context.Context, c call) (delivery.Record, error) {
	var out envelope[deliveryDTO]
	if err := cl.do(ctx, c, &out); err != nil {
		return delivery.Record{}, err
	}
	r, err := out.Data.toDomain()
	if err != nil {
		return delivery.Record{}, invalidRecord(c.op, err)
	}
	return r, nil
}

func (cl *Client) ListDrivers(ctx context.Context) ([]delivery.Driver, error) {
	const op = "list drivers"
	var out envelope[[]driverDTO]
	if err := cl.do(ctx, call{op: op, method: http.MethodGet, path: "/read-driver"}, &out); err != nil {
		return nil, err
	}
	drivers := make([]delivery.Driver, 0, len(out.Data))
	for _, dto := range out.Data {
		d, err := dto.toDomain()
		if err != nil {
			continue
		}
		drivers = append(drivers, d)
	}
	return drivers, nil
}

func (cl *Client) CreateDriver(ctx context.Context, driver delivery.Driver) (delivery.Driver, error) {
	const op = "create driver"
	return cl.driver(ctx, call{op: op, method: http.MethodPost, path: "/create/driver", body: driverFromDomain(driver)})
}

func (cl *Client) UpdateDriver(ctx context.Context, driver delivery.Driver) (delivery.Driver, error) {
	const op = "update driver"
	p, err := path(op, "/update/driver/%s", param{"id", driver.ID()})
	if err != nil {
		return delivery.Driver{}, err
	}
	return cl.driver(ctx, call{op: op, method: http.MethodPut, path: p, body: driverFromDomain(driver)})
}

func (cl *Client) driver(ctx context.Context, c call) (delivery.Driver, error) {
	var out envelope[driverDTO]
	if err := cl.do(ctx, c, &out); err != nil {
		return delivery.Driver{}, err
	}
	d, err := out.Data.toDomain()
	if err != nil {
		return delivery.Driver{}, invalidRecord(c.op, err)
	}
	return d, nil
}
