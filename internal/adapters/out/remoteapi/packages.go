package remoteapi

import (
	"context"
	"net/http"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packaging"
)

type packageDetailDTO struct {
	ID     text   `json:"_id,omitempty"`
	Length number `json:"length"`
	Width  number `json:"width"`
	Height number `json:"height"`
	Weight number `json:"weight"`
}

func (d packageDetailDTO) toDomain() packaging.Detail {
	return packaging.RestoreDetail(d.ID.String(), d.Length.value, d.Width.value, d.Height.value, d.Weight.value)
}

func packageDetailFromDomain(d packaging.Detail) packageDetailDTO {
	return packageDetailDTO{
		ID:     text(d.ID()),
		Length: numberOf(d.Length()),
		Width:  numberOf(d.Width()),
		Height: numberOf(d.Height()),
		Weight: numberOf(d.Weight()),
	}
}

type packageDTO struct {
	ID             text               `json:"_id"`
	OrderID        text               `json:"order_id"`
	OrderIDCamel   text               `json:"orderId"`
	PackageDetails []packageDetailDTO `json:"package_details"`
	Status         text               `json:"status"`
}

func (d packageDTO) toDomain() (packaging.Record, error) {
	orderID, err := kernel.NewOrderID(first(d.OrderID, d.OrderIDCamel))
	if err != nil {
		return packaging.Record{}, err
	}
	status, err := parseStatus(d.Status, packaging.Pending, packaging.ParseStatus)
	if err != nil {
		return packaging.Record{}, err
	}
	details := make([]packaging.Detail, 0, len(d.PackageDetails))
	for _, pd := range d.PackageDetails {
		details = append(details, pd.toDomain())
	}
	return packaging.NewRecord(d.ID.String(), orderID, status, details)
}

type createPackagesRequest struct {
	OrderID        string             `json:"order_id"`
	PackageDetails []packageDetailDTO `json:"package_details"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func (cl *Client) ListPackages(ctx context.Context, orderID kernel.OrderID) ([]packaging.Record, error) {
	const op = "list packages"
	p, err := path(op, "/packages/order/%s", param{"orderId", orderID.String()})
	if err != nil {
		return nil, err
	}

	var out envelope[[]packageDTO]
	if err := cl.do(ctx, call{op: op, method: http.MethodGet, path: p}, &out); err != nil {
		return nil, err
	}
	records := make([]packaging.Record, 0, len(out.Data))
	for _, dto := range out.Data {
		r, err := dto.toDomain()
		if err != nil {
			return nil, invalidRecord(op, err)
		}
		records = append(records, r)
	}
	return records, nil
}

func (cl *Client) CreatePackages(
	ctx context.Context,
	orderID kernel.OrderID,
	details []packaging.Detail,
) (packaging.Record, error) {
	const op = "create packages"
	body := createPackagesRequest{
		OrderID:        orderID.String(),
		PackageDetails: make([]packageDetailDTO, 0, len(details)),
	}
	for _, d := range details {
		body.PackageDetails = append(body.PackageDetails, packageDetailFromDomain(d))
	}
	return cl.packageRecord(ctx, call{op: op, method: http.MethodPost, path: "/packages", body: body})
}

func (cl *Client) AddPackageDetail(
	ctx context.Context,
	orderID kernel.OrderID,
	detail packaging.Detail,
) (packaging.Record, error) {
	const op = "add package detail"
	p, err := path(op, "/packages/order/%s/details", param{"orderId", orderID.String()})
	if err != nil {
		return packaging.Record{}, err
	}
	body := packageDetailFromDomain(detail)
	return cl.packageRecord(ctx, call{op: op, method: http.MethodPost, path: p, body: body})
}

func (cl *Client) UpdatePackageDetail(
	ctx context.Context,
	orderID kernel.OrderID,
	detailID string,
	detail packaging.Detail,
) (packaging.Record, error) {
	const op = "update package detail"
	p, err := path(op, "/packages/order/%s/details/%s",
		param{"orderId", orderID.String()}, param{"detailId", detailID})
	if err != nil {
		return packaging.Record{}, err
	}
	body := packageDetailFromDomain(detail)
	return cl.packageRecord(ctx, call{op: op, method: http.MethodPut, path: p, body: body})
}

func (cl *Client) UpdatePackageStatus(
	ctx context.Context,
	recordID string,
	status packaging.Status,
) (packaging.Record, error) {
	const op = "update package status"
	p, err := path(op, "/packages/status/%s", param{"id", recordID})
	if err != nil {
		return packaging.Record{}, err
	}
	body := statusRequest{Status: status.String()}
	return cl.packageRecord(ctx, call{op: op, method: http.MethodPut, path: p, body: body})
}

func (cl *Client) packageRecord(ctx context.Context, c call) (packaging.Record, error) {
	var out envelope[packageDTO]
	if err := cl.do(ctx, c, &out); err != nil {
		return packaging.Record{}, err
	}
	r, err := out.Data.toDomain()
	if err != nil {
		return packaging.Record{}, invalidRecord(c.op, err)
	}
	return r, nil
}
