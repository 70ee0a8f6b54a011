package document

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrRecordIsNotConstructed = errors.New("document Record must be created via NewRecord constructor")

// Record is an archived issuance. The document bytes are not kept: a reprint
// recomposes from current data.
type Record struct {
	id             kernel.UUID
	orderID        kernel.OrderID
	kind           Kind
	filename       string
	checksum       string
	barcodePayload string
	pages          int
	issuedAt       time.Time

	isConstructed bool
}

// NewRecord issues a new archive id for h.
func NewRecord(orderID kernel.OrderID, kind Kind, h Handle, barcodePayload string, issuedAt time.Time) (*Record, error) {
	return RestoreRecord(kernel.NewUUID(), orderID, kind, h.Filename, h.Checksum, barcodePayload, h.Pages, issuedAt)
}

func RestoreRecord(
	id kernel.UUID,
	orderID kernel.OrderID,
	kind Kind,
	filename string,
	checksum string,
	barcodePayload string,
	pages int,
	issuedAt time.Time,
) (*Record, error) {
	var validationErrors []error
	if err := id.Validate(); err != nil {
		validationErrors = append(validationErrors, err)
	}
	if err := orderID.Validate(); err != nil {
		validationErrors = append(validationErrors, err)
	}
	if err := kind.Validate(); err != nil {
		validationErrors = append(validationErrors, err)
	}
	if strings.TrimSpace(filename) == "" {
		validationErrors = append(validationErrors, errs.NewValueIsRequiredError("filename"))
	}
	if pages < 1 {
		validationErrors = append(validationErrors, errs.NewValueIsOutOfRangeError("pages", pages, 1, "unbounded"))
	}
	if err := errors.Join(validationErrors...); err != nil {
		return nil, err
	}

	return &Record{
		id:             id,
		orderID:        orderID,
		kind:           kind,
		filename:       filename,
		checksum:       checksum,
		barcodePayload: barcodePayload,
		pages:          pages,
		issuedAt:       issuedAt.UTC(),
		isConstructed:  true,
	}, nil
}

func (r *Record) ID() kernel.UUID { return r.id }
func (r *Record) OrderID() kernel.OrderID { return r.orderID }
func (r *Record) Kind() Kind { return r.kind }
func (r *Record) Filename() string { return r.filename }
func (r *Record) Checksum() string { return r.checksum }
func (r *Record) BarcodePayload() string { return r.barcodePayload }
func (r *Record) Pages() int { return r.pages }
func (r *Record) IssuedAt() time.Time { return r.issuedAt }

// IsReprintedBy reports whether next issues the same file as r with the same
// barcode payload, meaning the order and package data did not change.
func (r *Record) IsReprintedBy(next *Record) bool {
	return r.orderID == next.orderID &&
		r.kind == next.kind &&
		r.filename == next.filename &&
		r.barcodePayload == next.barcodePayload
}

func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}
