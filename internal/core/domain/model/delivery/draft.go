package delivery

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"fulfillment/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the layout of DeliveryDate in drafts and on the wire.
const DateLayout = "2006-01-02"

// Draft is the delivery form. Every field is required. Drafts are values:
// Reduce returns the next draft and Confirm turns a complete draft into a
// Submission; nothing is sent before that.
type Draft struct {
	VehicleNo     string `json:"vehicleNo" validate:"required"`
	DriverName    string `json:"driverName" validate:"required"`
	DriverContact string `json:"driverContact" validate:"required"`
	DeliveryDate  string `json:"deliveryDate" validate:"required,datetime=2006-01-02"`
	Status        string `json:"status" validate:"required,oneof=pending in_transit cancelled delivered"`
}

// NewDraftFromRecord pre-fills the form from the current record.
func NewDraftFromRecord(r Record) Draft {
	a := r.Assignment()
	d := Draft{
		VehicleNo:     a.VehicleNo,
		DriverName:    a.DriverName,
		DriverContact: a.DriverContact,
		Status:        r.Status().String(),
	}
	if !a.DeliveryDate.IsZero() {
		d.DeliveryDate = a.DeliveryDate.Format(DateLayout)
	}
	return d
}

// DraftField names a form field.
type DraftField string

const (
	FieldVehicleNo     DraftField = "vehicleNo"
	FieldDriverName    DraftField = "driverName"
	FieldDriverContact DraftField = "driverContact"
	FieldDeliveryDate  DraftField = "deliveryDate"
	FieldStatus        DraftField = "status"
)

// Action is a single edit applied by Reduce.
type Action interface {
	apply(d Draft) (Draft, error)
}

// SetField edits one form field.
type SetField struct {
	Field DraftField
	Value string
}

// SelectDriver fills vehicle, name and contact from a known driver, the way
// picking a vehicle number from the lookup does.
type SelectDriver struct {
	Driver Driver
}

// Reduce applies a to d. d itself is never modified.
func Reduce(d Draft, a Action) (Draft, error) {
	if a == nil {
		return d, errs.NewValueIsRequiredError("action")
	}
	return a.apply(d)
}

func (a SetField) apply(d Draft) (Draft, error) {
	switch a.Field {
	case FieldVehicleNo:
		d.VehicleNo = a.Value
	case FieldDriverName:
		d.DriverName = a.Value
	case FieldDriverContact:
		d.DriverContact = a.Value
	case FieldDeliveryDate:
		d.DeliveryDate = a.Value
	case FieldStatus:
		d.Status = a.Value
	default:
		return d, errs.NewValueIsInvalidErrorWithCause("field", fmt.Errorf("%q is not a delivery field", a.Field))
	}
	return d, nil
}

func (a SelectDriver) apply(d Draft) (Draft, error) {
	d.VehicleNo = a.Driver.VehicleNumber()
	d.DriverName = a.Driver.Name()
	d.DriverContact = a.Driver.Contact()
	return d, nil
}

// Submission is a confirmed draft, ready to be persisted.
type Submission struct {
	Assignment Assignment
	Status     Status
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func draftValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Confirm trims every field and validates the draft. All field failures are
// reported together as one ValidationError.
func (d Draft) Confirm() (Submission, error) {
	trimmed := Draft{
		VehicleNo:     strings.TrimSpace(d.VehicleNo),
		DriverName:    strings.TrimSpace(d.DriverName),
		DriverContact: strings.TrimSpace(d.DriverContact),
		DeliveryDate:  strings.TrimSpace(d.DeliveryDate),
		Status:        strings.ToLower(strings.TrimSpace(d.Status)),
	}

	if err := draftValidator().Struct(trimmed); err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return Submission{}, errs.NewValidationErrorWithCause("delivery form is invalid", err)
		}
		causes := make([]error, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			causes = append(causes, fieldMessage(fe))
		}
		return Submission{}, errs.NewValidationErrorWithCause("delivery form is incomplete", errors.Join(causes...))
	}

	date, err := time.Parse(DateLayout, trimmed.DeliveryDate)
	if err != nil {
		return Submission{}, errs.NewValidationErrorWithCause("delivery date is invalid", err)
	}
	status, err := ParseStatus(trimmed.Status)
	if err != nil {
		return Submission{}, errs.NewValidationErrorWithCause("delivery status is invalid", err)
	}

	return Submission{
		Assignment: Assignment{
			VehicleNo:     trimmed.VehicleNo,
			DriverName:    trimmed.DriverName,
			DriverContact: trimmed.DriverContact,
			DeliveryDate:  date,
		},
		Status: status,
	}, nil
}

func fieldMessage(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fe.Field())
	case "datetime":
		return fmt.Errorf("%s must be a date formatted as %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Errorf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Errorf("%s is invalid", fe.Field())
	}
}
