package delivery

import (
	"errors"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Driver is the collaborator's driver lookup entry, keyed in practice by
// vehicle number.
type Driver struct {
	id            string
	name          string
	contact       string
	vehicleNumber string
}

// NewDriver requires a vehicle number; id is empty for drivers that have not
// been created yet.
func NewDriver(id, name, contact, vehicleNumber string) (Driver, error) {
	d := Driver{
		id:            id,
		name:          strings.TrimSpace(name),
		contact:       strings.TrimSpace(contact),
		vehicleNumber: strings.TrimSpace(vehicleNumber),
	}
	var validationErrors []error
	if d.vehicleNumber == "" {
		validationErrors = append(validationErrors, errs.NewValueIsRequiredError("vehicle number"))
	}
	if d.name == "" {
		validationErrors = append(validationErrors, errs.NewValueIsRequiredError("driver name"))
	}
	if err := errors.Join(validationErrors...); err != nil {
		return Driver{}, err
	}
	return d, nil
}

func (d Driver) ID() string { return d.id }
func (d Driver) Name() string { return d.name }
func (d Driver) Contact() string { return d.contact }
func (d Driver) VehicleNumber() string { return d.vehicleNumber }

// MatchesVehicle compares vehicle numbers case-insensitively.
func (d Driver) MatchesVehicle(vehicleNumber string) bool {
	return d.vehicleNumber != "" && strings.EqualFold(d.vehicleNumber, strings.TrimSpace(vehicleNumber))
}

// WithContact returns a copy carrying the new name and contact.
func (d Driver) WithContact(name, contact string) Driver {
	next := d
	next.name = strings.TrimSpace(name)
	next.contact = strings.TrimSpace(contact)
	return next
}

// FindByVehicle returns the first driver whose vehicle matches.
func FindByVehicle(drivers []Driver, vehicleNumber string) (Driver, bool) {
	for _, d := range drivers {
		if d.MatchesVehicle(vehicleNumber) {
			return d, true
		}
	}
	return Driver{}, false
}
