// Package delivery models the delivery stage: the delivery record of an order,
// the drivers that can be assigned to it, and the form draft an operator
// confirms before the record is updated.
//
// Pending, InTransit and Cancelled may be set to one another freely, since
// they follow data entry rather than a workflow. Any of them may become
// Delivered, which is absorbing: a delivered record accepts no further edit.
package delivery
