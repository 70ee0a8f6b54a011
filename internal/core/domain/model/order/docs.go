// Package order models a sales order as the collaborator reports it: the
// customer, the job, the commercial figures and the bag specification that
// production works from.
//
// Orders are read-only inside this service. They are fetched by business key
// (kernel.OrderID) and joined to the production, packaging and delivery
// stages by that key, never by the collaborator's storage identifier.
package order
