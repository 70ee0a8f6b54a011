// Package kernel holds the value objects shared by every stage of the
// fulfillment pipeline.
//
//   - OrderID: the business key every record carries. All joins between order,
//     production, package and delivery records go through it, never through a
//     storage identifier.
//   - Value: an optional numeric leaf (dimension, weight, price) that remembers
//     whether the collaborator actually sent it.
//   - UUID: identifier for records this service issues itself (archived documents).
package kernel
