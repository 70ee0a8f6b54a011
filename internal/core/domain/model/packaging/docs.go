// Package packaging models the packaging stage: package records tied to an
// order by business key, the physical package details they carry, the
// aggregate figures derived from them, and the draft an operator fills in
// before packages are submitted.
//
// State transitions:
//
//	Pending ──> Completed ──> Delivered
//	   │            │
//	   └──> Cancelled <──┘
//
// Delivered and Cancelled are terminal. The wire value "delivery" is read as
// Delivered for compatibility with older records and is never written.
package packaging
