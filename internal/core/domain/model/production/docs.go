// Package production models the production stage of the pipeline: one Record
// per order per production line, and the Status vocabulary that stage uses.
//
// State transitions:
//
//	Pending ──> InProgress ──> Completed ──(move to packaging)
//
// There is no skipping and no reverse edge. Cancelled is set by the
// collaborator and has no outgoing edges. "Move to packaging" is an action
// available from Completed, not a status.
package production
