// Package services provides the domain services of the fulfillment pipeline.
// They hold no state and do no I/O.
//
// The package includes:
//   - StatusStateMachine: legal statuses and transitions per pipeline stage
//   - PackageAggregator: totals, dimension summaries and table rows over package details
//   - BarcodePayloadEncoder: the pipe-delimited text encoded into label barcodes
package services
