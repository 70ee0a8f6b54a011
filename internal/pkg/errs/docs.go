// Package errs provides the error types shared by the fulfillment service.
//
// Two families live here:
//   - value errors (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError,
//     ObjectNotFoundError) raised by constructors and repositories;
//   - pipeline errors (ValidationError, InvalidStageError, RemoteError, CompositionError)
//     that classify a failed user action so the HTTP layer can report it.
//
// Each type follows the same shape: a sentinel error variable, a struct carrying the
// details, constructors with and without a cause, Error() and Unwrap(). Callers match
// on the sentinel with errors.Is and on the struct with errors.As.
package errs
