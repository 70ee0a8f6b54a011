package errs

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrInvalidStage = errors.New("invalid stage")
	ErrRemote       = errors.New("remote call failed")
	ErrComposition  = errors.New("document composition failed")
)

// RemoteFallbackMessage is reported when the collaborator gave no message of its own.
const RemoteFallbackMessage = "the order service is unavailable, refresh and try again"

// ValidationError is a local precondition failure. It is raised before any
// remote call is attempted.
type ValidationError struct {
	Reason string
	Cause  error
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func NewValidationErrorWithCause(reason string, cause error) *ValidationError {
	return &ValidationError{Reason: reason, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValidation, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrValidation, e.Cause}
	}
	return []error{ErrValidation}
}

// InvalidStageError reports an action requested while the record is not in
// the stage or status the action requires.
type InvalidStageError struct {
	Stage   string
	Action  string
	Current string
}

func NewInvalidStageError(stage, action, current string) *InvalidStageError {
	return &InvalidStageError{Stage: stage, Action: action, Current: current}
}

func (e *InvalidStageError) Error() string {
	return fmt.Sprintf("%s: %s is not allowed while %s status is %s", ErrInvalidStage, e.Action, e.Stage, e.Current)
}

func (e *InvalidStageError) Unwrap() error {
	return ErrInvalidStage
}

// RemoteError wraps a failed call to the order service. Message is the
// collaborator's own message when it sent one. Remote errors are always
// recoverable: the caller re-fetches and may retry.
type RemoteError struct {
	Operation  string
	StatusCode int
	Message    string
	Cause      error
}

func NewRemoteError(operation string, statusCode int, message string) *RemoteError {
	if message == "" {
		message = RemoteFallbackMessage
	}
	return &RemoteError{Operation: operation, StatusCode: statusCode, Message: message}
}

func NewRemoteErrorWithCause(operation string, cause error) *RemoteError {
	return &RemoteError{Operation: operation, Message: RemoteFallbackMessage, Cause: cause}
}

func (e *RemoteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s (cause: %v)", ErrRemote, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", ErrRemote, e.Operation, e.Message)
}

func (e *RemoteError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrRemote, e.Cause}
	}
	return []error{ErrRemote}
}

// Retryable reports that the action may be retried after a re-fetch.
func (e *RemoteError) Retryable() bool {
	return true
}

// CompositionError aborts a single document generation.
type CompositionError struct {
	Document string
	Reason   string
	Cause    error
}

func NewCompositionError(document, reason string) *CompositionError {
	return &CompositionError{Document: document, Reason: reason}
}

func NewCompositionErrorWithCause(document, reason string, cause error) *CompositionError {
	return &CompositionError{Document: document, Reason: reason, Cause: cause}
}

func (e *CompositionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s (cause: %v)", ErrComposition, e.Document, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", ErrComposition, e.Document, e.Reason)
}

func (e *CompositionError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrComposition, e.Cause}
	}
	return []error{ErrComposition}
}

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
func IsInvalidStage(err error) bool { return errors.Is(err, ErrInvalidStage) }
func IsRemote(err error) bool { return errors.Is(err, ErrRemote) }
func IsComposition(err error) bool { return errors.Is(err, ErrComposition) }
