package services

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/core/domain/model/production"
	"fulfillment/internal/pkg/errs"
)

// TransitionMetadata is the operator input that accompanies a transition.
// Production completion requires both fields.
type TransitionMetadata struct {
	Unit   string
	Remark string
}

// stageStatus is implemented by the status type of every stage.
type stageStatus[S any] interface {
	comparable
	fmt.Stringer
	CanTransitionTo(to S) bool
	IsTerminal() bool
	Next() []S
}

// StatusStateMachine is the authority on legal statuses and transitions.
// Statuses are exchanged as wire strings; each stage parses them into its own
// status type so values of different stages are never compared.
//
// A request is checked in this order:
//   - the stage and both statuses must parse (ValidationError)
//   - the current status must not be terminal (InvalidStageError)
//   - the target must differ from the current status (ValidationError)
//   - the pair must be an edge of the stage (ValidationError)
//   - production completion must carry a unit and a remark (ValidationError)
//
// Example:
//
//	sm := services.NewStatusStateMachine()
//	err := sm.ValidateTransition(services.ProductionStage, "in_progress", "completed",
//	    services.TransitionMetadata{Unit: "U2", Remark: "order move to completed"})
type StatusStateMachine struct{}

func NewStatusStateMachine() StatusStateMachine {
	return StatusStateMachine{}
}

// CanTransition reports whether from -> to is an edge of stage. Unknown
// stages and statuses yield false.
func (m StatusStateMachine) CanTransition(stage, from, to string) bool {
	s, err := ParseStage(stage)
	if err != nil {
		return false
	}
	switch s {
	case ProductionStage:
		return canTransition(production.ParseStatus, from, to)
	case PackagingStage:
		return canTransition(packaging.ParseStatus, from, to)
	case DeliveryStage:
		return canTransition(delivery.ParseStatus, from, to)
	case UnknownStage:
	}
	return false
}

// ValidateTransition checks a transition request before it is sent anywhere.
func (m StatusStateMachine) ValidateTransition(stage Stage, from, to string, meta TransitionMetadata) error {
	switch stage {
	case ProductionStage:
		_, target, err := validateEdge(stage, production.ParseStatus, from, to)
		if err != nil {
			return err
		}
		if target == production.Completed {
			return validateCompletion(meta)
		}
		return nil
	case PackagingStage:
		_, _, err := validateEdge(stage, packaging.ParseStatus, from, to)
		return err
	case DeliveryStage:
		_, _, err := validateEdge(stage, delivery.ParseStatus, from, to)
		return err
	case UnknownStage:
	}
	return errs.NewValidationError(fmt.Sprintf("unknown stage %q", stage.String()))
}

// ValidateMoveToPackaging allows the hand-over only from Completed.
func (m StatusStateMachine) ValidateMoveToPackaging(current production.Status) error {
	if !current.CanMoveToPackaging() {
		return errs.NewInvalidStageError(ProductionStage.String(), "move to packaging", current.String())
	}
	return nil
}

// NextStatuses lists the wire values reachable from from in one step. It is
// empty for terminal or unparseable statuses.
func (m StatusStateMachine) NextStatuses(stage Stage, from string) []string {
	switch stage {
	case ProductionStage:
		return nextStatuses(production.ParseStatus, from)
	case PackagingStage:
		return nextStatuses(packaging.ParseStatus, from)
	case DeliveryStage:
		return nextStatuses(delivery.ParseStatus, from)
	case UnknownStage:
	}
	return nil
}

func canTransition[S stageStatus[S]](parse func(string) (S, error), from, to string) bool {
	f, err := parse(from)
	if err != nil {
		return false
	}
	t, err := parse(to)
	if err != nil {
		return false
	}
	return f.CanTransitionTo(t)
}

func validateEdge[S stageStatus[S]](stage Stage, parse func(string) (S, error), from, to string) (S, S, error) {
	var zero S

	current, err := parse(from)
	if err != nil {
		return zero, zero, errs.NewValidationErrorWithCause(
			fmt.Sprintf("current %s status is invalid", stage), err)
	}
	// A terminal record rejects every request, whatever the target.
	if current.IsTerminal() {
		return zero, zero, errs.NewInvalidStageError(stage.String(), "transition to "+strings.TrimSpace(to), current.String())
	}
	target, err := parse(to)
	if err != nil {
		return zero, zero, errs.NewValidationErrorWithCause(
			fmt.Sprintf("target %s status is invalid", stage), err)
	}

	if current == target {
		return zero, zero, errs.NewValidationError(
			fmt.Sprintf("%s status is already %s", stage, current))
	}
	if !current.CanTransitionTo(target) {
		return zero, zero, errs.NewValidationError(
			fmt.Sprintf("%s status cannot move from %s to %s", stage, current, target))
	}
	return current, target, nil
}

func validateCompletion(meta TransitionMetadata) error {
	var missing []error
	if strings.TrimSpace(meta.Unit) == "" {
		missing = append(missing, errs.NewValueIsRequiredError("unit"))
	}
	if strings.TrimSpace(meta.Remark) == "" {
		missing = append(missing, errs.NewValueIsRequiredError("remark"))
	}
	if err := errors.Join(missing...); err != nil {
		return errs.NewValidationErrorWithCause("production completion needs a unit and a remark", err)
	}
	return nil
}

func nextStatuses[S stageStatus[S]](parse func(string) (S, error), from string) []string {
	current, err := parse(from)
	if err != nil {
		return nil
	}
	var next []string
	for _, s := range current.Next() {
		next = append(next, s.String())
	}
	return next
}
