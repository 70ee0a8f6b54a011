package services

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Stage is a phase of the fulfillment pipeline with its own status vocabulary.
type Stage int

const (
	UnknownStage Stage = iota
	ProductionStage
	PackagingStage
	DeliveryStage
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		UnknownStage:    "unknown",
		ProductionStage: "production",
		PackagingStage:  "packaging",
		DeliveryStage:   "delivery",
	}
}

// Stages returns the stages in pipeline order.
func Stages() []Stage {
	return []Stage{ProductionStage, PackagingStage, DeliveryStage}
}

func ParseStage(value string) (Stage, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, s := range Stages() {
		if getStageStrings()[s] == v {
			return s, nil
		}
	}
	return UnknownStage, errs.NewValidationErrorWithCause(
		"unknown stage",
		fmt.Errorf("%q is not a pipeline stage", value),
	)
}

func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "unknown"
}
