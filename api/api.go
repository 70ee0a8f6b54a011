// Package api holds the OpenAPI contract of the fulfillment HTTP surface.
// The server types in internal/generated/servers follow this document.
package api

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var contract []byte

// Contract returns the raw YAML document.
func Contract() []byte {
	return contract
}

// Load parses and validates the embedded contract.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(contract)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi contract: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi contract is invalid: %w", err)
	}
	return doc, nil
}

// JSON renders the validated contract as JSON for the swagger UI.
func JSON(ctx context.Context) ([]byte, error) {
	doc, err := Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.MarshalJSON()
}
