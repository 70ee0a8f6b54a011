// Package docs registers the API contract with swag so echo-swagger can
// serve it under /swagger/doc.json.
package docs

import (
	"context"

	"fulfillment/api"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Fulfillment API",
	Description:      "Order fulfillment pipeline.",
	InfoInstanceName: "swagger",
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

// Register loads the embedded contract and registers it under the default
// swag instance.
func Register(ctx context.Context) error {
	doc, err := api.JSON(ctx)
	if err != nil {
		return err
	}
	SwaggerInfo.SwaggerTemplate = string(doc)
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
	return nil
}
