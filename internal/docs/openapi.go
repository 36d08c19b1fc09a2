// Package docs builds the OpenAPI description of the sales-agent API and
// serves it with Swagger UI and ReDoc viewers.
package docs

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/jonesrussell/north-cloud/sales-agent/internal/handler"
)

// Documentation routes.
const (
	OpenAPIPath = "/openapi.json"
	SwaggerPath = handler.DocsPath
	RedocPath   = "/redoc"
)

const openAPIVersion = "3.0.3"

// Info is the metadata placed in the document's info object.
type Info struct {
	Title       string
	Version     string
	Description string
}

// NewDocument describes the public operations and validates the result.
func NewDocument(ctx context.Context, info Info) (*openapi3.T, error) {
	doc := &openapi3.T{
		OpenAPI: openAPIVersion,
		Info: &openapi3.Info{
			Title:       info.Title,
			Version:     info.Version,
			Description: info.Description,
		},
		Tags: openapi3.Tags{
			&openapi3.Tag{Name: "api", Description: "Versioned API surface"},
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath("/", getItem(
				"root", "Root", nil,
				"Greeting, application version and docs location",
				objectSchema(map[string]*openapi3.Schema{
					"message": openapi3.NewStringSchema().WithDefault(handler.Message),
					"version": openapi3.NewStringSchema(),
					"docs":    openapi3.NewStringSchema().WithDefault(handler.DocsPath),
				}),
			)),
			openapi3.WithPath("/health", getItem(
				"health_check", "Health Check", nil,
				"Liveness status with application version and environment",
				objectSchema(map[string]*openapi3.Schema{
					"status":      openapi3.NewStringSchema().WithEnum(handler.StatusHealthy),
					"version":     openapi3.NewStringSchema(),
					"environment": openapi3.NewStringSchema(),
				}),
			)),
			openapi3.WithPath("/api/", getItem(
				"api_root", "Api Root", []string{"api"},
				"API greeting and API version",
				objectSchema(map[string]*openapi3.Schema{
					"message": openapi3.NewStringSchema().WithDefault(handler.Message),
					"version": openapi3.NewStringSchema().WithDefault(handler.APIVersion),
				}),
			)),
		),
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

func getItem(operationID, summary string, tags []string, description string, schema *openapi3.Schema) *openapi3.PathItem {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     summary,
		Tags:        tags,
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
				Value: openapi3.NewResponse().
					WithDescription(description).
					WithJSONSchema(schema),
			}),
		),
	}
	return &openapi3.PathItem{Get: op}
}

func objectSchema(props map[string]*openapi3.Schema) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	for name, prop := range props {
		schema.WithProperty(name, prop)
	}
	schema.Required = slices.Sorted(maps.Keys(props))
	return schema
}
