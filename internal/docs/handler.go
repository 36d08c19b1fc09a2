package docs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	swaggerUIVersion = "5"
	redocVersion     = "2"
	htmlContentType  = "text/html; charset=utf-8"
)

var swaggerTemplate = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html>
<head>
<link type="text/css" rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@{{.AssetVersion}}/swagger-ui.css">
<title>{{.Title}} - Swagger UI</title>
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@{{.AssetVersion}}/swagger-ui-bundle.js"></script>
<script>
SwaggerUIBundle({
  url: '{{.SpecURL}}',
  dom_id: '#swagger-ui',
  layout: 'BaseLayout',
  deepLinking: true,
  showExtensions: true,
  showCommonExtensions: true,
  presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
})
</script>
</body>
</html>
`))

var redocTemplate = template.Must(template.New("redoc").Parse(`<!DOCTYPE html>
<html>
<head>
<title>{{.Title}} - ReDoc</title>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body { margin: 0; padding: 0; }</style>
</head>
<body>
<noscript>ReDoc requires Javascript to function. Please enable it to browse the documentation.</noscript>
<redoc spec-url="{{.SpecURL}}"></redoc>
<script src="https://cdn.jsdelivr.net/npm/redoc@{{.AssetVersion}}/bundles/redoc.standalone.js"></script>
</body>
</html>
`))

type page struct {
	Title        string
	SpecURL      string
	AssetVersion string
}

// Handler serves the OpenAPI document and its two HTML viewers. Everything
// is rendered once at construction.
type Handler struct {
	spec    []byte
	swagger []byte
	redoc   []byte
}

// NewHandler builds and renders the documentation for info.
func NewHandler(ctx context.Context, info Info) (*Handler, error) {
	doc, err := NewDocument(ctx, info)
	if err != nil {
		return nil, err
	}

	spec, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}

	swagger, err := render(swaggerTemplate, page{Title: info.Title, SpecURL: OpenAPIPath, AssetVersion: swaggerUIVersion})
	if err != nil {
		return nil, err
	}
	redoc, err := render(redocTemplate, page{Title: info.Title, SpecURL: OpenAPIPath, AssetVersion: redocVersion})
	if err != nil {
		return nil, err
	}

	return &Handler{spec: spec, swagger: swagger, redoc: redoc}, nil
}

// Register mounts the documentation routes.
func (h *Handler) Register(router gin.IRoutes) {
	router.GET(OpenAPIPath, h.OpenAPI)
	router.GET(SwaggerPath, h.SwaggerUI)
	router.GET(RedocPath, h.ReDoc)
}

// OpenAPI serves the JSON document.
func (h *Handler) OpenAPI(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", h.spec)
}

// SwaggerUI serves the Swagger UI page.
func (h *Handler) SwaggerUI(c *gin.Context) {
	c.Data(http.StatusOK, htmlContentType, h.swagger)
}

// ReDoc serves the ReDoc page.
func (h *Handler) ReDoc(c *gin.Context) {
	c.Data(http.StatusOK, htmlContentType, h.redoc)
}

func render(tmpl *template.Template, p page) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("render %s page: %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}
