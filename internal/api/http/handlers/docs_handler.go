package handlers

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
)

//go:embed openapi.yaml
var openapiSpec []byte

const swaggerPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Storefront Service API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => {
      SwaggerUIBundle({
        url: "/api-docs/openapi.yaml",
        dom_id: "#swagger-ui",
      });
    };
  </script>
</body>
</html>`

// DocsHandler serves the interactive API documentation.
type DocsHandler struct{}

// NewDocsHandler returns a new handler instance.
func NewDocsHandler() *DocsHandler {
	return &DocsHandler{}
}

// UI handles GET /api-docs.
func (h *DocsHandler) UI(c *fiber.Ctx) error {
	c.Type("html")
	return c.SendString(swaggerPage)
}

// Schema handles GET /api-docs/openapi.yaml.
func (h *DocsHandler) Schema(c *fiber.Ctx) error {
	c.Type("yaml")
	return c.Send(openapiSpec)
}
