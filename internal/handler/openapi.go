package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/deppfellow/storefront-api/internal/server"
	"github.com/labstack/echo/v4"
)

// OpenAPIDir holds openapi.html and openapi.json, relative to the working directory.
const OpenAPIDir = "static"

// OpenAPIHandler serves the API docs UI. The page loads the renderer from a
// CDN and reads /static/openapi.json.
type OpenAPIHandler struct {
	Handler
	dir string
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		dir:     OpenAPIDir,
	}
}

// ServeOpenAPIUI serves openapi.html uncached, so doc updates show up immediately.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templateBytes, err := os.ReadFile(h.dir + "/openapi.html")

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
