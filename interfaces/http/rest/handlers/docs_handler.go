package handlers

import (
	"net/http"

	"github.com/swaggo/swag"
	"go.uber.org/zap"

	"fartgen-backend/pkg/common"
)

// DocsHandler serves the API documentation surface: the raw OpenAPI
// document plus interactive Swagger UI and ReDoc viewers for it.
type DocsHandler struct {
	logger *zap.Logger
}

// NewDocsHandler creates a new docs handler
func NewDocsHandler(logger *zap.Logger) *DocsHandler {
	return &DocsHandler{logger: logger}
}

// OpenAPI handles GET /api/openapi.json
func (h *DocsHandler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		h.logger.Error("Failed to read API document", zap.Error(err))
		common.RespondError(w, http.StatusInternalServerError,
			common.StandardErrorCodes.InternalError, "API document unavailable")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}

// SwaggerUI handles GET /api/docs
func (h *DocsHandler) SwaggerUI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(swaggerUIPage))
}

// ReDoc handles GET /api/redoc
func (h *DocsHandler) ReDoc(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(redocPage))
}

const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Fart Generator API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      SwaggerUIBundle({
        url: "/api/openapi.json",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const redocPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Fart Generator API</title>
  <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
  <redoc spec-url="/api/openapi.json"></redoc>
  <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>`
