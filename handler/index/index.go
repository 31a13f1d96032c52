package index

import (
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed index.html
var templateFS embed.FS

var page = template.Must(template.ParseFS(templateFS, "index.html"))

// IndexHandler serves the search form.
type IndexHandler struct {
	log *zap.SugaredLogger
}

func (*IndexHandler) Pattern() string {
	return "/"
}

// NewIndexHandler builds a new IndexHandler.
func NewIndexHandler(log *zap.SugaredLogger) *IndexHandler {
	return &IndexHandler{log: log}
}

func (h *IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, nil); err != nil {
		h.log.Errorw("Render failed", "error", err)
	}
}
