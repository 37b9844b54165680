package index

import (
	"html/template"
	"net/http"

	"github.com/schwarztim/CSC425/internal/web/assets"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Handler обработчик главной страницы
type Handler struct {
	tmpl   *template.Template
	logger Logger
}

// NewHandler создает обработчик главной страницы с встроенным шаблоном
func NewHandler(logger Logger) (*Handler, error) {
	tmpl, err := template.ParseFS(assets.Templates, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &Handler{tmpl: tmpl, logger: logger}, nil
}

// Handle GET /
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, nil); err != nil {
		h.logger.Error("GET / - Failed to render index: %v", err)
	}
}
