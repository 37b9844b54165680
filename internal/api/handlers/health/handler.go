package health

import (
	"net/http"

	"github.com/schwarztim/CSC425/internal/api/handlers"
)

// StatusResponse тело ответа health-check
type StatusResponse struct {
	Status string `json:"status"`
}

// Handler обработчик health-check
type Handler struct{}

// NewHandler создает обработчик health-check
func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{Status: "UP"})
}
