package health

import (
	"encoding/json"
	"net/http"

	"github.com/mager/coverscope/config"
	"go.uber.org/zap"
)

// HealthHandler reports liveness and whether the YouTube key is configured.
type HealthHandler struct {
	log *zap.SugaredLogger
	cfg config.Config
}

func (*HealthHandler) Pattern() string {
	return "/health"
}

// NewHealthHandler builds a new HealthHandler.
func NewHealthHandler(log *zap.SugaredLogger, cfg config.Config) *HealthHandler {
	return &HealthHandler{
		log: log,
		cfg: cfg,
	}
}

type Response struct {
	Server  bool `json:"server"`
	Youtube bool `json:"youtube"`
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var resp Response

	h.log.Info("health check")

	resp.Server = true
	resp.Youtube = h.cfg.YoutubeApiKey != ""

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
