package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/dealer-kpi-api/internal/usecases/dashboarding"
	"github.com/vfg2006/dealer-kpi-api/pkg/log"
)

// HealthcheckHandler responde 200 com a base carregada e 503 antes da primeira carga
func HealthcheckHandler(source dashboarding.DatasetSource) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary := datasetSummary(source)
		status := "ok"
		if loaded, _ := summary["loaded"].(bool); !loaded {
			status = "starting"
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		writeJSON(w, logger, "healthcheck", map[string]any{
			"status":  status,
			"time":    time.Now().Format(time.RFC3339),
			"dataset": summary,
		})
	})
}
