package hc

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pandodao/watch-wallet/core"
)

func Handler(version string, properties core.PropertyStore) http.Handler {
	t := time.Now()
	fn := func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"version": version,
			"uptime":  time.Since(t).String(),
		}

		var status core.ProviderStatus
		if err := properties.Get(r.Context(), core.PropertyProviderStatus, &status); err == nil && !status.CheckedAt.IsZero() {
			resp["provider"] = status
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}

	return http.HandlerFunc(fn)
}
