package handle

import (
	"encoding/json"
	"net/http"

	"prof-bot/api/internal/store"
)

type Handle struct {
	decisions *store.DecisionRepo // optional; nil disables the decision log
}

func New(decisions *store.DecisionRepo) *Handle {
	return &Handle{decisions: decisions}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
