package handle

import (
	"encoding/json"
	"log"
	"net/http"

	"prof-bot/api/internal/router"
)

// --- ROUTE -------------------------------------------------------------------

type routeReq struct {
	Message     string              `json:"message"`
	UserProfile *router.UserProfile `json:"user_profile,omitempty"`
}

func (h *Handle) Route(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req routeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}

	out, err := router.RoutePrompt(router.RouterInput{
		Message:     req.Message,
		UserProfile: req.UserProfile,
	})
	if err != nil {
		// contract violation: a pipeline defect, never a user condition
		log.Printf("route: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":      "internal validation error",
			"reasonCode": router.ReasonInternalValidationErr,
		})
		return
	}

	if h.decisions != nil {
		if err := h.decisions.Insert(r.Context(), 0, req.Message, out); err != nil {
			log.Printf("decision log: %v", err)
		}
	}
	writeJSON(w, http.StatusOK, out)
}
