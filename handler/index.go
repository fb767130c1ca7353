package handler

import (
	"encoding/json"
	"net/http"
)

// Handler answers the bare root path so a deployment can be checked without
// knowing the API prefix.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := map[string]interface{}{
		"ok":      true,
		"message": "Ansh Apparels Backend is running. Try /api/health",
	}

	json.NewEncoder(w).Encode(response)
}
