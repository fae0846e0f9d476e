package handlers

import (
	"log"
	"net/http"
)

type healthResponse struct {
	Status      string `json:"status"`
	TotalTareas int    `json:"totalTareas"`
	UseDB       bool   `json:"useDb"`
}

// Health reports the store mode and the global task count. Not gated by a
// session so load balancers can probe it.
func (app *App) Health(w http.ResponseWriter, r *http.Request) {
	count, err := app.Tasks.Count(r.Context())
	if err != nil {
		log.Println("health check store error:", err)
		writeJSON(w, http.StatusInternalServerError, healthResponse{Status: "error", UseDB: app.UseDB})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", TotalTareas: count, UseDB: app.UseDB})
}
