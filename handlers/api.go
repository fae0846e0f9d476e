package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/JavCast03/proyectoGSASD/models"
	"github.com/JavCast03/proyectoGSASD/utils"
)

type taskListResponse struct {
	UseDB bool          `json:"useDb"`
	Count int           `json:"count"`
	Tasks []models.Task `json:"tareas"`
}

type createTaskRequest struct {
	Text string `json:"texto"`
}

type apiError struct {
	Error string `json:"error"`
}

// APIListTasks is the JSON twin of Home, scoped to the session user.
func (app *App) APIListTasks(w http.ResponseWriter, r *http.Request) {
	sess := app.currentSession(r)
	if sess == nil {
		writeJSON(w, http.StatusUnauthorized, apiError{Error: "No autorizado"})
		return
	}

	tasks, err := app.Tasks.List(r.Context(), sess.UserID)
	if err != nil {
		log.Println("error retrieving tasks for user", sess.UserID, ":", err)
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "Error interno"})
		return
	}

	writeJSON(w, http.StatusOK, taskListResponse{
		UseDB: app.UseDB,
		Count: len(tasks),
		Tasks: tasks,
	})
}

func (app *App) APICreateTask(w http.ResponseWriter, r *http.Request) {
	sess := app.currentSession(r)
	if sess == nil {
		writeJSON(w, http.StatusUnauthorized, apiError{Error: "No autorizado"})
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "Texto requerido"})
		return
	}

	text := strings.TrimSpace(req.Text)
	if err := utils.ValidateTaskText(text); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "Texto requerido"})
		return
	}

	task, err := app.Tasks.Create(r.Context(), sess.UserID, text)
	if err != nil {
		log.Println("error creating task:", err)
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "Error interno"})
		return
	}
	writeJSON(w, http.StatusCreated, task)
}
