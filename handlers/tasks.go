package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/JavCast03/proyectoGSASD/models"
	"github.com/JavCast03/proyectoGSASD/utils"
)

// Home renders the task list. Query parameters: filter (all, pending,
// completed) and q (case-insensitive substring search). Totals are
// computed before filtering so they stay constant while filtering.
func (app *App) Home(w http.ResponseWriter, r *http.Request) {
	sess := app.currentSession(r)
	if sess == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	tasks, err := app.Tasks.List(r.Context(), sess.UserID)
	if err != nil {
		log.Println("error retrieving tasks for user", sess.UserID, ":", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	filter := r.URL.Query().Get("filter")
	query := r.URL.Query().Get("q")
	total, pending, completed := utils.CountTasks(tasks)

	data := models.PageData{
		Tasks:     utils.FilterTasks(tasks, filter, query),
		Filter:    filter,
		Query:     query,
		Total:     total,
		Pending:   pending,
		Completed: completed,
		Username:  sess.Username,
		UseDB:     app.UseDB,
	}
	app.render(w, "tareas.html", data)
}

// CreateTask handles the list-view form. Blank text is ignored and the
// client is sent back to the list either way.
func (app *App) CreateTask(w http.ResponseWriter, r *http.Request) {
	sess := app.currentSession(r)
	if sess == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	text := strings.TrimSpace(r.FormValue("texto"))
	if err := utils.ValidateTaskText(text); err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if _, err := app.Tasks.Create(r.Context(), sess.UserID, text); err != nil {
		log.Println("error creating task:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *App) ToggleTask(w http.ResponseWriter, r *http.Request) {
	sess := app.currentSession(r)
	if sess == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		// non-numeric id: redirect without mutation
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := app.Tasks.Toggle(r.Context(), sess.UserID, id); err != nil {
		log.Println("error toggling task:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *App) DeleteTask(w http.ResponseWriter, r *http.Request) {
	sess := app.currentSession(r)
	if sess == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := app.Tasks.Delete(r.Context(), sess.UserID, id); err != nil {
		log.Println("error deleting task:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
