package handlers

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/JavCast03/proyectoGSASD/models"
	"github.com/JavCast03/proyectoGSASD/store"
	"github.com/JavCast03/proyectoGSASD/utils"
)

const sessionCookie = "session_token"

// App owns the stores and templates and carries them into every handler.
// Constructed once in main; tests build their own with in-memory stores.
type App struct {
	Tasks    store.TaskStore
	Users    store.UserStore
	Sessions utils.SessionStore
	Tmpl     *template.Template
	UseDB    bool
}

// currentSession returns the session bound to the request cookie, or nil
// when the request carries no valid session.
func (app *App) currentSession(r *http.Request) *models.Session {
	st, err := r.Cookie(sessionCookie)
	if err != nil || st.Value == "" {
		return nil
	}
	sess, err := app.Sessions.Get(r.Context(), st.Value)
	if err != nil {
		log.Println("error looking up session:", err)
		return nil
	}
	return sess
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   3600 * 24, // 24 hours
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("error encoding JSON response:", err)
	}
}

func (app *App) render(w http.ResponseWriter, name string, data any) {
	if err := app.Tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Println("error rendering template:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
