package handlers

import "net/http"

// Routes wires every endpoint onto a ServeMux.
func (app *App) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", app.Home)
	mux.HandleFunc("POST /tareas", app.CreateTask)
	mux.HandleFunc("POST /tareas/{id}/toggle", app.ToggleTask)
	mux.HandleFunc("POST /tareas/{id}/borrar", app.DeleteTask)
	// kept for the original form action
	mux.HandleFunc("POST /borrar/{id}", app.DeleteTask)

	mux.HandleFunc("GET /api/tareas", app.APIListTasks)
	mux.HandleFunc("POST /api/tareas", app.APICreateTask)
	mux.HandleFunc("GET /health", app.Health)

	mux.HandleFunc("GET /login", app.LoginForm)
	mux.HandleFunc("POST /login", app.Login)
	mux.HandleFunc("GET /register", app.RegisterForm)
	mux.HandleFunc("POST /register", app.Register)
	mux.HandleFunc("GET /logout", app.Logout)

	return mux
}
