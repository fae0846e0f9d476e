package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/JavCast03/proyectoGSASD/models"
	"github.com/JavCast03/proyectoGSASD/store"
	"github.com/JavCast03/proyectoGSASD/utils"
)

type authPage struct {
	Error    string
	Username string
}

func (app *App) LoginForm(w http.ResponseWriter, r *http.Request) {
	if app.currentSession(r) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	app.render(w, "login.html", authPage{})
}

// Login checks the credentials and binds a new session to the user. The
// error message tells an unknown username apart from a wrong password.
func (app *App) Login(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if username == "" || password == "" {
		app.render(w, "login.html", authPage{Error: "Faltan credenciales", Username: username})
		return
	}

	user, err := app.Users.GetByUsername(r.Context(), username)
	if err != nil {
		log.Println("error looking up user:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		app.render(w, "login.html", authPage{Error: "Usuario no encontrado", Username: username})
		return
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		app.render(w, "login.html", authPage{Error: "Contraseña incorrecta", Username: username})
		return
	}

	app.startSession(w, r, *user)
}

func (app *App) RegisterForm(w http.ResponseWriter, r *http.Request) {
	if app.currentSession(r) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	app.render(w, "register.html", authPage{})
}

func (app *App) Register(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if err := utils.ValidateUsername(username); err != nil {
		app.render(w, "register.html", authPage{Error: "Usuario no válido: " + err.Error()})
		return
	}
	if err := utils.ValidatePassword(password); err != nil {
		app.render(w, "register.html", authPage{Error: "Contraseña no válida: " + err.Error(), Username: username})
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Println("error hashing password:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	user, err := app.Users.Create(r.Context(), username, hash)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			app.render(w, "register.html", authPage{Error: "El usuario ya existe", Username: username})
			return
		}
		log.Println("error adding user:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// registration logs the user straight in
	app.startSession(w, r, user)
}

func (app *App) Logout(w http.ResponseWriter, r *http.Request) {
	if utils.CookieExists(r, sessionCookie) {
		st, _ := r.Cookie(sessionCookie)
		if err := app.Sessions.Delete(r.Context(), st.Value); err != nil {
			log.Println("failed to delete session:", err)
		}
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (app *App) startSession(w http.ResponseWriter, r *http.Request, user models.User) {
	sess, err := app.Sessions.Create(r.Context(), user, utils.GetUserAgent(r), utils.GetIP(r))
	if err != nil {
		log.Println("failed to store session:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	setSessionCookie(w, sess.Token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
