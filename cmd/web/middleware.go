package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/junaidwa/Boot-Store-Web/internal/models"
)

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// methodOverride lets HTML forms reach the PUT and DELETE routes, via a
// ?_method= query parameter or an _method form field.
func (app *application) methodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			method := r.URL.Query().Get("_method")
			if method == "" && strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
				method = r.PostFormValue("_method")
			}
			switch strings.ToUpper(method) {
			case http.MethodPut:
				r.Method = http.MethodPut
			case http.MethodDelete:
				r.Method = http.MethodDelete
			}
		}
		next.ServeHTTP(w, r)
	})
}

// requireAuthenticated gates a route behind a valid session identity.
// The redirect to /login is the terminal response for the request.
func (app *application) requireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !app.isAuthenticated(r) {
			app.flashError(r, "You must be logged in to perform this action.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		w.Header().Add("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// requireAdmin assumes requireAuthenticated already passed; a logged-in
// user without the admin role is sent back to the catalog, not to
// /login, so the two failures are distinguishable.
func (app *application) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := models.Role(app.session.GetString(r.Context(), "userRole"))
		if role != models.RoleAdmin {
			app.flashError(r, "You must be an admin to perform this action.")
			http.Redirect(w, r, "/books", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
