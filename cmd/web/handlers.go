package main

import (
	"errors"
	"net/http"

	"github.com/junaidwa/Boot-Store-Web/internal/models"
)

// --- STATIC PAGES ---

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	app.listBooks(w, r)
}

func (app *application) about(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, "about.page.tmpl", nil)
}

func (app *application) contact(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, "contact.page.tmpl", nil)
}

// --- AUTH HANDLERS ---

func (app *application) registerForm(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, "register.page.tmpl", nil)
}

// register creates the user without logging them in. The role is
// decided once here, by the allow-lists; there is no later promotion.
func (app *application) register(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	email := r.FormValue("email")
	password := r.FormValue("password")

	if username == "" || email == "" || password == "" {
		app.flashError(r, "Username, email and password are required.")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	role := models.AssignRole(username, email, app.adminUsernames, app.adminEmails)

	err := app.users.Insert(r.Context(), username, email, password, role)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateCredentials) {
			app.flashError(r, "That username or email is already in use.")
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}
		app.serverError(w, err)
		return
	}

	app.flash(r, "Registration successful. Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (app *application) loginForm(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, "login.page.tmpl", nil)
}

func (app *application) login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := app.users.Authenticate(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			app.flashError(r, "Username or password is incorrect.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		app.serverError(w, err)
		return
	}

	err = app.session.RenewToken(r.Context())
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.session.Put(r.Context(), "authenticatedUserID", user.ID.Hex())
	app.session.Put(r.Context(), "userRole", string(user.Role))
	app.session.Put(r.Context(), "userName", user.Username)

	http.Redirect(w, r, "/books", http.StatusSeeOther)
}

// logout drops the identity but keeps the session, so the cart survives:
// the cart belongs to the browser session, not to the user.
func (app *application) logout(w http.ResponseWriter, r *http.Request) {
	err := app.session.RenewToken(r.Context())
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.session.Remove(r.Context(), "authenticatedUserID")
	app.session.Remove(r.Context(), "userRole")
	app.session.Remove(r.Context(), "userName")

	app.flash(r, "You have been logged out.")
	http.Redirect(w, r, "/books", http.StatusSeeOther)
}

// --- ADMIN DASHBOARD ---

func (app *application) dashboard(w http.ResponseWriter, r *http.Request) {
	users, err := app.users.All(r.Context())
	if err != nil {
		app.serverError(w, err)
		return
	}
	books, err := app.books.All(r.Context())
	if err != nil {
		app.serverError(w, err)
		return
	}
	orders, err := app.orders.All(r.Context())
	if err != nil {
		app.serverError(w, err)
		return
	}
	revenue, err := app.orders.TotalRevenue(r.Context())
	if err != nil {
		app.serverError(w, err)
		return
	}

	app.render(w, r, "dashboard.page.tmpl", &TemplateData{
		Users:        users,
		Books:        books,
		Orders:       orders,
		TotalOrders:  len(orders),
		TotalRevenue: revenue,
	})
}
