package main

import (
	"net/http"

	"github.com/bmizerany/pat"
)

func (app *application) routes() http.Handler {
	mux := pat.New()

	mux.Get("/", http.HandlerFunc(app.home))
	mux.Get("/about", http.HandlerFunc(app.about))
	mux.Get("/contact", http.HandlerFunc(app.contact))

	mux.Get("/register", http.HandlerFunc(app.registerForm))
	mux.Post("/register", http.HandlerFunc(app.register))
	mux.Get("/login", http.HandlerFunc(app.loginForm))
	mux.Post("/login", http.HandlerFunc(app.login))
	mux.Get("/logout", app.requireAuthenticated(http.HandlerFunc(app.logout)))

	// pat matches in registration order, so the category route must come
	// before /books/:id/details.
	mux.Get("/books", http.HandlerFunc(app.listBooks))
	mux.Get("/books/category/:category", http.HandlerFunc(app.listBooksByCategory))
	mux.Get("/books/:id/details", http.HandlerFunc(app.showBook))

	admin := func(h http.HandlerFunc) http.Handler {
		return app.requireAuthenticated(app.requireAdmin(h))
	}
	mux.Get("/new", admin(app.createBookForm))
	mux.Post("/books", admin(app.createBook))
	mux.Get("/books/:id/edit", admin(app.editBookForm))
	mux.Put("/books/:id", admin(app.updateBook))
	mux.Del("/books/:id", admin(app.deleteBook))
	mux.Get("/dashboard", admin(app.dashboard))

	mux.Post("/cart", app.requireAuthenticated(http.HandlerFunc(app.addToCart)))
	mux.Get("/cart", app.requireAuthenticated(http.HandlerFunc(app.viewCart)))
	mux.Post("/cart/remove", app.requireAuthenticated(http.HandlerFunc(app.removeFromCart)))
	mux.Get("/checkout", app.requireAuthenticated(http.HandlerFunc(app.checkoutForm)))
	mux.Post("/complete-order", http.HandlerFunc(app.completeOrder))

	mux.Get("/static/", http.StripPrefix("/static", http.FileServer(http.Dir("./ui/static/"))))

	return app.logRequest(app.recoverPanic(app.methodOverride(app.session.LoadAndSave(mux))))
}
