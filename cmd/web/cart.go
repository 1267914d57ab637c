package main

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/junaidwa/Boot-Store-Web/internal/models"
)

// --- CART ---

// addToCart snapshots the book into the session cart. An unknown id is
// an explicit not-found outcome: the user is told, nothing is added.
func (app *application) addToCart(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("id")

	book, err := app.books.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.flashError(r, "Book not found.")
			http.Redirect(w, r, "/books", http.StatusSeeOther)
			return
		}
		app.serverError(w, err)
		return
	}

	cart := app.cart.Get(r.Context())
	cart.Add(*book)
	app.cart.Put(r.Context(), cart)

	app.flash(r, "Book added to cart.")
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// removeFromCart drops every item sharing the submitted book id. A
// missing cart or an id not in the cart is a no-op.
func (app *application) removeFromCart(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(r.FormValue("id"))
	if err != nil {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	cart := app.cart.Get(r.Context())
	if cart.Remove(oid) > 0 {
		app.cart.Put(r.Context(), cart)
		app.flash(r, "Book removed from cart.")
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (app *application) viewCart(w http.ResponseWriter, r *http.Request) {
	cart := app.cart.Get(r.Context())
	app.render(w, r, "cart.page.tmpl", &TemplateData{
		Cart:      cart,
		CartTotal: cart.Total(),
	})
}

// --- CHECKOUT ---

func (app *application) checkoutForm(w http.ResponseWriter, r *http.Request) {
	cart := app.cart.Get(r.Context())
	app.render(w, r, "checkout.page.tmpl", &TemplateData{
		Cart:      cart,
		CartTotal: cart.Total(),
	})
}

// completeOrder is the one multi-step operation in the system: assemble
// the order from the cart, persist it, and only then clear the cart. A
// persistence failure leaves the cart intact so the user can retry.
func (app *application) completeOrder(w http.ResponseWriter, r *http.Request) {
	// The cart is read first: an empty cart always fails back to the
	// cart view, whatever else is wrong with the submission.
	cart := app.cart.Get(r.Context())
	if cart.Empty() {
		app.flashError(r, "Your cart is empty.")
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	ship := models.ShippingDetails{
		CustomerName: r.FormValue("customerName"),
		Address:      r.FormValue("address"),
		City:         r.FormValue("city"),
		PostalCode:   r.FormValue("postalCode"),
		Country:      r.FormValue("country"),
	}

	if ship.CustomerName == "" || ship.Address == "" || ship.City == "" ||
		ship.PostalCode == "" || ship.Country == "" {
		app.flashError(r, "All shipping fields are required.")
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}

	order, err := models.AssembleOrder(cart, ship)
	if err != nil {
		if errors.Is(err, models.ErrEmptyCart) {
			app.flashError(r, "Your cart is empty.")
			http.Redirect(w, r, "/cart", http.StatusSeeOther)
			return
		}
		app.flashError(r, "Could not place your order. Please try again.")
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}

	id, err := app.orders.Insert(r.Context(), order)
	if err != nil {
		app.errorLog.Println("order insert failed:", err)
		app.flashError(r, "Could not place your order. Please try again.")
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}

	app.cart.Clear(r.Context())
	app.infoLog.Printf("order %s placed, total %.2f", id.Hex(), order.TotalAmount)

	app.flash(r, "Order placed successfully.")
	http.Redirect(w, r, "/books", http.StatusSeeOther)
}
