package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/junaidwa/Boot-Store-Web/internal/media"
	"github.com/junaidwa/Boot-Store-Web/internal/models"
)

const maxImageSize = 5 << 20 // 5 MB

// --- CATALOG ---

func (app *application) listBooks(w http.ResponseWriter, r *http.Request) {
	books, err := app.books.All(r.Context())
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.render(w, r, "books.page.tmpl", &TemplateData{
		Books:      books,
		Categories: models.Categories,
	})
}

func (app *application) listBooksByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get(":category")
	if !models.ValidCategory(category) {
		app.flashError(r, "Unknown category.")
		http.Redirect(w, r, "/books", http.StatusSeeOther)
		return
	}

	books, err := app.books.ByCategory(r.Context(), category)
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.render(w, r, "books.page.tmpl", &TemplateData{
		Books:        books,
		Categories:   models.Categories,
		CategoryName: category,
	})
}

func (app *application) showBook(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
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
	app.render(w, r, "book_details.page.tmpl", &TemplateData{Book: book})
}

// --- ADMIN CRUD ---

func (app *application) createBookForm(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, "new.page.tmpl", &TemplateData{Categories: models.Categories})
}

func (app *application) createBook(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxImageSize)
	if err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		app.flashError(r, "Error adding book: invalid price")
		http.Redirect(w, r, "/new", http.StatusSeeOther)
		return
	}
	book := models.Book{
		Title:       r.FormValue("title"),
		Author:      r.FormValue("author"),
		Description: r.FormValue("description"),
		Price:       price,
		Category:    r.FormValue("category"),
	}

	if err := book.Validate(); err != nil {
		app.flashError(r, "Error adding book: "+err.Error())
		http.Redirect(w, r, "/new", http.StatusSeeOther)
		return
	}

	if img, ok := app.uploadImage(r); ok {
		book.Image = models.Image{URL: img.URL, Filename: img.Filename}
	}

	_, err = app.books.Insert(r.Context(), &book)
	if err != nil {
		app.flashError(r, "Error adding book: "+err.Error())
		http.Redirect(w, r, "/new", http.StatusSeeOther)
		return
	}

	app.flash(r, "Book Added Successfully")
	http.Redirect(w, r, "/books", http.StatusSeeOther)
}

// uploadImage sends the optional "image" form file to the media host.
// A missing file is not an error; an upload failure is logged and the
// book is saved without an image.
func (app *application) uploadImage(r *http.Request) (media.Image, bool) {
	file, _, err := r.FormFile("image")
	if err != nil {
		return media.Image{}, false
	}
	defer file.Close()

	img, err := app.media.Upload(r.Context(), file)
	if err != nil {
		app.errorLog.Println("image upload failed:", err)
		return media.Image{}, false
	}
	return img, true
}

func (app *application) editBookForm(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
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
	app.render(w, r, "edit.page.tmpl", &TemplateData{Book: book, Categories: models.Categories})
}

// updateBook applies a partial update: only submitted, non-empty fields
// overwrite stored values, so a form that omits the category never
// nulls it or trips validation.
func (app *application) updateBook(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")

	existing, err := app.books.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.flashError(r, "Book not found.")
			http.Redirect(w, r, "/books", http.StatusSeeOther)
			return
		}
		app.serverError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	var upd models.BookUpdate
	if v := r.FormValue("title"); v != "" {
		upd.Title = &v
	}
	if v := r.FormValue("author"); v != "" {
		upd.Author = &v
	}
	if v := r.FormValue("description"); v != "" {
		upd.Description = &v
	}
	if v := r.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			app.flashError(r, "Error updating book: invalid price")
			http.Redirect(w, r, "/books/"+id+"/edit", http.StatusSeeOther)
			return
		}
		upd.Price = &price
	}
	if v := r.FormValue("category"); v != "" {
		upd.Category = &v
	}

	replacedImage := false
	if img, ok := app.uploadImage(r); ok {
		upd.Image = &models.Image{URL: img.URL, Filename: img.Filename}
		replacedImage = true
	}

	err = app.books.Update(r.Context(), id, upd)
	if err != nil {
		app.flashError(r, "Error updating book: "+err.Error())
		http.Redirect(w, r, "/books/"+id+"/edit", http.StatusSeeOther)
		return
	}

	// Best-effort cleanup of the replaced image; a failure here must not
	// abort the update.
	if replacedImage && existing.Image.Filename != "" {
		if err := app.media.Delete(r.Context(), existing.Image.Filename); err != nil {
			app.errorLog.Println("failed to delete old image:", err)
		}
	}

	app.flash(r, "Book Updated Successfully")
	http.Redirect(w, r, "/books", http.StatusSeeOther)
}

func (app *application) deleteBook(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")

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

	err = app.books.Delete(r.Context(), id)
	if err != nil {
		app.flashError(r, "Error deleting book: "+err.Error())
		http.Redirect(w, r, "/books", http.StatusSeeOther)
		return
	}

	if book.Image.Filename != "" {
		if err := app.media.Delete(r.Context(), book.Image.Filename); err != nil {
			app.errorLog.Println("failed to delete image:", err)
		}
	}

	app.flash(r, "Book Deleted Successfully")
	http.Redirect(w, r, "/books", http.StatusSeeOther)
}
