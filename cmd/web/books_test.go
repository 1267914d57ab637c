package main

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/junaidwa/Boot-Store-Web/internal/models/mocks"
)

func TestListBooks(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	code, _, body := ts.get(t, "/books")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !strings.Contains(body, "The Go Programming Language") {
		t.Error("listing missing seeded book")
	}
	if !strings.Contains(body, "A Short History") {
		t.Error("listing missing second seeded book")
	}
}

func TestListBooksByCategory(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	t.Run("filters to the category", func(t *testing.T) {
		code, _, body := ts.get(t, "/books/category/History")
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		if !strings.Contains(body, "A Short History") {
			t.Error("expected the History book")
		}
		if strings.Contains(body, "The Go Programming Language") {
			t.Error("Technology book leaked into the History filter")
		}
	})

	t.Run("unknown category redirects to the catalog", func(t *testing.T) {
		code, headers, _ := ts.get(t, "/books/category/Cooking")
		if code != http.StatusSeeOther || headers.Get("Location") != "/books" {
			t.Errorf("expected 303 to /books, got %d to %q", code, headers.Get("Location"))
		}
	})
}

func TestShowBook(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	t.Run("known id renders the detail page", func(t *testing.T) {
		code, _, body := ts.get(t, "/books/"+mocks.KnownBookID.Hex()+"/details")
		if code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		if !strings.Contains(body, "Alan Donovan") {
			t.Error("detail page missing the author")
		}
	})

	t.Run("unknown id redirects to the catalog", func(t *testing.T) {
		code, headers, _ := ts.get(t, "/books/"+primitive.NewObjectID().Hex()+"/details")
		if code != http.StatusSeeOther || headers.Get("Location") != "/books" {
			t.Errorf("expected 303 to /books, got %d to %q", code, headers.Get("Location"))
		}
	})
}

func TestCreateBookAuthorization(t *testing.T) {
	fields := map[string]string{
		"title":    "New Book",
		"author":   "Someone",
		"price":    "9.99",
		"category": "Fiction",
	}

	t.Run("unauthenticated is sent to login", func(t *testing.T) {
		app, m := newTestApplication(t)
		ts := newTestServer(t, app.routes())

		body, contentType := multipartForm(t, fields, false)
		code, headers, _ := ts.post(t, "/books", contentType, body)

		if code != http.StatusSeeOther || headers.Get("Location") != "/login" {
			t.Errorf("expected 303 to /login, got %d to %q", code, headers.Get("Location"))
		}
		if len(m.books.Inserted) != 0 {
			t.Error("book was created despite the gate")
		}
	})

	t.Run("non-admin is sent to the catalog, nothing created", func(t *testing.T) {
		app, m := newTestApplication(t)
		ts := newTestServer(t, app.routes())
		ts.login(t, "alice")

		body, contentType := multipartForm(t, fields, false)
		code, headers, _ := ts.post(t, "/books", contentType, body)

		if code != http.StatusSeeOther || headers.Get("Location") != "/books" {
			t.Errorf("expected 303 to /books, got %d to %q", code, headers.Get("Location"))
		}
		if len(m.books.Inserted) != 0 {
			t.Error("book was created despite the gate")
		}
	})
}

func TestCreateBook(t *testing.T) {
	t.Run("creates without an image", func(t *testing.T) {
		app, m := newTestApplication(t)
		ts := newTestServer(t, app.routes())
		ts.login(t, "bookadmin")

		body, contentType := multipartForm(t, map[string]string{
			"title":    "New Book",
			"author":   "Someone",
			"price":    "9.99",
			"category": "Fiction",
		}, false)
		code, headers, _ := ts.post(t, "/books", contentType, body)

		if code != http.StatusSeeOther || headers.Get("Location") != "/books" {
			t.Errorf("expected 303 to /books, got %d to %q", code, headers.Get("Location"))
		}
		if len(m.books.Inserted) != 1 {
			t.Fatalf("expected 1 insert, got %d", len(m.books.Inserted))
		}
		if m.media.Uploads != 0 {
			t.Errorf("expected no uploads, got %d", m.media.Uploads)
		}
	})

	t.Run("uploads the image when supplied", func(t *testing.T) {
		app, m := newTestApplication(t)
		ts := newTestServer(t, app.routes())
		ts.login(t, "bookadmin")

		body, contentType := multipartForm(t, map[string]string{
			"title":    "Illustrated Book",
			"author":   "Someone",
			"price":    "19.99",
			"category": "Kids",
		}, true)
		ts.post(t, "/books", contentType, body)

		if m.media.Uploads != 1 {
			t.Fatalf("expected 1 upload, got %d", m.media.Uploads)
		}
		if len(m.books.Inserted) != 1 || m.books.Inserted[0].Image.URL == "" {
			t.Error("expected the inserted book to carry the hosted image")
		}
	})

	t.Run("non-numeric price is rejected with a redirect to the form", func(t *testing.T) {
		app, m := newTestApplication(t)
		ts := newTestServer(t, app.routes())
		ts.login(t, "bookadmin")

		body, contentType := multipartForm(t, map[string]string{
			"title":    "Bad Price",
			"author":   "Someone",
			"price":    "nine dollars",
			"category": "Fiction",
		}, false)
		code, headers, _ := ts.post(t, "/books", contentType, body)

		if code != http.StatusSeeOther || headers.Get("Location") != "/new" {
			t.Errorf("expected 303 to /new, got %d to %q", code, headers.Get("Location"))
		}
		if len(m.books.Inserted) != 0 {
			t.Error("book with an unparseable price was inserted")
		}
	})

	t.Run("invalid book is rejected with a redirect to the form", func(t *testing.T) {
		app, m := newTestApplication(t)
		ts := newTestServer(t, app.routes())
		ts.login(t, "bookadmin")

		body, contentType := multipartForm(t, map[string]string{
			"title":    "Bad Category",
			"author":   "Someone",
			"price":    "9.99",
			"category": "Cooking",
		}, false)
		code, headers, _ := ts.post(t, "/books", contentType, body)

		if code != http.StatusSeeOther || headers.Get("Location") != "/new" {
			t.Errorf("expected 303 to /new, got %d to %q", code, headers.Get("Location"))
		}
		if len(m.books.Inserted) != 0 {
			t.Error("invalid book was inserted")
		}
	})
}

func TestUpdateBook(t *testing.T) {
	id := mocks.KnownBookID.Hex()

	t.Run("omitting the category preserves the stored one", func(t *testing.T) {
		app, m := newTestApplication(t)
		ts := newTestServer(t, app.routes())
		ts.login(t, "bookadmin")

		body, contentType := multipartForm(t, map[string]string{
			"title":  "Renamed",
			"author": "Alan Donovan",
			"price":  "15",
		}, false)
		code, headers, _ := ts.post(t, "/books/"+id+"?_method=PUT", contentType, body)

		if code != http.StatusSeeOther || headers.Get("Location") != "/books" {
			t.Fatalf("expected 303 to /books, got %d to %q", code, headers.Get("Location"))
		}

		upd, ok := m.books.Updates[id]
		if !ok {
			t.Fatal("no update recorded")
		}
		if upd.Category != nil {
			t.Errorf("category should not be part of the update, got %q", *upd.Category)
		}

		book, err := m.books.Get(context.Background(), id)
		if err != nil {
			t.Fatal(err)
		}
		if book.Category != "Technology" {
			t.Errorf("stored category changed to %q", book.Category)
		}
		if book.Title != "Renamed" {
			t.Errorf("title not updated, got %q", book.Title)
		}
	})

	t.Run("replacing the image deletes the old one best-effort", func(t *testing.T) {
		app, m := newTestApplication(t)
		ts := newTestServer(t, app.routes())
		ts.login(t, "bookadmin")

		body, contentType := multipartForm(t, map[string]string{"title": "Renamed"}, true)
		ts.post(t, "/books/"+id+"?_method=PUT", contentType, body)

		if m.media.Uploads != 1 {
			t.Errorf("expected 1 upload, got %d", m.media.Uploads)
		}
		if len(m.media.Deleted) != 1 || m.media.Deleted[0] != "bookstore/gopl" {
			t.Errorf("expected old image deleted, got %v", m.media.Deleted)
		}
	})

	t.Run("old image delete failure does not abort the update", func(t *testing.T) {
		app, m := newTestApplication(t)
		ts := newTestServer(t, app.routes())
		ts.login(t, "bookadmin")
		m.media.FailDelete = true

		body, contentType := multipartForm(t, map[string]string{"title": "Renamed"}, true)
		code, headers, _ := ts.post(t, "/books/"+id+"?_method=PUT", contentType, body)

		if code != http.StatusSeeOther || headers.Get("Location") != "/books" {
			t.Errorf("expected the update to succeed, got %d to %q", code, headers.Get("Location"))
		}
		if _, ok := m.books.Updates[id]; !ok {
			t.Error("no update recorded")
		}
	})

	t.Run("non-admin cannot update", func(t *testing.T) {
		app, m := newTestApplication(t)
		ts := newTestServer(t, app.routes())
		ts.login(t, "alice")

		body, contentType := multipartForm(t, map[string]string{"title": "Hijacked"}, false)
		code, headers, _ := ts.post(t, "/books/"+id+"?_method=PUT", contentType, body)

		if code != http.StatusSeeOther || headers.Get("Location") != "/books" {
			t.Errorf("expected 303 to /books, got %d to %q", code, headers.Get("Location"))
		}
		if len(m.books.Updates) != 0 {
			t.Error("update happened despite the gate")
		}
	})
}

func TestDeleteBook(t *testing.T) {
	id := mocks.KnownBookID.Hex()

	t.Run("admin delete removes the document and its image", func(t *testing.T) {
		app, m := newTestApplication(t)
		ts := newTestServer(t, app.routes())
		ts.login(t, "bookadmin")

		code, headers, _ := ts.postForm(t, "/books/"+id+"?_method=DELETE", nil)

		if code != http.StatusSeeOther || headers.Get("Location") != "/books" {
			t.Errorf("expected 303 to /books, got %d to %q", code, headers.Get("Location"))
		}
		if len(m.books.Deleted) != 1 || m.books.Deleted[0] != id {
			t.Errorf("expected delete of %s, got %v", id, m.books.Deleted)
		}
		if len(m.media.Deleted) != 1 || m.media.Deleted[0] != "bookstore/gopl" {
			t.Errorf("expected the hosted image deleted, got %v", m.media.Deleted)
		}
	})

	t.Run("non-admin cannot delete", func(t *testing.T) {
		app, m := newTestApplication(t)
		ts := newTestServer(t, app.routes())
		ts.login(t, "alice")

		code, headers, _ := ts.postForm(t, "/books/"+id+"?_method=DELETE", nil)

		if code != http.StatusSeeOther || headers.Get("Location") != "/books" {
			t.Errorf("expected 303 to /books, got %d to %q", code, headers.Get("Location"))
		}
		if len(m.books.Deleted) != 0 {
			t.Error("delete happened despite the gate")
		}
	})
}
