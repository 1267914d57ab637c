// Package mocks provides in-memory model fakes for handler tests.
package mocks

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/junaidwa/Boot-Store-Web/internal/models"
)

func mustID(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return id
}

// KnownBookID resolves to the seeded fixture book; any other id is a
// not-found.
var KnownBookID = mustID("64c13ab08edf48a008793cac")

// SecondBookID resolves to a second, cheaper fixture book.
var SecondBookID = mustID("64c13ab08edf48a008793cad")

func fixtureBooks() []*models.Book {
	return []*models.Book{
		{
			ID:          KnownBookID,
			Title:       "The Go Programming Language",
			Author:      "Alan Donovan",
			Description: "A reference.",
			Price:       10,
			Category:    "Technology",
			Image:       models.Image{URL: "https://media.test/gopl.png", Filename: "bookstore/gopl"},
		},
		{
			ID:       SecondBookID,
			Title:    "A Short History",
			Author:   "Jane Doe",
			Price:    5,
			Category: "History",
		},
	}
}

type BookModel struct {
	mu       sync.Mutex
	books    []*models.Book
	Inserted []*models.Book
	Updates  map[string]models.BookUpdate
	Deleted  []string
}

func NewBookModel() *BookModel {
	return &BookModel{
		books:   fixtureBooks(),
		Updates: map[string]models.BookUpdate{},
	}
}

func (m *BookModel) Insert(ctx context.Context, b *models.Book) (primitive.ObjectID, error) {
	if err := b.Validate(); err != nil {
		return primitive.NilObjectID, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	m.books = append(m.books, b)
	m.Inserted = append(m.Inserted, b)
	return b.ID, nil
}

func (m *BookModel) Get(ctx context.Context, id string) (*models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.books {
		if b.ID.Hex() == id {
			found := *b
			return &found, nil
		}
	}
	return nil, models.ErrNoRecord
}

func (m *BookModel) All(ctx context.Context) ([]*models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*models.Book(nil), m.books...), nil
}

func (m *BookModel) ByCategory(ctx context.Context, category string) ([]*models.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Book
	for _, b := range m.books {
		if b.Category == category {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *BookModel) Update(ctx context.Context, id string, upd models.BookUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.books {
		if b.ID.Hex() == id {
			m.Updates[id] = upd
			if upd.Category != nil {
				b.Category = *upd.Category
			}
			if upd.Title != nil {
				b.Title = *upd.Title
			}
			if upd.Price != nil {
				b.Price = *upd.Price
			}
			if upd.Image != nil {
				b.Image = *upd.Image
			}
			return nil
		}
	}
	return models.ErrNoRecord
}

func (m *BookModel) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, b := range m.books {
		if b.ID.Hex() == id {
			m.books = append(m.books[:i], m.books[i+1:]...)
			m.Deleted = append(m.Deleted, id)
			return nil
		}
	}
	return models.ErrNoRecord
}
