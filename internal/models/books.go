package models

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Categories is the fixed set a book must belong to.
var Categories = []string{
	"Fiction",
	"Non-fiction",
	"Science",
	"History",
	"Islamic",
	"Kids",
	"Comics",
	"Biography",
	"Education",
	"Technology",
}

func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Image holds the externally hosted image location for a book.
type Image struct {
	URL      string `bson:"url,omitempty"`
	Filename string `bson:"filename,omitempty"`
}

type Book struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Author      string             `bson:"author"`
	Description string             `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	Image       Image              `bson:"image,omitempty"`
	Category    string             `bson:"category"`
}

// Validate trims title and author and checks the schema rules.
func (b *Book) Validate() error {
	b.Title = strings.TrimSpace(b.Title)
	b.Author = strings.TrimSpace(b.Author)

	if b.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidBook)
	}
	if b.Author == "" {
		return fmt.Errorf("%w: author is required", ErrInvalidBook)
	}
	if b.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidBook)
	}
	if !ValidCategory(b.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidBook, b.Category)
	}
	return nil
}

// BookUpdate carries a partial update: nil fields are left untouched in
// the stored document, so a form that omits the category keeps the
// previously stored one.
type BookUpdate struct {
	Title       *string
	Author      *string
	Description *string
	Price       *float64
	Category    *string
	Image       *Image
}

type BookModelInterface interface {
	Insert(ctx context.Context, b *Book) (primitive.ObjectID, error)
	Get(ctx context.Context, id string) (*Book, error)
	All(ctx context.Context) ([]*Book, error)
	ByCategory(ctx context.Context, category string) ([]*Book, error)
	Update(ctx context.Context, id string, upd BookUpdate) error
	Delete(ctx context.Context, id string) error
}

type BookModel struct {
	C *mongo.Collection
}

func (m *BookModel) Insert(ctx context.Context, b *Book) (primitive.ObjectID, error) {
	if err := b.Validate(); err != nil {
		return primitive.NilObjectID, err
	}
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	_, err := m.C.InsertOne(ctx, b)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return b.ID, nil
}

func (m *BookModel) Get(ctx context.Context, id string) (*Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNoRecord
	}

	var b Book
	err = m.C.FindOne(ctx, bson.M{"_id": oid}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoRecord
		}
		return nil, err
	}
	return &b, nil
}

func (m *BookModel) All(ctx context.Context) ([]*Book, error) {
	return m.find(ctx, bson.M{})
}

func (m *BookModel) ByCategory(ctx context.Context, category string) ([]*Book, error) {
	return m.find(ctx, bson.M{"category": category})
}

func (m *BookModel) find(ctx context.Context, filter bson.M) ([]*Book, error) {
	var books []*Book
	cur, err := m.C.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	err = cur.All(ctx, &books)
	return books, err
}

func (m *BookModel) Update(ctx context.Context, id string, upd BookUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNoRecord
	}

	set, err := upd.setDocument()
	if err != nil {
		return err
	}
	if len(set) == 0 {
		return nil
	}

	res, err := m.C.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoRecord
	}
	return nil
}

func (upd BookUpdate) setDocument() (bson.M, error) {
	set := bson.M{}
	if upd.Title != nil {
		t := strings.TrimSpace(*upd.Title)
		if t == "" {
			return nil, fmt.Errorf("%w: title is required", ErrInvalidBook)
		}
		set["title"] = t
	}
	if upd.Author != nil {
		a := strings.TrimSpace(*upd.Author)
		if a == "" {
			return nil, fmt.Errorf("%w: author is required", ErrInvalidBook)
		}
		set["author"] = a
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Price != nil {
		if *upd.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidBook)
		}
		set["price"] = *upd.Price
	}
	if upd.Category != nil {
		if !ValidCategory(*upd.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidBook, *upd.Category)
		}
		set["category"] = *upd.Category
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}
	return set, nil
}

func (m *BookModel) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNoRecord
	}
	res, err := m.C.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNoRecord
	}
	return nil
}
