package mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/junaidwa/Boot-Store-Web/internal/media"
)

// MediaStore fakes the external image host.
type MediaStore struct {
	mu         sync.Mutex
	Uploads    int
	Deleted    []string
	FailDelete bool
}

func NewMediaStore() *MediaStore {
	return &MediaStore{}
}

func (m *MediaStore) Upload(ctx context.Context, file io.Reader) (media.Image, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Uploads++
	name := fmt.Sprintf("bookstore/upload-%d", m.Uploads)
	return media.Image{URL: "https://media.test/" + name, Filename: name}, nil
}

func (m *MediaStore) Delete(ctx context.Context, filename string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailDelete {
		return errors.New("mocks: delete failed")
	}
	m.Deleted = append(m.Deleted, filename)
	return nil
}
