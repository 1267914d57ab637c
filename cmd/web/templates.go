package main

import (
	"html/template"
	"path/filepath"
	"time"

	"github.com/junaidwa/Boot-Store-Web/internal/models"
)

type TemplateData struct {
	CurrentYear     int
	Flash           string
	Error           string
	IsAuthenticated bool
	UserRole        string
	UserName        string
	Book            *models.Book
	Books           []*models.Book
	Categories      []string
	CategoryName    string
	Cart            models.Cart
	CartTotal       float64
	Users           []*models.User
	Orders          []*models.Order
	TotalOrders     int
	TotalRevenue    float64
}

func humanDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02 Jan 2006 at 15:04")
}

var functions = template.FuncMap{
	"humanDate": humanDate,
}

func newTemplateCache(dir string) (map[string]*template.Template, error) {
	cache := make(map[string]*template.Template)

	pages, err := filepath.Glob(filepath.Join(dir, "*.page.tmpl"))
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := filepath.Base(page)

		ts, err := template.New(name).Funcs(functions).ParseFiles(filepath.Join(dir, "base.layout.tmpl"), page)
		if err != nil {
			return nil, err
		}

		partials, err := filepath.Glob(filepath.Join(dir, "*.partial.tmpl"))
		if err != nil {
			return nil, err
		}
		if len(partials) > 0 {
			ts, err = ts.ParseGlob(filepath.Join(dir, "*.partial.tmpl"))
			if err != nil {
				return nil, err
			}
		}

		cache[name] = ts
	}

	return cache, nil
}
