package main

import (
	"bytes"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"
)

func (app *application) serverError(w http.ResponseWriter, err error) {
	trace := fmt.Sprintf("%s\n%s", err.Error(), debug.Stack())
	app.errorLog.Output(2, trace)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (app *application) clientError(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}

func (app *application) isAuthenticated(r *http.Request) bool {
	return app.session.Exists(r.Context(), "authenticatedUserID")
}

// flash and flashError record one-shot notices shown on the next
// rendered page.
func (app *application) flash(r *http.Request, msg string) {
	app.session.Put(r.Context(), "flash", msg)
}

func (app *application) flashError(r *http.Request, msg string) {
	app.session.Put(r.Context(), "error", msg)
}

func (app *application) addDefaultData(td *TemplateData, r *http.Request) *TemplateData {
	if td == nil {
		td = &TemplateData{}
	}
	td.CurrentYear = time.Now().Year()
	td.Flash = app.session.PopString(r.Context(), "flash")
	td.Error = app.session.PopString(r.Context(), "error")
	td.IsAuthenticated = app.isAuthenticated(r)

	if td.IsAuthenticated {
		td.UserRole = app.session.GetString(r.Context(), "userRole")
		td.UserName = app.session.GetString(r.Context(), "userName")
	}
	return td
}

func (app *application) render(w http.ResponseWriter, r *http.Request, page string, data *TemplateData) {
	ts, ok := app.templateCache[page]
	if !ok {
		app.serverError(w, fmt.Errorf("the template %s does not exist", page))
		return
	}

	buf := new(bytes.Buffer)
	err := ts.ExecuteTemplate(buf, "base", app.addDefaultData(data, r))
	if err != nil {
		app.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
