package main

import (
	"bytes"
	"encoding/gob"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/junaidwa/Boot-Store-Web/internal/models"
	"github.com/junaidwa/Boot-Store-Web/internal/models/mocks"
)

type testMocks struct {
	books  *mocks.BookModel
	users  *mocks.UserModel
	orders *mocks.OrderModel
	media  *mocks.MediaStore
}

func newTestApplication(t *testing.T) (*application, *testMocks) {
	t.Helper()

	templateCache, err := newTemplateCache("../../ui/html")
	if err != nil {
		t.Fatal(err)
	}

	gob.Register(models.Cart{})

	session := scs.New()
	session.Lifetime = 12 * time.Hour

	m := &testMocks{
		books:  mocks.NewBookModel(),
		users:  mocks.NewUserModel(),
		orders: mocks.NewOrderModel(),
		media:  mocks.NewMediaStore(),
	}

	app := &application{
		errorLog:       log.New(io.Discard, "", 0),
		infoLog:        log.New(io.Discard, "", 0),
		session:        session,
		templateCache:  templateCache,
		books:          m.books,
		users:          m.users,
		orders:         m.orders,
		cart:           &models.CartStore{Sessions: session},
		media:          m.media,
		adminEmails:    models.ParseAllowList("boss@example.com"),
		adminUsernames: models.ParseAllowList("superuser"),
	}
	return app, m
}

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	t.Helper()

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	ts.Client().Jar = jar

	// Redirects are asserted on, not followed.
	ts.Client().CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &testServer{ts}
}

func (ts *testServer) get(t *testing.T, urlPath string) (int, http.Header, string) {
	t.Helper()

	rs, err := ts.Client().Get(ts.URL + urlPath)
	if err != nil {
		t.Fatal(err)
	}
	defer rs.Body.Close()

	body, err := io.ReadAll(rs.Body)
	if err != nil {
		t.Fatal(err)
	}
	return rs.StatusCode, rs.Header, string(body)
}

func (ts *testServer) postForm(t *testing.T, urlPath string, form url.Values) (int, http.Header, string) {
	t.Helper()

	rs, err := ts.Client().PostForm(ts.URL+urlPath, form)
	if err != nil {
		t.Fatal(err)
	}
	defer rs.Body.Close()

	body, err := io.ReadAll(rs.Body)
	if err != nil {
		t.Fatal(err)
	}
	return rs.StatusCode, rs.Header, string(body)
}

func (ts *testServer) post(t *testing.T, urlPath, contentType string, body io.Reader) (int, http.Header, string) {
	t.Helper()

	rs, err := ts.Client().Post(ts.URL+urlPath, contentType, body)
	if err != nil {
		t.Fatal(err)
	}
	defer rs.Body.Close()

	b, err := io.ReadAll(rs.Body)
	if err != nil {
		t.Fatal(err)
	}
	return rs.StatusCode, rs.Header, string(b)
}

// login authenticates the test client's session as one of the seeded
// mock users ("alice" or "bookadmin").
func (ts *testServer) login(t *testing.T, username string) {
	t.Helper()

	code, headers, _ := ts.postForm(t, "/login", url.Values{
		"username": {username},
		"password": {"pa$$word"},
	})
	if code != http.StatusSeeOther || headers.Get("Location") != "/books" {
		t.Fatalf("login as %q failed: code %d, location %q", username, code, headers.Get("Location"))
	}
}

// multipartForm builds a multipart body the way the book forms submit,
// optionally including an image file.
func multipartForm(t *testing.T, fields map[string]string, withFile bool) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if withFile {
		fw, err := w.CreateFormFile("image", "cover.png")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte("fake image bytes")); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}
