package main

import (
	"context"
	"encoding/gob"
	"flag"
	"html/template"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"

	"github.com/junaidwa/Boot-Store-Web/internal/media"
	"github.com/junaidwa/Boot-Store-Web/internal/models"
)

type application struct {
	errorLog       *log.Logger
	infoLog        *log.Logger
	session        *scs.SessionManager
	templateCache  map[string]*template.Template
	books          models.BookModelInterface
	users          models.UserModelInterface
	orders         models.OrderModelInterface
	cart           *models.CartStore
	media          media.Store
	adminEmails    []string
	adminUsernames []string
}

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Fatal("MONGO_URI environment variable not found")
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "bookstore"
	}

	addr := flag.String("addr", ":4000", "HTTP network address")
	flag.Parse()

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	client, err := models.OpenDB(uri)
	if err != nil {
		errorLog.Fatal(err)
	}
	defer client.Disconnect(context.Background())
	infoLog.Println("Connected to database!")

	db := client.Database(dbName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = models.EnsureIndexes(ctx, db.Collection("users"))
	cancel()
	if err != nil {
		errorLog.Fatal(err)
	}

	mediaStore, err := media.NewCloudinary("bookstore")
	if err != nil {
		errorLog.Fatal(err)
	}

	templateCache, err := newTemplateCache("./ui/html")
	if err != nil {
		errorLog.Fatal(err)
	}

	// The cart is stored as a session value, so scs needs its type
	// registered with gob.
	gob.Register(models.Cart{})

	session := scs.New()
	session.Lifetime = 12 * time.Hour

	app := &application{
		errorLog:       errorLog,
		infoLog:        infoLog,
		session:        session,
		templateCache:  templateCache,
		books:          &models.BookModel{C: db.Collection("books")},
		users:          &models.UserModel{C: db.Collection("users")},
		orders:         &models.OrderModel{C: db.Collection("orders")},
		cart:           &models.CartStore{Sessions: session},
		media:          mediaStore,
		adminEmails:    models.ParseAllowList(os.Getenv("ADMIN_EMAILS")),
		adminUsernames: models.ParseAllowList(os.Getenv("ADMIN_USERNAMES")),
	}

	srv := &http.Server{
		Addr:     *addr,
		ErrorLog: errorLog,
		Handler:  app.routes(),
	}

	infoLog.Printf("Starting Book Store on %s", *addr)
	err = srv.ListenAndServe()
	errorLog.Fatal(err)
}
