package main

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/JavCast03/proyectoGSASD/handlers"
	"github.com/JavCast03/proyectoGSASD/store"
	"github.com/JavCast03/proyectoGSASD/utils"
)

func main() {
	// Load environment variables
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, continuing..")
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	app := &handlers.App{
		Tmpl: template.Must(template.ParseGlob("./ui/html/*.html")),
	}

	// DATABASE_URL selects the store mode for the lifetime of the process.
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		pool, err := utils.OpenDB(dsn)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		if err := store.InitSchema(context.Background(), pool); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}

		app.Tasks = store.NewPostgresStore(pool)
		app.Users = store.NewPostgresUserStore(pool)
		app.UseDB = true
	} else {
		log.Println("DATABASE_URL not set, using in-memory store")
		app.Tasks = store.NewMemoryStore()
		app.Users = store.NewMemoryUserStore()
	}

	// Sessions live in Redis when available, in-process otherwise.
	if redisDSN := os.Getenv("REDIS_URL"); redisDSN != "" {
		client, err := utils.OpenRedisPool(redisDSN)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer client.Close()

		app.Sessions = utils.NewRedisSessions(client)
	} else {
		log.Println("REDIS_URL not set, using in-memory sessions")
		app.Sessions = utils.NewMemorySessions()
	}

	log.Printf("Starting server on :%s (useDb=%v)", port, app.UseDB)
	log.Fatal(http.ListenAndServe(":"+port, app.Routes()))
}
