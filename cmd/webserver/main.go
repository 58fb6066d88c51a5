package main

import (
	"html/template"
	"log"
	"net/http"
	"time"

	"nandoku"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := nandoku.ConfigFromEnv()
	nandoku.SetVerbose(cfg.Verbose)

	if cfg.APIEndpoint == "" {
		// Keep serving so the failure mode is visible per request.
		log.Printf("Warning: NANDOKU_API_ENDPOINT is not set, quiz routes will answer 500")
	}

	var distractorCache nandoku.DistractorCache
	if cache, err := nandoku.OpenCache(cfg.CacheDBPath, cfg.CacheTable); err != nil {
		log.Printf("Cache unavailable, every request will regenerate: %v", err)
	} else {
		defer cache.Close()
		distractorCache = cache
	}

	generator := nandoku.NewGenerator(cfg, nandoku.DefaultRetryPolicy())
	builder := nandoku.NewQuizBuilder(generator, distractorCache)

	var places placeSource
	if cfg.APIEndpoint != "" {
		places = nandoku.NewPlaceClient(cfg.APIEndpoint)
	}

	tmpl := template.Must(template.ParseFiles("templates/index.html"))
	server := newServer(places, builder, tmpl)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))
	server.routes(r)

	log.Printf("Starting quiz server on %s", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
