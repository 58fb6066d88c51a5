// Command placeapi serves the place-data API consumed by the quiz server:
// GET /{placeID} and GET /random, both returning {id, name, yomi}. It
// carries a small built-in dataset so the whole system runs without any
// external infrastructure.
package main

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"nandoku"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

var places = map[string]nandoku.PlaceRecord{
	"sapporo":   {ID: "sapporo", Name: "札幌", Yomi: "さっぽろ"},
	"hakodate":  {ID: "hakodate", Name: "函館", Yomi: "はこだて"},
	"otaru":     {ID: "otaru", Name: "小樽", Yomi: "おたる"},
	"asahikawa": {ID: "asahikawa", Name: "旭川", Yomi: "あさひかわ"},
	"muroran":   {ID: "muroran", Name: "室蘭", Yomi: "むろらん"},
	"kushiro":   {ID: "kushiro", Name: "釧路", Yomi: "くしろ"},
	"obihiro":   {ID: "obihiro", Name: "帯広", Yomi: "おびひろ"},
	"kitami":    {ID: "kitami", Name: "北見", Yomi: "きたみ"},
	"yubari":    {ID: "yubari", Name: "夕張", Yomi: "ゆうばり"},
	"iwamizawa": {ID: "iwamizawa", Name: "岩見沢", Yomi: "いわみざわ"},
}

var placeIDs = func() []string {
	ids := make([]string, 0, len(places))
	for id := range places {
		ids = append(ids, id)
	}
	return ids
}()

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	addr := ":" + envOr("PLACEAPI_PORT", "8081")

	r := chi.NewRouter()
	r.Use(middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/random", handleRandom)
	r.Get("/{placeID}", handlePlace)

	log.Printf("Starting place-data API on %s with %d places", addr, len(places))
	log.Fatal(http.ListenAndServe(addr, r))
}

func handleRandom(w http.ResponseWriter, r *http.Request) {
	id := placeIDs[rand.Intn(len(placeIDs))]
	writeJSON(w, http.StatusOK, places[id])
}

func handlePlace(w http.ResponseWriter, r *http.Request) {
	place, ok := places[chi.URLParam(r, "placeID")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown place id"})
		return
	}
	writeJSON(w, http.StatusOK, place)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
