package main

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"

	"nandoku"

	"github.com/go-chi/chi/v5"
)

const configErrorMessage = "NANDOKU_API_ENDPOINT is not set"

// placeSource is the slice of the place client the handlers need.
type placeSource interface {
	Place(ctx context.Context, id string) (*nandoku.PlaceRecord, error)
	RandomPlace(ctx context.Context) (*nandoku.PlaceRecord, error)
}

// Server holds the handler dependencies. places is nil when the data
// source endpoint was not configured; quiz routes then answer 500.
type Server struct {
	places  placeSource
	builder *nandoku.QuizBuilder
	tmpl    *template.Template
}

func newServer(places placeSource, builder *nandoku.QuizBuilder, tmpl *template.Template) *Server {
	return &Server{
		places:  places,
		builder: builder,
		tmpl:    tmpl,
	}
}

func (s *Server) routes(r chi.Router) {
	r.Get("/", s.handleIndex)
	r.Get("/quiz/{placeID}", s.handleQuiz)
	r.Post("/answer", s.handleAnswer)
}

// handleIndex serves the quiz page with a freshly built payload for a
// random place embedded as inline JSON.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.places == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": configErrorMessage})
		return
	}

	place, err := s.places.RandomPlace(r.Context())
	if err != nil {
		log.Printf("Failed to fetch random place: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to fetch place data"})
		return
	}

	quiz := s.builder.BuildQuiz(r.Context(), *place)
	quizJSON, err := json.Marshal(quiz)
	if err != nil {
		http.Error(w, "Failed to encode quiz", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = s.tmpl.Execute(w, map[string]interface{}{
		"QuizData": template.JS(quizJSON),
	})
	if err != nil {
		log.Printf("Template error in index: %v", err)
	}
}

// handleQuiz serves a JSON quiz payload for a specific place id.
func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	if s.places == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": configErrorMessage})
		return
	}

	placeID := chi.URLParam(r, "placeID")
	place, err := s.places.Place(r.Context(), placeID)
	if err != nil {
		if errors.Is(err, nandoku.ErrPlaceNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "City not found"})
			return
		}
		log.Printf("Failed to fetch place %q: %v", placeID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to fetch place data"})
		return
	}

	writeJSON(w, http.StatusOK, s.builder.BuildQuiz(r.Context(), *place))
}

// handleAnswer checks a submitted answer. Fields are decoded as pointers
// so a missing field is distinguishable from a legal empty string.
func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QuizID        *string `json:"quiz_id"`
		Answer        *string `json:"answer"`
		CorrectAnswer *string `json:"correct_answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Request body must be valid JSON"})
		return
	}
	if req.QuizID == nil || req.Answer == nil || req.CorrectAnswer == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "quiz_id, answer and correct_answer are required"})
		return
	}

	result := nandoku.CheckAnswer(nandoku.AnswerSubmission{
		QuizID:        *req.QuizID,
		Answer:        *req.Answer,
		CorrectAnswer: *req.CorrectAnswer,
	})
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
