package status

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/KirkDiggler/mafia/internal/common/log"
)

// GameCounter reports how many games are running
type GameCounter interface {
	Count() int
}

// Config holds the configuration for the status handler
type Config struct {
	Games GameCounter
}

// StatusError is a custom error type for status handler errors
type StatusError string

// Error implements the error interface
func (e StatusError) Error() string {
	return string(e)
}

const (
	ErrNilConfig StatusError = "config cannot be nil"
	ErrNilGames  StatusError = "game counter cannot be nil"
)

// GamesResponse is the body of GET /games
type GamesResponse struct {
	ActiveGames int `json:"active_games"`
}

// Handler serves the operator status endpoints
type Handler struct {
	games GameCounter
}

// New creates a status handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Games == nil {
		return nil, ErrNilGames
	}

	return &Handler{games: cfg.Games}, nil
}

// Router returns the status routes
func (h *Handler) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/games", h.Games).Methods(http.MethodGet)
	return r
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// Games handles GET /games
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(&GamesResponse{ActiveGames: h.games.Count()}); err != nil {
		log.Error("failed to write games response: %v", err)
	}
}
