package api

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/flitgame/flit-server/internal/atlas"
	"github.com/flitgame/flit-server/internal/economy"
	"github.com/flitgame/flit-server/internal/scan"
	"github.com/flitgame/flit-server/internal/store"
)

// leaderboardProbe is the cheap read used by health checks.
var leaderboardProbe = store.LeaderboardQuery{Period: store.PeriodAllTime, Limit: 1}

// Server handles HTTP requests for rounds, results, the economy, and
// seed curation.
type Server struct {
	db           store.DB
	atlas        *atlas.Atlas
	economy      *economy.Service
	scanner      *scan.Scanner
	errorHandler *ErrorHandler
	logger       *log.Logger
	dailyKey     []byte
	adminToken   string
	startTime    time.Time
}

// NewServer creates a new API server over the given store and atlas.
func NewServer(db store.DB, src *atlas.Atlas, dailyKey []byte, adminToken string) *Server {
	logger := log.New(os.Stdout, "[API] ", log.LstdFlags|log.Lshortfile)

	return &Server{
		db:           db,
		atlas:        src,
		economy:      economy.NewService(db),
		scanner:      scan.NewScanner(src),
		errorHandler: NewErrorHandler(logger),
		logger:       logger,
		dailyKey:     dailyKey,
		adminToken:   adminToken,
		startTime:    time.Now(),
	}
}

// Routes sets up the HTTP routes with proper middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.RequestLoggingMiddleware)
	r.Use(s.errorHandler.RecoveryHandler)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(s.CORSMiddleware)

	r.Get("/health", s.handleHealthCheck)
	r.Get("/health/ready", s.handleReadiness)
	r.Get("/health/live", s.handleLiveness)
	r.Get("/version", s.handleVersion)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/rounds", s.handleCreateRound)
		r.Post("/rounds/replay", s.handleReplayRound)
		r.Get("/rounds/daily", s.handleDailyRound)
		r.Post("/results", s.handleSubmitResult)
		r.Get("/results/{id}", s.handleGetResult)
		r.Get("/leaderboard", s.handleLeaderboard)

		r.Get("/shop/catalog", s.handleCatalog)
		r.Post("/shop/purchase", s.handlePurchase)
		r.Post("/coins/send", s.handleSendCoins)
		r.Get("/coins/balance", s.handleBalance)
		r.Get("/cosmetics", s.handleOwnedCosmetics)

		r.Put("/profile", s.handleUpsertProfile)
		r.Get("/profile/{playerID}", s.handleGetProfile)

		r.Group(func(r chi.Router) {
			r.Use(s.RequireAdmin)
			r.Post("/scan", s.handleScan)
			r.Post("/admin/stats/increment", s.handleIncrementStat)
			r.Get("/admin/stats/{playerID}", s.handleGetStats)
			r.Post("/admin/coins/grant", s.handleGrantCoins)
		})
	})

	return r
}

// writeJSON writes a JSON response with proper headers.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Engine-Version", EngineVersion)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// decodeJSON parses a request body into dst with unknown fields
// rejected, so client typos surface as 400s instead of zero values.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
