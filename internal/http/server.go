// Package http exposes the ledger engine to the desktop shell over a
// local JSON API.
package http

import (
	"net/http"
	"time"

	"regie/internal/cache"
	"regie/internal/core"
	"regie/internal/ledger"
	"regie/internal/middleware/trace"
)

type Server struct {
	ledger *ledger.Service

	// previousTotals caches carry-over lookups keyed by period and scope
	// key. Purged wholesale on every upsert: a retroactive edit can move
	// any scope's chain.
	previousTotals *cache.LRUCache[core.Money]
}

// NewServer builds the API server around a ledger service.
func NewServer(addr string, svc *ledger.Service, cacheSize int, cacheTTL time.Duration) *http.Server {
	s := &Server{
		ledger:         svc,
		previousTotals: cache.NewLRUCache[core.Money](cacheSize, cacheTTL),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/periods/previous", s.handlePreviousPeriod)
	mux.HandleFunc("/api/bordereaux", s.handleBordereaux)
	mux.HandleFunc("/api/bordereaux/previous", s.handlePreviousBordereau)
	mux.HandleFunc("/api/bordereaux/previous-total", s.handlePreviousTotal)

	return &http.Server{
		Addr:    addr,
		Handler: trace.Middleware(mux),
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
