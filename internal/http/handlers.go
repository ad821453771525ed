package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"regie/internal/core"
	"regie/internal/ledger"
)

func (s *Server) handlePreviousPeriod(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	year, month := parsePeriod(r)
	prev, err := core.PreviousPeriod(year, month)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"year": prev.Year, "month": prev.Month})
}

func (s *Server) handlePreviousBordereau(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	year, month := parsePeriod(r)
	entry, err := s.ledger.PreviousMonthBordereau(r.Context(), year, month, scopeFromQuery(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

func (s *Server) handlePreviousTotal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	year, month := parsePeriod(r)
	scope := scopeFromQuery(r)

	cacheKey := fmt.Sprintf("%d|%d|%s", year, month, scope.Key())
	if total, ok := s.previousTotals.Get(cacheKey); ok {
		writeJSON(w, http.StatusOK, map[string]string{"totalGeneral": total.String()})
		return
	}

	total, err := s.ledger.PreviousTotalGeneral(r.Context(), year, month, scope)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.previousTotals.Set(cacheKey, total)
	writeJSON(w, http.StatusOK, map[string]string{"totalGeneral": total.String()})
}

// handleBordereaux serves GET (read one period) and POST (finalize and
// persist a period's totals).
func (s *Server) handleBordereaux(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.getBordereau(w, r)
	case http.MethodPost:
		s.upsertBordereau(w, r)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

func (s *Server) getBordereau(w http.ResponseWriter, r *http.Request) {
	year, month := parsePeriod(r)
	entry, err := s.ledger.MonthlyTotals(r.Context(), year, month)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

func (s *Server) upsertBordereau(w http.ResponseWriter, r *http.Request) {
	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body: " + err.Error()})
		return
	}

	params := ledger.MonthlyTotalsParams{
		Year:     req.Year,
		Month:    req.Month,
		Scope:    req.scope(),
		Present:  req.present(),
		FilePath: req.FilePath,
	}
	if req.ReportPreviousBordereau != nil {
		// Manual report may be negative after a correction.
		report := core.NormalizeMoney(req.ReportPreviousBordereau.String(), core.Money{}, true)
		params.Overrides.ReportPrevious = &report
	}
	if req.RejectedAmount != nil {
		rejected := core.NormalizeMoney(req.RejectedAmount.String(), core.Money{}, false)
		params.Overrides.RejectedAmount = &rejected
	}
	if req.AdmittedAmount != nil {
		admitted := core.NormalizeMoney(req.AdmittedAmount.String(), core.Money{}, false)
		params.Overrides.AdmittedAmount = &admitted
	}

	persisted, err := s.ledger.FinalizeMonthlyTotals(r.Context(), params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// Any cached carry-over may now be stale.
	s.previousTotals.Purge()

	writeJSON(w, http.StatusOK, toEntryResponse(&persisted))
}
