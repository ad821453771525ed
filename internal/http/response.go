package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"regie/internal/core"
)

// entryResponse is the JSON shape of a persisted monthly record. Money
// travels as 2-decimal strings so the shell never touches floats.
type entryResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	CommuneID    string `json:"communeId,omitempty"`
	CommuneName  string `json:"communeName,omitempty"`
	ExerciseYear string `json:"exerciseYear,omitempty"`
	Chap         string `json:"chap,omitempty"`
	Art          string `json:"art,omitempty"`
	Prog         string `json:"prog,omitempty"`
	Proj         string `json:"proj,omitempty"`
	Ligne        string `json:"ligne,omitempty"`

	PresentAmount  string `json:"presentAmount"`
	AdmittedAmount string `json:"admittedAmount"`
	ReportPrevious string `json:"reportPrevious"`
	RejectedAmount string `json:"rejectedAmount"`
	TotalGeneral   string `json:"totalGeneral"`

	FilePath string `json:"filePath,omitempty"`
}

func toEntryResponse(e *core.MonthlyEntry) *entryResponse {
	if e == nil {
		return nil
	}
	return &entryResponse{
		Year:           e.Year,
		Month:          e.Month,
		CommuneID:      e.Scope.CommuneID,
		CommuneName:    e.Scope.CommuneName,
		ExerciseYear:   e.Scope.ExerciseYear,
		Chap:           e.Scope.Chap,
		Art:            e.Scope.Art,
		Prog:           e.Scope.Prog,
		Proj:           e.Scope.Proj,
		Ligne:          e.Scope.Ligne,
		PresentAmount:  e.PresentAmount.String(),
		AdmittedAmount: e.AdmittedAmount.String(),
		ReportPrevious: e.ReportPrevious.String(),
		RejectedAmount: e.RejectedAmount.String(),
		TotalGeneral:   e.TotalGeneral.String(),
		FilePath:       e.FilePath,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, core.ErrInvalidPeriod) {
		status = http.StatusUnprocessableEntity
	}
	if status >= 500 {
		slog.ErrorContext(r.Context(), "Request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	w.WriteHeader(http.StatusMethodNotAllowed)
}
