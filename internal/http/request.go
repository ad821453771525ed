package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"regie/internal/core"
)

// looseString accepts whatever JSON scalar the shell sends for a scope or
// money field. Numbers and booleans are stringified; null and anything
// that cannot be stringified collapse to the empty string (wildcard).
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = ""
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = looseString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*s = looseString(num.String())
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*s = looseString(strconv.FormatBool(b))
		return nil
	}

	// Arrays, objects: tolerated as wildcard rather than rejected.
	*s = ""
	return nil
}

func (s looseString) String() string {
	return string(s)
}

// upsertRequest is the POST /api/bordereaux body. The present amount may
// be given directly or derived from the payroll rows.
type upsertRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	CommuneID    looseString `json:"communeId"`
	CommuneName  looseString `json:"communeName"`
	ExerciseYear looseString `json:"exerciseYear"`
	Chap         looseString `json:"chap"`
	Art          looseString `json:"art"`
	Prog         looseString `json:"prog"`
	Proj         looseString `json:"proj"`
	Ligne        looseString `json:"ligne"`

	PresentAmount looseString `json:"presentAmount"`
	Rows          []netRow    `json:"rows"`

	// Manual overrides; absent fields keep the automatic derivations.
	ReportPreviousBordereau *looseString `json:"reportPreviousBordereau"`
	RejectedAmount          *looseString `json:"rejectedAmount"`
	AdmittedAmount          *looseString `json:"admittedAmount"`

	FilePath string `json:"filePath"`
}

type netRow struct {
	WorkerName string      `json:"workerName"`
	NetAmount  looseString `json:"netAmount"`
}

func (r upsertRequest) scope() core.Scope {
	return core.Scope{
		CommuneID:    r.CommuneID.String(),
		CommuneName:  r.CommuneName.String(),
		ExerciseYear: r.ExerciseYear.String(),
		Chap:         r.Chap.String(),
		Art:          r.Art.String(),
		Prog:         r.Prog.String(),
		Proj:         r.Proj.String(),
		Ligne:        r.Ligne.String(),
	}
}

// present resolves the period's present amount: the explicit scalar when
// given, otherwise the sum of the payroll rows.
func (r upsertRequest) present() core.Money {
	if strings.TrimSpace(r.PresentAmount.String()) != "" {
		return core.ParseMoney(r.PresentAmount.String(), core.Money{}).Clamped()
	}
	rows := make([]core.NetRow, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, core.NetRow{
			WorkerName: row.WorkerName,
			NetAmount:  core.ParseMoney(row.NetAmount.String(), core.Money{}).Decimal(),
		})
	}
	return core.SumNetRows(rows)
}

// parsePeriod extracts year and month from query parameters. Missing or
// malformed values become zero and fail period validation downstream.
func parsePeriod(r *http.Request) (year, month int) {
	if v := strings.TrimSpace(r.URL.Query().Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			year = y
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("month")); v != "" {
		if m, err := strconv.Atoi(v); err == nil {
			month = m
		}
	}
	return year, month
}

// scopeFromQuery reads the scope dimensions from query parameters.
func scopeFromQuery(r *http.Request) core.Scope {
	q := r.URL.Query()
	return core.Scope{
		CommuneID:    q.Get("communeId"),
		CommuneName:  q.Get("communeName"),
		ExerciseYear: q.Get("exerciseYear"),
		Chap:         q.Get("chap"),
		Art:          q.Get("art"),
		Prog:         q.Get("prog"),
		Proj:         q.Get("proj"),
		Ligne:        q.Get("ligne"),
	}
}
