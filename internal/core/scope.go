package core

import "strings"

// Scope carries the administrative and budget dimensions that partition
// independent ledgers: commune, exercise year and the budget coordinates
// (chapter, article, program, project, line).
//
// A blank field (after trimming) is a wildcard: it matches any stored
// value, and a stored blank matches any queried value. CommuneName is
// display-only and never participates in matching.
type Scope struct {
	CommuneID    string
	CommuneName  string
	ExerciseYear string
	Chap         string
	Art          string
	Prog         string
	Proj         string
	Ligne        string
}

// Normalize trims every field and applies the commune fallback: when no
// commune identifier is given, the displayed commune name stands in for it.
func (s Scope) Normalize() Scope {
	out := Scope{
		CommuneID:    strings.TrimSpace(s.CommuneID),
		CommuneName:  strings.TrimSpace(s.CommuneName),
		ExerciseYear: strings.TrimSpace(s.ExerciseYear),
		Chap:         strings.TrimSpace(s.Chap),
		Art:          strings.TrimSpace(s.Art),
		Prog:         strings.TrimSpace(s.Prog),
		Proj:         strings.TrimSpace(s.Proj),
		Ligne:        strings.TrimSpace(s.Ligne),
	}
	if out.CommuneID == "" {
		out.CommuneID = out.CommuneName
	}
	return out
}

// fieldMatches implements wildcard equality for one dimension: a blank on
// either side matches anything, otherwise values compare case-insensitively.
func fieldMatches(query, stored string) bool {
	query = strings.TrimSpace(query)
	stored = strings.TrimSpace(stored)
	if query == "" || stored == "" {
		return true
	}
	return strings.EqualFold(query, stored)
}

// matchDimensions lists the dimensions that participate in scope matching,
// pairing the query value with the stored value. Evaluating this flat list
// replaces column-by-column conditional query building.
func matchDimensions(query, stored Scope) [][2]string {
	return [][2]string{
		{query.CommuneID, stored.CommuneID},
		{query.ExerciseYear, stored.ExerciseYear},
		{query.Chap, stored.Chap},
		{query.Art, stored.Art},
		{query.Prog, stored.Prog},
		{query.Proj, stored.Proj},
		{query.Ligne, stored.Ligne},
	}
}

// Matches reports whether every matching dimension of s is wildcard-
// compatible with the stored scope.
func (s Scope) Matches(stored Scope) bool {
	for _, dim := range matchDimensions(s, stored) {
		if !fieldMatches(dim[0], dim[1]) {
			return false
		}
	}
	return true
}

// Key returns the canonical fingerprint of the matching dimensions, used
// as the persistence uniqueness key alongside the period. Two scopes with
// the same key describe the same ledger.
func (s Scope) Key() string {
	n := s.Normalize()
	parts := []string{
		n.CommuneID,
		n.ExerciseYear,
		n.Chap,
		n.Art,
		n.Prog,
		n.Proj,
		n.Ligne,
	}
	for i := range parts {
		parts[i] = strings.ToLower(parts[i])
	}
	return strings.Join(parts, "|")
}

// IsWildcard reports whether every matching dimension is blank.
func (s Scope) IsWildcard() bool {
	n := s.Normalize()
	return n.CommuneID == "" && n.ExerciseYear == "" && n.Chap == "" &&
		n.Art == "" && n.Prog == "" && n.Proj == "" && n.Ligne == ""
}
