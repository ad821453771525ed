package core

import "testing"

func TestScopeNormalize(t *testing.T) {
	s := Scope{
		CommuneName:  "  Ouled Naceur ",
		ExerciseYear: " 2024",
		Chap:         "10 ",
	}
	n := s.Normalize()
	if n.CommuneName != "Ouled Naceur" {
		t.Errorf("CommuneName = %q", n.CommuneName)
	}
	if n.CommuneID != "Ouled Naceur" {
		t.Errorf("CommuneID should default to CommuneName, got %q", n.CommuneID)
	}
	if n.ExerciseYear != "2024" || n.Chap != "10" {
		t.Errorf("fields not trimmed: %+v", n)
	}

	// Explicit commune id wins over the name.
	n = Scope{CommuneID: "C-7", CommuneName: "Ouled Naceur"}.Normalize()
	if n.CommuneID != "C-7" {
		t.Errorf("CommuneID = %q, want C-7", n.CommuneID)
	}
}

func TestScopeMatches(t *testing.T) {
	tests := []struct {
		name   string
		query  Scope
		stored Scope
		want   bool
	}{
		{
			name:   "exact match",
			query:  Scope{Chap: "10", Art: "20"},
			stored: Scope{Chap: "10", Art: "20"},
			want:   true,
		},
		{
			name:   "case-insensitive trimmed match",
			query:  Scope{CommuneID: " ouled naceur "},
			stored: Scope{CommuneID: "OULED NACEUR"},
			want:   true,
		},
		{
			name:   "blank stored chap matches any query",
			query:  Scope{Chap: "10"},
			stored: Scope{},
			want:   true,
		},
		{
			name:   "blank query matches explicit stored chap",
			query:  Scope{},
			stored: Scope{Chap: "10"},
			want:   true,
		},
		{
			name:   "explicit mismatch",
			query:  Scope{Chap: "10"},
			stored: Scope{Chap: "11"},
			want:   false,
		},
		{
			name:   "commune name never participates",
			query:  Scope{CommuneName: "A"},
			stored: Scope{CommuneName: "B"},
			want:   true,
		},
		{
			name:   "one dimension off fails the whole scope",
			query:  Scope{Chap: "10", Art: "20", Ligne: "14"},
			stored: Scope{Chap: "10", Art: "20", Ligne: "15"},
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.Matches(tt.stored); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScopeKey(t *testing.T) {
	a := Scope{CommuneID: "Ouled Naceur", Chap: "10", Art: "20"}
	b := Scope{CommuneID: " OULED NACEUR ", Chap: "10 ", Art: " 20"}
	if a.Key() != b.Key() {
		t.Errorf("equivalent scopes produced different keys: %q vs %q", a.Key(), b.Key())
	}

	c := Scope{CommuneID: "Ouled Naceur", Chap: "11", Art: "20"}
	if a.Key() == c.Key() {
		t.Errorf("different scopes produced the same key: %q", a.Key())
	}

	// Display name is excluded from the key.
	d := Scope{CommuneID: "C-7", CommuneName: "whatever"}
	e := Scope{CommuneID: "C-7", CommuneName: "something else"}
	if d.Key() != e.Key() {
		t.Errorf("commune name leaked into the key")
	}

	if !(Scope{}).IsWildcard() {
		t.Error("zero scope should be wildcard")
	}
	if (Scope{Chap: "10"}).IsWildcard() {
		t.Error("scope with chap should not be wildcard")
	}
}
