package amqp

import "testing"

func TestLedgerUpsertMessageRoundTrip(t *testing.T) {
	msg := NewLedgerUpsertMessage(2024, 6, "a|2024|10|20|20|10|14", 423456)

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded, err := LedgerUpsertMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Year != 2024 || decoded.Month != 6 {
		t.Errorf("period = %d/%d", decoded.Month, decoded.Year)
	}
	if decoded.ScopeKey != msg.ScopeKey || decoded.TotalGeneralCents != 423456 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestLedgerUpsertMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := LedgerUpsertMessageFromJSON([]byte("not json")); err == nil {
		t.Fatal("expected error for malformed body")
	}
}
