package amqp

import (
	"encoding/json"
	"time"
)

// LedgerUpsertMessage announces that a period's monthly record has been
// persisted. It carries only the key; the recap worker re-reads the full
// record from storage.
type LedgerUpsertMessage struct {
	Year              int       `json:"year"`
	Month             int       `json:"month"`
	ScopeKey          string    `json:"scopeKey"`
	TotalGeneralCents int64     `json:"totalGeneralCents"`
	Timestamp         time.Time `json:"timestamp"`
}

func NewLedgerUpsertMessage(year, month int, scopeKey string, totalGeneralCents int64) *LedgerUpsertMessage {
	return &LedgerUpsertMessage{
		Year:              year,
		Month:             month,
		ScopeKey:          scopeKey,
		TotalGeneralCents: totalGeneralCents,
		Timestamp:         time.Now(),
	}
}

func (m *LedgerUpsertMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func LedgerUpsertMessageFromJSON(data []byte) (*LedgerUpsertMessage, error) {
	var msg LedgerUpsertMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
