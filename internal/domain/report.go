package domain

// Report is a human-readable rendering of a settlement plan, ready to be
// copied into a chat message.
type Report struct {
	SettlementID string   `json:"settlement_id"`
	Lines        []string `json:"lines"`
	Text         string   `json:"text"`
}
