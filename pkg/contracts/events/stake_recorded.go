package events

// Evento publicado no tópico "stake_recorded" após o stake ser persistido
type StakeRecorded struct {
	StakeID    string `json:"stake_id"`
	BetID      uint32 `json:"bet_id"`
	CustomerID uint32 `json:"customer_id"`
	Amount     uint32 `json:"amount"`
	TsUnixMs   int64  `json:"ts_unix_ms"`
}
