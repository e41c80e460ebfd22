package repo

import (
	"time"

	"github.com/radieske/stake-service/internal/stake-service/stake"
)

// Stake é o modelo persistido no Postgres.
type Stake struct {
	ID         string
	BetID      stake.BetID
	CustomerID stake.CustomerID
	Amount     stake.Amount
	CreatedAt  time.Time
}

// HighStake é o maior valor apostado por um cliente em uma aposta
type HighStake struct {
	CustomerID stake.CustomerID `json:"customerId"`
	Amount     stake.Amount     `json:"amount"`
}
