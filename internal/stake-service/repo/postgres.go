package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/radieske/stake-service/internal/stake-service/stake"
)

// HighStakesLimit é o máximo de clientes devolvidos por aposta
const HighStakesLimit = 20

// Postgres implementa a persistência de stakes em banco Postgres
type Postgres struct {
	db  *sql.DB
	now func() time.Time
}

// NewPostgres retorna uma instância do repositório de stakes
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db, now: time.Now} }

// Insert grava um novo stake e devolve o registro com id e data preenchidos
func (p *Postgres) Insert(ctx context.Context, betID stake.BetID, customerID stake.CustomerID, amount stake.Amount) (Stake, error) {
	s := Stake{
		ID:         uuid.NewString(),
		BetID:      betID,
		CustomerID: customerID,
		Amount:     amount,
		CreatedAt:  p.now().UTC(),
	}
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO stakes (id,bet_id,customer_id,amount,created_at)
		VALUES ($1,$2,$3,$4,$5)`,
		s.ID, int64(s.BetID), int64(s.CustomerID), int64(s.Amount), s.CreatedAt,
	)
	if err != nil {
		return Stake{}, fmt.Errorf("insert stake: %w", err)
	}
	return s, nil
}

// TopStakes retorna o maior stake de cada cliente na aposta, em ordem decrescente
// de valor (empate: menor customer_id primeiro), limitado a HighStakesLimit
func (p *Postgres) TopStakes(ctx context.Context, betID stake.BetID) ([]HighStake, error) {
	const q = `
		SELECT customer_id, MAX(amount) AS amount
		FROM stakes
		WHERE bet_id = $1
		GROUP BY customer_id
		ORDER BY amount DESC, customer_id ASC
		LIMIT $2
	`
	rows, err := p.db.QueryContext(ctx, q, int64(betID), HighStakesLimit)
	if err != nil {
		return nil, fmt.Errorf("query top stakes: %w", err)
	}
	defer rows.Close()

	out := make([]HighStake, 0, HighStakesLimit)
	for rows.Next() {
		var customerID, amount int64
		if err := rows.Scan(&customerID, &amount); err != nil {
			return nil, fmt.Errorf("scan top stakes: %w", err)
		}
		out = append(out, HighStake{CustomerID: stake.CustomerID(customerID), Amount: stake.Amount(amount)})
	}
	return out, rows.Err()
}
