package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/stake-service/internal/stake-service/repo"
	"github.com/radieske/stake-service/internal/stake-service/stake"
)

// HighStakesCache guarda a lista de high stakes por aposta no Redis
// Client: cliente Redis
// TTL: tempo de expiração dos registros
type HighStakesCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewHighStakesCache cria o cache com TTL configurável
func NewHighStakesCache(c *redis.Client, ttl time.Duration) *HighStakesCache {
	return &HighStakesCache{Client: c, TTL: ttl}
}

func key(betID stake.BetID) string { return "highstakes:" + betID.String() }

// Get devolve (lista, true) em cache hit; (nil, false) em miss
func (c *HighStakesCache) Get(ctx context.Context, betID stake.BetID) ([]repo.HighStake, bool, error) {
	b, err := c.Client.Get(ctx, key(betID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var out []repo.HighStake
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, false, err
	}
	return out, true, nil
}

// Set armazena a lista da aposta com o TTL do cache
func (c *HighStakesCache) Set(ctx context.Context, betID stake.BetID, list []repo.HighStake) error {
	if list == nil {
		list = []repo.HighStake{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key(betID), b, c.TTL).Err()
}

// Invalidate remove a entrada da aposta; chamado após cada stake gravado
func (c *HighStakesCache) Invalidate(ctx context.Context, betID stake.BetID) error {
	return c.Client.Del(ctx, key(betID)).Err()
}
