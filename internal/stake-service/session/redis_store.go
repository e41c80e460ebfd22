package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/stake-service/internal/stake-service/stake"
)

// RedisStore resolve sessões emitidas por outro serviço e gravadas no Redis:
//
//	session:<key>         -> customer id (decimal), com TTL da sessão
//	session:revoked:<key> -> marcador de sessão revogada
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore retorna a implementação de lookup de sessão sobre Redis
func NewRedisStore(rdb *redis.Client) *RedisStore { return &RedisStore{rdb: rdb} }

func sessionKey(k string) string { return "session:" + k }
func revokedKey(k string) string { return "session:revoked:" + k }

// CustomerID devolve o cliente dono da sessão ou stake.ErrSessionNotFound
func (s *RedisStore) CustomerID(ctx context.Context, key string) (stake.CustomerID, error) {
	if key == "" {
		return 0, stake.ErrSessionNotFound
	}
	v, err := s.rdb.Get(ctx, sessionKey(key)).Result()
	if err == redis.Nil {
		return 0, stake.ErrSessionNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("get session: %w", err)
	}
	id, ok := stake.ParseUnsigned(v)
	if !ok {
		return 0, stake.ErrSessionNotFound
	}
	return stake.CustomerID(id), nil
}

// IsValid confirma que a sessão existe, não expirou e não foi revogada
func (s *RedisStore) IsValid(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, nil
	}

	pipe := s.rdb.Pipeline()
	ttlCmd := pipe.PTTL(ctx, sessionKey(key))
	revokedCmd := pipe.Exists(ctx, revokedKey(key))
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("check session: %w", err)
	}

	if revokedCmd.Val() > 0 {
		return false, nil
	}
	// PTTL: -2 chave inexistente, -1 sem expiração
	ttl := ttlCmd.Val()
	switch {
	case ttl == -1:
		return true, nil
	case ttl > 0:
		return true, nil
	default:
		return false, nil
	}
}

// Ping verifica se o Redis de sessões está acessível (healthz)
func (s *RedisStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return s.rdb.Ping(ctx).Err()
}
