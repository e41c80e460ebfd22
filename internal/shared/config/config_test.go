package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "stake-service", cfg.ServiceName)
	require.Equal(t, "stake_recorded", cfg.TopicStakeRecorded)
	require.Equal(t, 30*time.Second, cfg.HighStakesTTL)
	require.Equal(t, "8084", cfg.HTTPPort)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("HTTP_PORT_STAKE", "9000")
	t.Setenv("HIGHSTAKES_CACHE_TTL", "2m")
	t.Setenv("KAFKA_TOPIC_STAKE_RECORDED", "stakes_v2")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "9000", cfg.HTTPPort)
	require.Equal(t, 2*time.Minute, cfg.HighStakesTTL)
	require.Equal(t, "stakes_v2", cfg.TopicStakeRecorded)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("HIGHSTAKES_CACHE_TTL", "soon")
	_, err := Load()
	require.Error(t, err)
}
