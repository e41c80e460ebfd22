package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/stake-service/internal/stake-service/repo"
	"github.com/radieske/stake-service/internal/stake-service/stake"
)

type memCache struct {
	data   map[stake.BetID][]repo.HighStake
	getErr error
	sets   int
}

func (m *memCache) Get(_ context.Context, betID stake.BetID) ([]repo.HighStake, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	list, ok := m.data[betID]
	return list, ok, nil
}

func (m *memCache) Set(_ context.Context, betID stake.BetID, list []repo.HighStake) error {
	m.sets++
	m.data[betID] = list
	return nil
}

func getHighStakes(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHighStakesFromDatabaseThenCache(t *testing.T) {
	reader := &fakeReader{lists: map[stake.BetID][]repo.HighStake{
		42: {{CustomerID: 9, Amount: 1000}, {CustomerID: 7, Amount: 500}},
	}}
	cache := &memCache{data: map[stake.BetID][]repo.HighStake{}}
	h := NewServer(zap.NewNop(), &fakeSessions{}, &fakeStakes{}, reader, cache).Router()

	rec := getHighStakes(h, "/42/highstakes")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "9=1000,7=500", rec.Body.String())
	require.Equal(t, 1, reader.calls)
	require.Equal(t, 1, cache.sets)

	rec = getHighStakes(h, "/42/highstakes")
	require.Equal(t, "9=1000,7=500", rec.Body.String())
	require.Equal(t, 1, reader.calls)
}

func TestHighStakesEmpty(t *testing.T) {
	h := NewServer(zap.NewNop(), &fakeSessions{}, &fakeStakes{}, &fakeReader{}, nil).Router()

	rec := getHighStakes(h, "/5/highstakes")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestHighStakesInvalidBetID(t *testing.T) {
	reader := &fakeReader{}
	h := NewServer(zap.NewNop(), &fakeSessions{}, &fakeStakes{}, reader, nil).Router()

	rec := getHighStakes(h, "/abc/highstakes")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid request: Invalid bet ID format", rec.Body.String())
	require.Zero(t, reader.calls)
}

func TestHighStakesCacheErrorFallsBackToDatabase(t *testing.T) {
	reader := &fakeReader{lists: map[stake.BetID][]repo.HighStake{1: {{CustomerID: 3, Amount: 30}}}}
	cache := &memCache{data: map[stake.BetID][]repo.HighStake{}, getErr: errors.New("redis timeout")}
	h := NewServer(zap.NewNop(), &fakeSessions{}, &fakeStakes{}, reader, cache).Router()

	rec := getHighStakes(h, "/1/highstakes")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "3=30", rec.Body.String())
	require.Equal(t, 1, reader.calls)
}

func TestHighStakesDatabaseError(t *testing.T) {
	reader := &fakeReader{err: errors.New("pq: too many connections")}
	h := NewServer(zap.NewNop(), &fakeSessions{}, &fakeStakes{}, reader, nil).Router()

	rec := getHighStakes(h, "/1/highstakes")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "Internal server error", rec.Body.String())
}

func TestFormatHighStakes(t *testing.T) {
	require.Equal(t, "", formatHighStakes(nil))
	require.Equal(t, "1=2", formatHighStakes([]repo.HighStake{{CustomerID: 1, Amount: 2}}))
}
