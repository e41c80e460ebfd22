package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/stake-service/internal/stake-service/stake"
)

const sessionKeyPrefix = "sessionkey="

// submitStake grava o stake de um cliente numa aposta.
// Ordem fixa: path -> sessão -> corpo -> gravação; a primeira falha encerra.
func (s *Server) submitStake(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	betID, customerID, amount, err := s.processStake(r)
	status, msg := stake.Classify(err)

	switch status {
	case http.StatusOK:
		writeText(w, http.StatusOK, "")
		s.log.Info("stake recorded",
			zap.Uint32("betId", uint32(betID)),
			zap.Uint32("customerId", uint32(customerID)),
			zap.Uint32("amount", uint32(amount)),
		)
	case http.StatusInternalServerError:
		s.log.Error("stake processing error", zap.Error(err))
		writeText(w, status, msg)
	default:
		writeText(w, status, msg)
	}

	if s.OnRequest != nil {
		s.OnRequest(outcome(status), time.Since(start))
	}
}

func (s *Server) processStake(r *http.Request) (stake.BetID, stake.CustomerID, stake.Amount, error) {
	// 1) Estrutura da requisição
	betID, err := parseBetIDFromPath(r.URL.Path)
	if err != nil {
		return 0, 0, 0, err
	}
	key, err := extractSessionKey(r.URL.RawQuery)
	if err != nil {
		return 0, 0, 0, err
	}

	// 2) Autenticação
	customerID, err := s.validateSession(r, key)
	if err != nil {
		return 0, 0, 0, err
	}

	// 3) Valor do stake
	amount, err := readStakeAmount(r.Body)
	if err != nil {
		return 0, 0, 0, err
	}

	// 4) Gravação
	if err := s.stakes.RecordStake(r.Context(), betID, customerID, amount); err != nil {
		return 0, 0, 0, fmt.Errorf("record stake: %w", err)
	}
	return betID, customerID, amount, nil
}

// parseBetIDFromPath exige ao menos 3 segmentos ("", betId, ...); segmentos
// vazios no fim não contam, então "/42/" tem só 2
func parseBetIDFromPath(path string) (stake.BetID, error) {
	segments := splitPath(path)
	if len(segments) < 3 {
		return 0, stake.Malformed("Invalid path format")
	}
	return stake.ParseBetID(segments[1])
}

func splitPath(path string) []string {
	segments := strings.Split(path, "/")
	for len(segments) > 0 && segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}
	return segments
}

// extractSessionKey usa a query crua: sem decode e sem trim
func extractSessionKey(rawQuery string) (string, error) {
	if rawQuery == "" || !strings.HasPrefix(rawQuery, sessionKeyPrefix) {
		return "", stake.Malformed("Missing session key")
	}
	return strings.TrimPrefix(rawQuery, sessionKeyPrefix), nil
}

func (s *Server) validateSession(r *http.Request, key string) (stake.CustomerID, error) {
	customerID, err := s.sessions.CustomerID(r.Context(), key)
	if err != nil && !errors.Is(err, stake.ErrSessionNotFound) {
		return 0, fmt.Errorf("resolve session: %w", err)
	}
	if err == nil {
		valid, verr := s.sessions.IsValid(r.Context(), key)
		if verr != nil {
			return 0, fmt.Errorf("check session: %w", verr)
		}
		if valid {
			return customerID, nil
		}
	}
	s.log.Warn("invalid session attempt", zap.String("sessionKey", key))
	return 0, stake.ErrAuthenticationFailed
}

// readStakeAmount lê o corpo inteiro; o Close acontece em qualquer saída
func readStakeAmount(body io.ReadCloser) (stake.Amount, error) {
	if body == nil {
		return stake.ParseAmount("")
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return 0, fmt.Errorf("read body: %w", err)
	}
	return stake.ParseAmount(strings.TrimSpace(string(data)))
}

func outcome(status int) string {
	switch status {
	case http.StatusOK:
		return "ok"
	case http.StatusBadRequest:
		return "malformed"
	case http.StatusUnauthorized:
		return "unauthorized"
	default:
		return "error"
	}
}
