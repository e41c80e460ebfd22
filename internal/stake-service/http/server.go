package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/radieske/stake-service/internal/stake-service/repo"
	"github.com/radieske/stake-service/internal/stake-service/stake"
)

// SessionService resolve e valida a session key enviada na query
type SessionService interface {
	CustomerID(ctx context.Context, sessionKey string) (stake.CustomerID, error)
	IsValid(ctx context.Context, sessionKey string) (bool, error)
}

// StakeService grava o stake validado
type StakeService interface {
	RecordStake(ctx context.Context, betID stake.BetID, customerID stake.CustomerID, amount stake.Amount) error
}

// HighStakesReader lê os maiores stakes de uma aposta (banco)
type HighStakesReader interface {
	TopStakes(ctx context.Context, betID stake.BetID) ([]repo.HighStake, error)
}

// HighStakesCache é o cache opcional da leitura de high stakes
type HighStakesCache interface {
	Get(ctx context.Context, betID stake.BetID) ([]repo.HighStake, bool, error)
	Set(ctx context.Context, betID stake.BetID, list []repo.HighStake) error
}

// Server expõe os endpoints HTTP de stake
type Server struct {
	log      *zap.Logger
	sessions SessionService
	stakes   StakeService
	reader   HighStakesReader
	cache    HighStakesCache

	OnRequest func(outcome string, d time.Duration) // métricas
}

// NewServer instancia o servidor HTTP; dependências criadas uma vez no main
func NewServer(log *zap.Logger, sessions SessionService, stakes StakeService, reader HighStakesReader, cache HighStakesCache) *Server {
	return &Server{log: log, sessions: sessions, stakes: stakes, reader: reader, cache: cache}
}

// Router retorna o roteador com as rotas públicas
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/{betId}/highstakes", s.highStakes) // GET /{betId}/highstakes
	r.Post("/*", s.submitStake)                // POST /{betId}/stake?sessionkey=...
	return r
}

// writeText envia a mensagem exatamente como está (sem \n de http.Error)
func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if msg != "" {
		_, _ = w.Write([]byte(msg))
	}
}
