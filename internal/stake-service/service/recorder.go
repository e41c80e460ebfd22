package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/radieske/stake-service/internal/stake-service/repo"
	"github.com/radieske/stake-service/internal/stake-service/stake"
	"github.com/radieske/stake-service/pkg/contracts/events"
)

// StakeRepo define a persistência usada pelo Recorder
type StakeRepo interface {
	Insert(ctx context.Context, betID stake.BetID, customerID stake.CustomerID, amount stake.Amount) (repo.Stake, error)
}

// Invalidator remove o cache de high stakes de uma aposta
type Invalidator interface {
	Invalidate(ctx context.Context, betID stake.BetID) error
}

// Publisher publica o evento de stake gravado
type Publisher interface {
	PublishStakeRecorded(ctx context.Context, e events.StakeRecorded) error
}

// Recorder grava stakes: persiste, invalida o cache e publica o evento.
// Só a falha de persistência é devolvida; cache e evento são best-effort.
type Recorder struct {
	Log   *zap.Logger
	Repo  StakeRepo
	Cache Invalidator
	Publ  Publisher

	OnPublish func(error) // métricas
}

// RecordStake implementa o StakeService consumido pelo endpoint HTTP
func (r *Recorder) RecordStake(ctx context.Context, betID stake.BetID, customerID stake.CustomerID, amount stake.Amount) error {
	s, err := r.Repo.Insert(ctx, betID, customerID, amount)
	if err != nil {
		return err
	}

	if r.Cache != nil {
		if err := r.Cache.Invalidate(ctx, betID); err != nil {
			r.Log.Warn("highstakes cache invalidate failed", zap.Uint32("betId", uint32(betID)), zap.Error(err))
		}
	}

	if r.Publ != nil {
		err := r.Publ.PublishStakeRecorded(ctx, events.StakeRecorded{
			StakeID:    s.ID,
			BetID:      uint32(s.BetID),
			CustomerID: uint32(s.CustomerID),
			Amount:     uint32(s.Amount),
		})
		if err != nil {
			r.Log.Warn("stake_recorded publish failed", zap.String("stakeId", s.ID), zap.Error(err))
		}
		if r.OnPublish != nil {
			r.OnPublish(err)
		}
	}
	return nil
}
