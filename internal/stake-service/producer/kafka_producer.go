package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/radieske/stake-service/internal/shared/kafka"
	"github.com/radieske/stake-service/pkg/contracts/events"
)

// KafkaPublisher publica eventos stake_recorded; key = bet id, para manter
// a ordem dos stakes de uma mesma aposta na partição
type KafkaPublisher struct {
	Writer kafka.MessageWriter
	Topic  string
	now    func() time.Time
}

func NewKafkaPublisher(w kafka.MessageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{Writer: w, Topic: topic, now: time.Now}
}

func (p *KafkaPublisher) PublishStakeRecorded(ctx context.Context, e events.StakeRecorded) error {
	e.TsUnixMs = p.now().UnixMilli()
	b, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal stake_recorded: %w", err)
	}
	if err := kafka.WriteJSON(ctx, p.Writer, fmt.Sprint(e.BetID), b); err != nil {
		return fmt.Errorf("publish %s: %w", p.Topic, err)
	}
	return nil
}
