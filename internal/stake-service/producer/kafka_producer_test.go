package producer

import (
	"context"
	"errors"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/radieske/stake-service/pkg/contracts/events"
)

type fakeWriter struct {
	msgs []kafkago.Message
	err  error
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func TestPublishStakeRecorded(t *testing.T) {
	w := &fakeWriter{}
	p := NewKafkaPublisher(w, "stake_recorded")
	p.now = func() time.Time { return time.UnixMilli(1760702400000) }

	err := p.PublishStakeRecorded(context.Background(), events.StakeRecorded{
		StakeID: "s-1", BetID: 42, CustomerID: 7, Amount: 500,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	require.Equal(t, "42", string(w.msgs[0].Key))
	require.JSONEq(t,
		`{"stake_id":"s-1","bet_id":42,"customer_id":7,"amount":500,"ts_unix_ms":1760702400000}`,
		string(w.msgs[0].Value))
}

func TestPublishStakeRecordedError(t *testing.T) {
	p := NewKafkaPublisher(&fakeWriter{err: errors.New("leader not available")}, "stake_recorded")

	err := p.PublishStakeRecorded(context.Background(), events.StakeRecorded{BetID: 1})
	require.ErrorContains(t, err, "publish stake_recorded")
}
