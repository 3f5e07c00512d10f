package consumer

import (
	"context"
	"errors"
	"testing"

	"hrms-backend/internal/events"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReader struct {
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

type fakeRecorder struct {
	got []events.RecordLifecycleEvent
	err error
}

func (f *fakeRecorder) Record(ctx context.Context, ev events.RecordLifecycleEvent) error {
	if f.err != nil {
		return f.err
	}
	f.got = append(f.got, ev)
	return nil
}

func TestConsumeRecordLifecycle(t *testing.T) {
	ev := events.NewRecordLifecycleEvent(events.EventRestored, events.EntityUser, uuid.New(), nil)
	payload := []byte(`{"event_id":"` + ev.EventID + `","event_type":"record.restored","entity":"user","entity_id":"` + ev.EntityID + `"}`)

	t.Run("records and commits", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{cancel: cancel, msgs: []kafkago.Message{
			{Offset: 1, Value: []byte("not json")},
			{Offset: 2, Value: payload},
		}}
		rec := &fakeRecorder{}

		ConsumeRecordLifecycle(ctx, reader, rec, zap.NewNop())

		require.Len(t, rec.got, 1)
		assert.Equal(t, ev.EventID, rec.got[0].EventID)
		assert.Equal(t, events.EventRestored, rec.got[0].EventType)
		assert.Equal(t, []int64{1, 2}, reader.committed)
	})

	t.Run("store failure leaves message uncommitted", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{cancel: cancel, msgs: []kafkago.Message{{Offset: 7, Value: payload}}}

		ConsumeRecordLifecycle(ctx, reader, &fakeRecorder{err: errors.New("mongo down")}, zap.NewNop())

		assert.Empty(t, reader.committed)
	})
}
