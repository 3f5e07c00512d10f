package consumer

import (
	"context"
	"encoding/json"

	"hrms-backend/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// LifecycleRecorder stores a decoded lifecycle event. audit.Service satisfies it.
type LifecycleRecorder interface {
	Record(ctx context.Context, ev events.RecordLifecycleEvent) error
}

// ConsumeRecordLifecycle copies lifecycle events into the audit trail until
// ctx is cancelled. Undecodable messages are committed and skipped.
func ConsumeRecordLifecycle(
	ctx context.Context,
	reader MessageReader,
	recorder LifecycleRecorder,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.record_lifecycle")
	log.Info("record lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("record lifecycle consumer stopped")
				return
			}
			log.Error("fetch record lifecycle message failed", zap.Error(err))
			continue
		}

		handleMessage(ctx, reader, recorder, msg, log)
	}
}

func handleMessage(
	ctx context.Context,
	reader MessageReader,
	recorder LifecycleRecorder,
	msg kafkago.Message,
	log *zap.Logger,
) {
	var event events.RecordLifecycleEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil || event.EventID == "" {
		log.Error("decode record lifecycle event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	if err := recorder.Record(ctx, event); err != nil {
		log.Error("record audit entry failed",
			zap.String("event_id", event.EventID),
			zap.String("event_type", event.EventType),
			zap.Error(err),
		)
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit record lifecycle message failed", zap.Error(err))
		return
	}

	log.Debug("lifecycle event audited",
		zap.String("event_id", event.EventID),
		zap.String("entity", event.Entity),
		zap.String("entity_id", event.EntityID),
	)
}
