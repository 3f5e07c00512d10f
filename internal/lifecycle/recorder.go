// Package lifecycle runs record mutations and their outbox events in one
// database transaction.
package lifecycle

import (
	"context"
	"database/sql"

	"hrms-backend/internal/events"
	"hrms-backend/internal/messaging/kafka"
	"hrms-backend/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Recorder struct {
	db     *sql.DB
	outbox kafka.OutboxRepository
	topic  string
	logger *zap.Logger
}

// NewRecorder returns a Recorder. A nil outbox disables event capture but
// mutations still run inside a transaction.
func NewRecorder(db *sql.DB, outbox kafka.OutboxRepository, logger ...*zap.Logger) *Recorder {
	l := zap.L().Named("lifecycle.recorder")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lifecycle.recorder")
	}
	return &Recorder{db: db, outbox: outbox, topic: events.RecordLifecycleTopic, logger: l}
}

// WithTopic returns a copy of r that routes events to topic.
func (r *Recorder) WithTopic(topic string) *Recorder {
	cp := *r
	if topic != "" {
		cp.topic = topic
	}
	return &cp
}

// Run executes fn inside a transaction and, when fn returns an event, stores
// it in the outbox before committing.
func (r *Recorder) Run(ctx context.Context, fn func(tx *sql.Tx) (*events.RecordLifecycleEvent, error)) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Error("begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	ev, err := fn(tx)
	if err != nil {
		return err
	}

	if ev != nil && r.outbox != nil {
		ev.RequestID = contextutil.GetRequestID(ctx)
		out, err := kafka.NewOutboxEvent(ev.EventID, r.topic, ev.Entity, ev.EntityID, ev.EventType, ev.RequestID, ev)
		if err != nil {
			return err
		}
		if err := r.outbox.WithTx(tx).Create(ctx, out); err != nil {
			r.logger.Error("enqueue lifecycle event failed",
				zap.String("event_type", ev.EventType),
				zap.String("entity", ev.Entity),
				zap.String("entity_id", ev.EntityID),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("commit failed", zap.Error(err))
		return err
	}
	return nil
}

// Apply runs op through r and records eventType for (entity, id) when op succeeds.
func Apply[T any](
	ctx context.Context,
	r *Recorder,
	eventType, entity string,
	id uuid.UUID,
	actor *uuid.UUID,
	op func(tx *sql.Tx) (*T, error),
) (*T, error) {
	var out *T
	err := r.Run(ctx, func(tx *sql.Tx) (*events.RecordLifecycleEvent, error) {
		rec, err := op(tx)
		if err != nil {
			return nil, err
		}
		out = rec
		ev := events.NewRecordLifecycleEvent(eventType, entity, id, actor)
		return &ev, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
