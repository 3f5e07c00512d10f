package audit

import (
	"context"
	"time"

	"hrms-backend/internal/events"

	"go.uber.org/zap"
)

const DefaultListLimit = 100

//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, ev events.RecordLifecycleEvent) error
	List(ctx context.Context, q ListQuery) ([]EntryResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("audit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) Record(ctx context.Context, ev events.RecordLifecycleEvent) error {
	if err := s.repo.Insert(ctx, EntryFromEvent(ev, s.now().UTC())); err != nil {
		s.logger.Error("record audit entry failed",
			zap.String("event_id", ev.EventID),
			zap.String("event_type", ev.EventType),
			zap.Error(err),
		)
		return err
	}

	s.logger.Debug("audit entry recorded",
		zap.String("event_id", ev.EventID),
		zap.String("entity", ev.Entity),
		zap.String("entity_id", ev.EntityID),
	)
	return nil
}

func (s *service) List(ctx context.Context, q ListQuery) ([]EntryResponse, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	entries, err := s.repo.List(ctx, Filter{Entity: q.Entity, EntityID: q.EntityID, Limit: limit})
	if err != nil {
		return nil, err
	}

	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = EntryResponse{
			ID:         e.ID.Hex(),
			EventID:    e.EventID,
			EventType:  e.EventType,
			Entity:     e.Entity,
			EntityID:   e.EntityID,
			ActorID:    e.ActorID,
			RequestID:  e.RequestID,
			OccurredAt: e.OccurredAt,
			RecordedAt: e.RecordedAt,
		}
	}
	return res, nil
}
