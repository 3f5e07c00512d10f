package audit

import (
	"time"

	"hrms-backend/internal/events"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionName = "audit_trail"

// Entry is one lifecycle event as stored in the audit_trail collection.
// EventID is unique so redelivered messages do not duplicate entries.
type Entry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EventID    string             `bson:"event_id"`
	EventType  string             `bson:"event_type"`
	Entity     string             `bson:"entity"`
	EntityID   string             `bson:"entity_id"`
	ActorID    string             `bson:"actor_id,omitempty"`
	RequestID  string             `bson:"request_id,omitempty"`
	OccurredAt time.Time          `bson:"occurred_at"`
	RecordedAt time.Time          `bson:"recorded_at"`
}

func EntryFromEvent(ev events.RecordLifecycleEvent, recordedAt time.Time) Entry {
	return Entry{
		EventID:    ev.EventID,
		EventType:  ev.EventType,
		Entity:     ev.Entity,
		EntityID:   ev.EntityID,
		ActorID:    ev.ActorID,
		RequestID:  ev.RequestID,
		OccurredAt: ev.OccurredAt,
		RecordedAt: recordedAt,
	}
}
