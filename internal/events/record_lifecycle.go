package events

import (
	"time"

	"github.com/google/uuid"
)

const RecordLifecycleTopic = "hr.record.lifecycle.v1"

const (
	EventSoftDeleted = "record.soft_deleted"
	EventRestored    = "record.restored"
	EventPurged      = "record.purged"
	EventApproved    = "leave_request.approved"
	EventRejected    = "leave_request.rejected"
)

// Entity names used as aggregate types.
const (
	EntityUser         = "user"
	EntityEmployee     = "employee"
	EntityDepartment   = "department"
	EntityAttendance   = "attendance"
	EntityLeaveRequest = "leave_request"
)

type RecordLifecycleEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	Entity     string    `json:"entity"`
	EntityID   string    `json:"entity_id"`
	ActorID    string    `json:"actor_id,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewRecordLifecycleEvent(eventType, entity string, entityID uuid.UUID, actor *uuid.UUID) RecordLifecycleEvent {
	ev := RecordLifecycleEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		Entity:     entity,
		EntityID:   entityID.String(),
		OccurredAt: time.Now().UTC(),
	}
	if actor != nil {
		ev.ActorID = actor.String()
	}
	return ev
}
