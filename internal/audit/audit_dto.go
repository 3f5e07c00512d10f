package audit

import "time"

type ListQuery struct {
	Entity   string `form:"entity" binding:"omitempty,oneof=user employee department attendance leave_request"`
	EntityID string `form:"entityId" binding:"omitempty,uuid"`
	Limit    int64  `form:"limit" binding:"omitempty,min=1,max=500"`
}

type EntryResponse struct {
	ID         string    `json:"id"`
	EventID    string    `json:"eventId"`
	EventType  string    `json:"eventType"`
	Entity     string    `json:"entity"`
	EntityID   string    `json:"entityId"`
	ActorID    string    `json:"actorId,omitempty"`
	RequestID  string    `json:"requestId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
	RecordedAt time.Time `json:"recordedAt"`
}
