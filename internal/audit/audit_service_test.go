package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"hrms-backend/internal/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeRepo struct {
	inserted []Entry
	filter   Filter
	rows     []Entry
	err      error
}

func (f *fakeRepo) Insert(ctx context.Context, e Entry) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, e)
	return nil
}

func (f *fakeRepo) List(ctx context.Context, filter Filter) ([]Entry, error) {
	f.filter = filter
	return f.rows, f.err
}

func (f *fakeRepo) EnsureIndexes(ctx context.Context) error { return nil }

func TestService_Record(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo).(*service)
	recorded := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return recorded }

	actor := uuid.New()
	ev := events.NewRecordLifecycleEvent(events.EventSoftDeleted, events.EntityDepartment, uuid.New(), &actor)
	ev.RequestID = "req-1"

	require.NoError(t, svc.Record(context.Background(), ev))

	require.Len(t, repo.inserted, 1)
	got := repo.inserted[0]
	assert.Equal(t, ev.EventID, got.EventID)
	assert.Equal(t, events.EntityDepartment, got.Entity)
	assert.Equal(t, actor.String(), got.ActorID)
	assert.Equal(t, "req-1", got.RequestID)
	assert.Equal(t, recorded, got.RecordedAt)
}

func TestService_Record_Error(t *testing.T) {
	boom := errors.New("mongo down")
	svc := NewService(&fakeRepo{err: boom})

	err := svc.Record(context.Background(), events.RecordLifecycleEvent{EventID: "x"})

	assert.ErrorIs(t, err, boom)
}

func TestService_List_DefaultLimit(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &fakeRepo{rows: []Entry{{ID: id, EventID: "ev-1", Entity: "user"}}}
	svc := NewService(repo)

	res, err := svc.List(context.Background(), ListQuery{Entity: "user"})

	require.NoError(t, err)
	assert.Equal(t, int64(DefaultListLimit), repo.filter.Limit)
	assert.Equal(t, "user", repo.filter.Entity)
	require.Len(t, res, 1)
	assert.Equal(t, id.Hex(), res[0].ID)
}
