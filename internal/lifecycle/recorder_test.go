package lifecycle_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"hrms-backend/internal/events"
	"hrms-backend/internal/lifecycle"
	"hrms-backend/internal/messaging/kafka"
	kafkamock "hrms-backend/internal/messaging/kafka/mock"
	"hrms-backend/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type record struct{ Name string }

func TestApply_WritesOutboxInSameTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	outbox := kafkamock.NewMockOutboxRepository(ctrl)
	rec := lifecycle.NewRecorder(db, outbox)

	id, actor := uuid.New(), uuid.New()
	ctx := contextutil.WithRequestID(context.Background(), "rid-7")

	mock.ExpectBegin()
	outbox.EXPECT().WithTx(gomock.Any()).Return(outbox)
	outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
		assert.Equal(t, events.RecordLifecycleTopic, ev.Topic)
		assert.Equal(t, events.EntityDepartment, ev.AggregateType)
		assert.Equal(t, id.String(), ev.AggregateID)
		assert.Equal(t, "rid-7", ev.RequestID)

		var payload events.RecordLifecycleEvent
		require.NoError(t, json.Unmarshal(ev.Payload, &payload))
		assert.Equal(t, events.EventSoftDeleted, payload.EventType)
		assert.Equal(t, actor.String(), payload.ActorID)
		assert.Equal(t, payload.EventID, ev.ID)
		return nil
	})
	mock.ExpectCommit()

	out, err := lifecycle.Apply(ctx, rec, events.EventSoftDeleted, events.EntityDepartment, id, &actor,
		func(tx *sql.Tx) (*record, error) {
			assert.NotNil(t, tx)
			return &record{Name: "HR"}, nil
		})

	require.NoError(t, err)
	assert.Equal(t, "HR", out.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_RollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rec := lifecycle.NewRecorder(db, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()

	out, err := lifecycle.Apply(context.Background(), rec, events.EventRestored, events.EntityUser, uuid.New(), nil,
		func(tx *sql.Tx) (*record, error) {
			return nil, errors.New("not found")
		})

	assert.Nil(t, out)
	assert.EqualError(t, err, "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_WithoutOutbox(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	err = lifecycle.NewRecorder(db, nil).Run(context.Background(), func(tx *sql.Tx) (*events.RecordLifecycleEvent, error) {
		ev := events.NewRecordLifecycleEvent(events.EventPurged, events.EntityEmployee, uuid.New(), nil)
		return &ev, nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecorder_WithTopic(t *testing.T) {
	ctrl := gomock.NewController(t)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	outbox := kafkamock.NewMockOutboxRepository(ctrl)
	rec := lifecycle.NewRecorder(db, outbox).WithTopic("staging.lifecycle")

	mock.ExpectBegin()
	outbox.EXPECT().WithTx(gomock.Any()).Return(outbox)
	outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
		assert.Equal(t, "staging.lifecycle", ev.Topic)
		return nil
	})
	mock.ExpectCommit()

	_, err = lifecycle.Apply(context.Background(), rec, events.EventPurged, events.EntityAttendance, uuid.New(), nil,
		func(tx *sql.Tx) (*record, error) { return &record{}, nil })

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
