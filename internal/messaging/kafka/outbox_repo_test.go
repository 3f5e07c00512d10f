package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	ev, err := NewOutboxEvent("", "topic.v1", "employee", "e-1", "record.purged", "", map[string]int{"n": 1})

	require.NoError(t, err)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, OutboxStatusPending, ev.Status)
	assert.JSONEq(t, `{"n":1}`, string(ev.Payload))

	ev, err = NewOutboxEvent("fixed-id", "topic.v1", "employee", "e-1", "record.purged", "", struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", ev.ID)
}

func TestOutboxRepository_CreateInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	event, err := NewOutboxEvent("o-1", "topic.v1", "employee", "e-1", "record.soft_deleted", "rid", map[string]string{"k": "v"})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO outbox_events`).
		WithArgs("o-1", "rid", "employee", "e-1", "record.soft_deleted", "topic.v1", []byte(`{"k":"v"}`), OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	repo := NewOutboxRepository(db)
	require.NoError(t, repo.WithTx(tx).Create(context.Background(), event))
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalid(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOutboxRepository(db)

	assert.EqualError(t, repo.Create(context.Background(), OutboxEvent{ID: "x"}), "outbox topic is required")
	assert.EqualError(t,
		repo.Create(context.Background(), OutboxEvent{ID: "x", Topic: "t", Payload: []byte("{}"), Status: "queued"}),
		"invalid outbox status: queued",
	)
}

func TestOutboxRepository_ClaimPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	older := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	newer := older.Add(time.Minute)

	mock.ExpectQuery(`UPDATE outbox_events o(.|\n)*FOR UPDATE SKIP LOCKED(.|\n)*RETURNING`).
		WithArgs(OutboxStatusPending, OutboxStatusFailed, MaxDeliveryAttempts, float64(60), 10).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "request_id", "aggregate_type", "aggregate_id", "event_type",
			"topic", "payload", "status", "retry_count", "created_at",
		}).
			AddRow("o-2", "", "user", "u-2", "record.purged", "topic.v1", []byte(`{}`), OutboxStatusFailed, 2, newer).
			AddRow("o-1", "rid", "user", "u-1", "record.restored", "topic.v1", []byte(`{}`), OutboxStatusPending, 0, older))

	events, err := NewOutboxRepository(db).ClaimPending(context.Background(), 10, time.Minute)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "o-1", events[0].ID)
	assert.Equal(t, "o-2", events[1].ID)
	assert.Equal(t, 2, events[1].RetryCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE outbox_events`).
		WithArgs("o-1", OutboxStatusFailed, "broker down").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewOutboxRepository(db).MarkFailed(context.Background(), "o-1", "broker down"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_PurgeSent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	before := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`DELETE FROM outbox_events WHERE status = \$1 AND processed_at < \$2`).
		WithArgs(OutboxStatusSent, before).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := NewOutboxRepository(db).PurgeSent(context.Background(), before)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
