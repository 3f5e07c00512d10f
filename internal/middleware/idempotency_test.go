package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newIdempotentRouter(t *testing.T, calls *int) (*gin.Engine, redismock.ClientMock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rdb, mock := redismock.NewClientMock()
	r := gin.New()
	r.POST("/attendance/check-in", func(c *gin.Context) {
		c.Set(ContextUserID, "user-1")
		c.Next()
	}, Idempotency(rdb, zap.NewNop()), func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return r, mock
}

func postWithKey(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/attendance/check-in", nil)
	if key != "" {
		req.Header.Set(HeaderIdempotencyKey, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_FirstRequestStoresResponse(t *testing.T) {
	calls := 0
	r, mock := newIdempotentRouter(t, &calls)

	cacheKey := "idemp:/attendance/check-in:user-1:k1"
	payload, err := json.Marshal(cachedResponse{Status: http.StatusCreated, Body: json.RawMessage(`{"ok":true}`)})
	require.NoError(t, err)

	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", idempotencyLockTTL).SetVal(true)
	mock.ExpectSet(cacheKey, payload, idempotencyResultTTL).SetVal("OK")
	mock.ExpectDel(cacheKey + ":lock").SetVal(1)

	w := postWithKey(r, "k1")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	calls := 0
	r, mock := newIdempotentRouter(t, &calls)

	cacheKey := "idemp:/attendance/check-in:user-1:k1"
	payload, _ := json.Marshal(cachedResponse{Status: http.StatusCreated, Body: json.RawMessage(`{"ok":true}`)})
	mock.ExpectGet(cacheKey).SetVal(string(payload))

	w := postWithKey(r, "k1")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Equal(t, 0, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_InFlightDuplicate(t *testing.T) {
	calls := 0
	r, mock := newIdempotentRouter(t, &calls)

	cacheKey := "idemp:/attendance/check-in:user-1:k1"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", idempotencyLockTTL).SetVal(false)

	w := postWithKey(r, "k1")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 0, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	calls := 0
	r, mock := newIdempotentRouter(t, &calls)

	w := postWithKey(r, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
