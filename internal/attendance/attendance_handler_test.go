package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrms-backend/internal/attendance"
	attendanceerrors "hrms-backend/internal/attendance/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeAttendanceService struct {
	attendance.Service
	CheckInFn        func(ctx context.Context, req attendance.CheckRequest) (attendance.AttendanceResponse, error)
	CheckOutFn       func(ctx context.Context, req attendance.CheckRequest) (attendance.AttendanceResponse, error)
	GetByDateRangeFn func(ctx context.Context, q attendance.DateRangeQuery) ([]attendance.AttendanceResponse, error)
}

func (f *fakeAttendanceService) CheckIn(ctx context.Context, req attendance.CheckRequest) (attendance.AttendanceResponse, error) {
	return f.CheckInFn(ctx, req)
}
func (f *fakeAttendanceService) CheckOut(ctx context.Context, req attendance.CheckRequest) (attendance.AttendanceResponse, error) {
	return f.CheckOutFn(ctx, req)
}
func (f *fakeAttendanceService) GetByDateRange(ctx context.Context, q attendance.DateRangeQuery) ([]attendance.AttendanceResponse, error) {
	return f.GetByDateRangeFn(ctx, q)
}

func setupRouter(svc attendance.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := attendance.NewHandler(svc)
	r := gin.New()
	r.POST("/attendance/check-in", h.CheckIn)
	r.POST("/attendance/check-out", h.CheckOut)
	r.GET("/attendance/date-range", h.GetByDateRange)
	return r
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAttendanceHandler_CheckIn(t *testing.T) {
	eid := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		svc := &fakeAttendanceService{CheckInFn: func(ctx context.Context, req attendance.CheckRequest) (attendance.AttendanceResponse, error) {
			assert.Equal(t, eid, req.EmployeeID)
			return attendance.AttendanceResponse{EmployeeID: req.EmployeeID, Status: attendance.StatusPresent}, nil
		}}

		w := post(setupRouter(svc), "/attendance/check-in", `{"employeeId":"`+eid+`"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Check-in successful")
	})

	t.Run("already checked in", func(t *testing.T) {
		svc := &fakeAttendanceService{CheckInFn: func(ctx context.Context, req attendance.CheckRequest) (attendance.AttendanceResponse, error) {
			return attendance.AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
		}}

		w := post(setupRouter(svc), "/attendance/check-in", `{"employeeId":"`+eid+`"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Employee already checked in today")
	})

	t.Run("missing employee id", func(t *testing.T) {
		w := post(setupRouter(&fakeAttendanceService{}), "/attendance/check-in", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Employee Id is required")
	})
}

func TestAttendanceHandler_CheckOut_NoCheckIn(t *testing.T) {
	svc := &fakeAttendanceService{CheckOutFn: func(ctx context.Context, req attendance.CheckRequest) (attendance.AttendanceResponse, error) {
		return attendance.AttendanceResponse{}, attendanceerrors.ErrNoCheckInToday
	}}

	w := post(setupRouter(svc), "/attendance/check-out", `{"employeeId":"`+uuid.NewString()+`"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No check-in record found for today")
}

func TestAttendanceHandler_GetByDateRange(t *testing.T) {
	svc := &fakeAttendanceService{GetByDateRangeFn: func(ctx context.Context, q attendance.DateRangeQuery) ([]attendance.AttendanceResponse, error) {
		assert.Equal(t, "2024-03-01", q.StartDate)
		assert.Equal(t, "2024-03-31", q.EndDate)
		return []attendance.AttendanceResponse{{Date: "2024-03-04"}}, nil
	}}
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attendance/date-range?startDate=2024-03-01&endDate=2024-03-31", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"date":"2024-03-04"`)
}
