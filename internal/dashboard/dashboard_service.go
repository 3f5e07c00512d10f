package dashboard

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"hrms-backend/internal/attendance"
	"hrms-backend/internal/leave"
	"hrms-backend/internal/shared/dateutil"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultActivityLimit = 10
	TrendDays            = 7
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	GetStats(ctx context.Context) (StatsResponse, error)
	GetEmployeesByDepartment(ctx context.Context) ([]DepartmentCount, error)
	GetAttendanceTrends(ctx context.Context) ([]AttendanceTrend, error)
	GetLeaveRequestStats(ctx context.Context) (LeaveStatsResponse, error)
	GetRecentActivities(ctx context.Context, limit int) ([]Activity, error)
}

type Options struct {
	Now func() time.Time
}

type service struct {
	repo   Repository
	now    func() time.Time
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &service{repo: repo, now: now, sf: &singleflight.Group{}, logger: l}
}

// GetStats runs the counts concurrently. Concurrent callers share one run,
// so the run is detached from any single caller's cancellation.
func (s *service) GetStats(ctx context.Context) (StatsResponse, error) {
	v, err, shared := s.sf.Do("stats", func() (interface{}, error) {
		return s.collectStats(context.WithoutCancel(ctx))
	})
	if err != nil {
		s.logger.Error("dashboard stats failed", zap.Error(err))
		return StatsResponse{}, err
	}
	if shared {
		s.logger.Debug("dashboard stats shared with concurrent caller")
	}
	return v.(StatsResponse), nil
}

func (s *service) collectStats(ctx context.Context) (StatsResponse, error) {
	today := dateutil.StartOfDay(s.now())

	var (
		users, activeUsers, employees, departments int64
		pending, approved, todayRows, todayPresent int64
	)

	g, gctx := errgroup.WithContext(ctx)
	count := func(dst *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			*dst = n
			return err
		})
	}

	count(&users, s.repo.CountUsers)
	count(&activeUsers, s.repo.CountActiveUsers)
	count(&employees, s.repo.CountEmployees)
	count(&departments, s.repo.CountDepartments)
	count(&pending, func(ctx context.Context) (int64, error) {
		return s.repo.CountLeaveRequests(ctx, leave.StatusPending)
	})
	count(&approved, func(ctx context.Context) (int64, error) {
		return s.repo.CountLeaveRequests(ctx, leave.StatusApproved)
	})
	count(&todayRows, func(ctx context.Context) (int64, error) {
		return s.repo.CountAttendance(ctx, today, nil)
	})
	count(&todayPresent, func(ctx context.Context) (int64, error) {
		return s.repo.CountAttendance(ctx, today, []string{attendance.StatusPresent, attendance.StatusLate})
	})

	if err := g.Wait(); err != nil {
		return StatsResponse{}, err
	}

	return StatsResponse{
		Users:         UserStats{Total: users, Active: activeUsers, Inactive: users - activeUsers},
		Employees:     TotalStats{Total: employees},
		Departments:   TotalStats{Total: departments},
		LeaveRequests: LeaveRequestStats{Pending: pending, Approved: approved},
		Attendance: AttendanceStats{
			Today:   todayRows,
			Present: todayPresent,
			Rate:    AttendanceRate(todayPresent, employees),
		},
	}, nil
}

// AttendanceRate formats present/total as a percentage rounded to two
// decimals. Zero employees yields "0%".
func AttendanceRate(present, total int64) string {
	if total <= 0 {
		return "0%"
	}
	rate := math.Round(float64(present)/float64(total)*10000) / 100
	return fmt.Sprintf("%.2f%%", rate)
}

func (s *service) GetEmployeesByDepartment(ctx context.Context) ([]DepartmentCount, error) {
	rows, err := s.repo.EmployeesByDepartment(ctx)
	if err != nil {
		s.logger.Error("employees by department failed", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

// GetAttendanceTrends covers today and the six days before it.
func (s *service) GetAttendanceTrends(ctx context.Context) ([]AttendanceTrend, error) {
	since := dateutil.StartOfDay(s.now()).AddDate(0, 0, -(TrendDays - 1))

	rows, err := s.repo.AttendanceTrends(ctx, since)
	if err != nil {
		s.logger.Error("attendance trends failed", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (s *service) GetLeaveRequestStats(ctx context.Context) (LeaveStatsResponse, error) {
	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	var res LeaveStatsResponse
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res.Monthly, err = s.repo.LeaveCountsByStatus(gctx, monthStart, nextMonth)
		return err
	})
	g.Go(func() (err error) {
		res.ByType, err = s.repo.LeaveCountsByType(gctx)
		return err
	})
	g.Go(func() (err error) {
		res.ByStatus, err = s.repo.LeaveCountsByStatus(gctx, time.Time{}, time.Time{})
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("leave request stats failed", zap.Error(err))
		return LeaveStatsResponse{}, err
	}
	return res, nil
}

// GetRecentActivities merges the newest leave requests and attendance rows.
func (s *service) GetRecentActivities(ctx context.Context, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	var (
		leaves  []leave.LeaveRequest
		records []attendance.Attendance
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		leaves, err = s.repo.RecentLeaveRequests(gctx, limit)
		return err
	})
	g.Go(func() (err error) {
		records, err = s.repo.RecentAttendance(gctx, limit)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("recent activities failed", zap.Error(err))
		return nil, err
	}

	out := make([]Activity, 0, len(leaves)+len(records))
	for _, l := range leaves {
		out = append(out, leaveActivity(l))
	}
	for _, a := range records {
		out = append(out, attendanceActivity(a))
	}

	slices.SortStableFunc(out, func(a, b Activity) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func leaveActivity(l leave.LeaveRequest) Activity {
	act := Activity{
		Type: ActivityLeaveRequest,
		ID:   l.ID.String(),
		Data: map[string]any{
			"leaveType": l.LeaveType,
			"status":    l.Status,
			"startDate": l.StartDate.UTC().Format(dateutil.Layout),
			"endDate":   l.EndDate.UTC().Format(dateutil.Layout),
		},
		CreatedAt: l.CreatedAt,
	}
	if l.Employee != nil {
		act.Employee = &ActivityEmployee{
			ID:        l.Employee.ID.String(),
			FirstName: l.Employee.FirstName,
			LastName:  l.Employee.LastName,
		}
	}
	return act
}

func attendanceActivity(a attendance.Attendance) Activity {
	act := Activity{
		Type: ActivityAttendance,
		ID:   a.ID.String(),
		Data: map[string]any{
			"date":     a.Date.UTC().Format(dateutil.Layout),
			"status":   a.Status,
			"checkIn":  a.CheckIn,
			"checkOut": a.CheckOut,
		},
		CreatedAt: a.CreatedAt,
	}
	if a.Employee != nil {
		act.Employee = &ActivityEmployee{
			ID:        a.Employee.ID.String(),
			FirstName: a.Employee.FirstName,
			LastName:  a.Employee.LastName,
		}
	}
	return act
}
