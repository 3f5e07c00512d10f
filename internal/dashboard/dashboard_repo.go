package dashboard

import (
	"context"
	"time"

	"hrms-backend/internal/attendance"
	"hrms-backend/internal/department"
	"hrms-backend/internal/employee"
	"hrms-backend/internal/leave"
	"hrms-backend/internal/softdelete"
	"hrms-backend/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository answers the dashboard aggregates. Every query goes through the
// soft-delete stores so deleted rows never reach a count.
//
//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountActiveUsers(ctx context.Context) (int64, error)
	CountEmployees(ctx context.Context) (int64, error)
	CountDepartments(ctx context.Context) (int64, error)
	CountLeaveRequests(ctx context.Context, status string) (int64, error)
	CountAttendance(ctx context.Context, day time.Time, statuses []string) (int64, error)
	EmployeesByDepartment(ctx context.Context) ([]DepartmentCount, error)
	AttendanceTrends(ctx context.Context, since time.Time) ([]AttendanceTrend, error)
	LeaveCountsByStatus(ctx context.Context, from, to time.Time) ([]CountBy, error)
	LeaveCountsByType(ctx context.Context) ([]CountBy, error)
	RecentLeaveRequests(ctx context.Context, limit int) ([]leave.LeaveRequest, error)
	RecentAttendance(ctx context.Context, limit int) ([]attendance.Attendance, error)
}

type repository struct {
	users       *softdelete.Store[user.User]
	employees   *softdelete.Store[employee.Employee]
	departments *softdelete.Store[department.Department]
	attendance  *softdelete.Store[attendance.Attendance]
	leaves      *softdelete.Store[leave.LeaveRequest]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{
		users:       softdelete.NewStore[user.User](db),
		employees:   softdelete.NewStore[employee.Employee](db),
		departments: softdelete.NewStore[department.Department](db),
		attendance:  softdelete.NewStore[attendance.Attendance](db),
		leaves:      softdelete.NewStore[leave.LeaveRequest](db),
	}
}

func where(query string, args ...any) softdelete.Filter {
	return func(db *gorm.DB) *gorm.DB { return db.Where(query, args...) }
}

func newestFirst(limit int) softdelete.Filter {
	return func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC").Limit(limit) }
}

func (r *repository) CountUsers(ctx context.Context) (int64, error) {
	return r.users.Count(ctx, softdelete.Visible)
}

func (r *repository) CountActiveUsers(ctx context.Context) (int64, error) {
	return r.users.Count(ctx, softdelete.Visible, where("is_active = ?", true))
}

func (r *repository) CountEmployees(ctx context.Context) (int64, error) {
	return r.employees.Count(ctx, softdelete.Visible)
}

func (r *repository) CountDepartments(ctx context.Context) (int64, error) {
	return r.departments.Count(ctx, softdelete.Visible)
}

func (r *repository) CountLeaveRequests(ctx context.Context, status string) (int64, error) {
	return r.leaves.Count(ctx, softdelete.Visible, where("status = ?", status))
}

// CountAttendance counts rows dated day. An empty statuses slice counts every status.
func (r *repository) CountAttendance(ctx context.Context, day time.Time, statuses []string) (int64, error) {
	filters := []softdelete.Filter{where("date = ?", day)}
	if len(statuses) > 0 {
		filters = append(filters, where("status IN ?", statuses))
	}
	return r.attendance.Count(ctx, softdelete.Visible, filters...)
}

type departmentCountRow struct {
	DepartmentID   *uuid.UUID
	DepartmentName string
	EmployeeCount  int64
}

// EmployeesByDepartment groups visible employees by department. Employees
// without a department, or whose department is deleted, land in "Unassigned".
func (r *repository) EmployeesByDepartment(ctx context.Context) ([]DepartmentCount, error) {
	var rows []departmentCountRow
	err := r.employees.Query(ctx, softdelete.Visible).
		Select("departments.id AS department_id, COALESCE(departments.name, ?) AS department_name, COUNT(*) AS employee_count", "Unassigned").
		Joins("LEFT JOIN departments ON departments.id = employees.department_id AND departments.is_deleted = ?", false).
		Group("departments.id, departments.name").
		Order("employee_count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]DepartmentCount, len(rows))
	for i, row := range rows {
		out[i] = DepartmentCount(row)
	}
	return out, nil
}

type trendRow struct {
	Date    time.Time
	Present int64
	Absent  int64
	Late    int64
	Total   int64
}

func (r *repository) AttendanceTrends(ctx context.Context, since time.Time) ([]AttendanceTrend, error) {
	var rows []trendRow
	err := r.attendance.Query(ctx, softdelete.Visible).
		Select(`date,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS present,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS absent,
			SUM(CASE WHEN status = ? THEN 1 ELSE 0 END) AS late,
			COUNT(*) AS total`,
			attendance.StatusPresent, attendance.StatusAbsent, attendance.StatusLate).
		Where("date >= ?", since).
		Group("date").
		Order("date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]AttendanceTrend, len(rows))
	for i, row := range rows {
		out[i] = AttendanceTrend{
			Date:    row.Date.UTC().Format("2006-01-02"),
			Present: row.Present,
			Absent:  row.Absent,
			Late:    row.Late,
			Total:   row.Total,
		}
	}
	return out, nil
}

// LeaveCountsByStatus groups leave requests by status. Zero bounds leave the
// created_at window open on that side.
func (r *repository) LeaveCountsByStatus(ctx context.Context, from, to time.Time) ([]CountBy, error) {
	q := r.leaves.Query(ctx, softdelete.Visible)
	if !from.IsZero() {
		q = q.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("created_at < ?", to)
	}

	var rows []CountBy
	err := q.Select("status AS name, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) LeaveCountsByType(ctx context.Context) ([]CountBy, error) {
	var rows []CountBy
	err := r.leaves.Query(ctx, softdelete.Visible).
		Select("leave_type AS name, COUNT(*) AS count").
		Group("leave_type").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) RecentLeaveRequests(ctx context.Context, limit int) ([]leave.LeaveRequest, error) {
	return r.leaves.FindVisible(ctx, softdelete.Preload("Employee"), newestFirst(limit))
}

func (r *repository) RecentAttendance(ctx context.Context, limit int) ([]attendance.Attendance, error) {
	return r.attendance.FindVisible(ctx, softdelete.Preload("Employee"), newestFirst(limit))
}
