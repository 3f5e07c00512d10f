package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "hrms-backend/internal/attendance/errors"
	"hrms-backend/internal/events"
	"hrms-backend/internal/lifecycle"
	"hrms-backend/internal/rbac"
	"hrms-backend/internal/shared/contextutil"
	"hrms-backend/internal/shared/dateutil"
	"hrms-backend/internal/softdelete"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultLateAfter is the check-in cutoff (09:15 UTC) used when none is configured.
const DefaultLateAfter = 9*time.Hour + 15*time.Minute

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, req CheckRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, req CheckRequest) (AttendanceResponse, error)
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context) ([]AttendanceResponse, error)
	GetByID(ctx context.Context, id string) (AttendanceResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
	GetByDateRange(ctx context.Context, q DateRangeQuery) ([]AttendanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, actor rbac.Actor, id string) (AttendanceResponse, error)
	GetDeleted(ctx context.Context) ([]AttendanceResponse, error)
	GetWithDeleted(ctx context.Context) ([]AttendanceResponse, error)
	Restore(ctx context.Context, actor rbac.Actor, id string) (AttendanceResponse, error)
	PermanentlyDelete(ctx context.Context, actor rbac.Actor, id string) (AttendanceResponse, error)
}

type Options struct {
	// LateAfter is the offset from UTC midnight after which a check-in is late.
	LateAfter time.Duration
	Now       func() time.Time
}

type service struct {
	repo      Repository
	recorder  *lifecycle.Recorder
	lateAfter time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(repo Repository, recorder *lifecycle.Recorder, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if opts.LateAfter <= 0 {
		opts.LateAfter = DefaultLateAfter
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		repo:      repo,
		recorder:  recorder,
		lateAfter: opts.LateAfter,
		now:       opts.Now,
		logger:    l,
	}
}

func (s *service) statusAt(at time.Time) string {
	if at.Sub(dateutil.StartOfDay(at)) > s.lateAfter {
		return StatusLate
	}
	return StatusPresent
}

func (s *service) CheckIn(ctx context.Context, req CheckRequest) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	eid, err := s.liveEmployee(ctx, req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	now := s.now().UTC()
	day := dateutil.StartOfDay(now)
	status := s.statusAt(now)

	inserted, err := s.repo.InsertCheckIn(ctx, &Attendance{
		ID:         uuid.New(),
		EmployeeID: eid,
		Date:       day,
		CheckIn:    &now,
		Status:     status,
	})
	if err != nil {
		log.Error("check-in insert failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if !inserted {
		filled, err := s.repo.FillCheckIn(ctx, eid, day, now, status)
		if err != nil {
			return AttendanceResponse{}, mapRepositoryError(err)
		}
		if !filled {
			return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
		}
	}

	rec, err := s.repo.FindByEmployeeAndDate(ctx, eid, day)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	log.Info("check-in success",
		zap.String("employee_id", req.EmployeeID),
		zap.String("status", status),
		zap.Bool("filled_existing", !inserted),
	)
	return mapToResponse(*rec), nil
}

func (s *service) CheckOut(ctx context.Context, req CheckRequest) (AttendanceResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	eid, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	now := s.now().UTC()
	day := dateutil.StartOfDay(now)

	done, err := s.repo.MarkCheckOut(ctx, eid, day, now)
	if err != nil {
		log.Error("check-out update failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	rec, err := s.repo.FindByEmployeeAndDate(ctx, eid, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNoCheckInToday
		}
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if !done {
		if rec.CheckIn == nil {
			return AttendanceResponse{}, attendanceerrors.ErrNoCheckInToday
		}
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	log.Info("check-out success", zap.String("employee_id", req.EmployeeID))
	return mapToResponse(*rec), nil
}

func (s *service) liveEmployee(ctx context.Context, id string) (uuid.UUID, error) {
	eid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, attendanceerrors.ErrInvalidEmployeeID
	}
	ok, err := s.repo.EmployeeExists(ctx, eid)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, attendanceerrors.ErrEmployeeNotFound
	}
	return eid, nil
}

func (s *service) Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error) {
	eid, err := s.liveEmployee(ctx, req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}

	day, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
	}

	status := req.Status
	if status == "" {
		status = StatusPresent
	}

	rec := &Attendance{
		ID:         uuid.New(),
		EmployeeID: eid,
		Date:       day,
		CheckIn:    utcPtr(req.CheckIn),
		CheckOut:   utcPtr(req.CheckOut),
		Status:     status,
		Notes:      req.Notes,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Warn("create attendance failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create attendance success", zap.String("attendance_id", rec.ID.String()))
	return mapToResponse(*rec), nil
}

func (s *service) GetAll(ctx context.Context) ([]AttendanceResponse, error) {
	return s.list(ctx, softdelete.Visible)
}

func (s *service) GetDeleted(ctx context.Context) ([]AttendanceResponse, error) {
	return s.list(ctx, softdelete.DeletedOnly)
}

func (s *service) GetWithDeleted(ctx context.Context) ([]AttendanceResponse, error) {
	return s.list(ctx, softdelete.IncludeDeleted)
}

func (s *service) list(ctx context.Context, mode softdelete.Mode) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindAll(ctx, mode)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (AttendanceResponse, error) {
	aid, err := uuid.Parse(id)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}

	rec, err := s.repo.FindByID(ctx, aid)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*rec), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}

	rows, err := s.repo.FindByEmployee(ctx, eid)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

// GetByDateRange filters by date only when both bounds are given; otherwise
// it behaves like GetAll.
func (s *service) GetByDateRange(ctx context.Context, q DateRangeQuery) ([]AttendanceResponse, error) {
	if q.StartDate == "" || q.EndDate == "" {
		return s.GetAll(ctx)
	}

	start, err := dateutil.ParseDate(q.StartDate)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDate
	}
	end, err := dateutil.ParseDate(q.EndDate)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDate
	}
	if start.After(end) {
		return nil, attendanceerrors.ErrInvalidDateRange
	}

	rows, err := s.repo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(rows), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error) {
	aid, err := uuid.Parse(id)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}

	fields := map[string]any{}
	if req.Date != nil {
		day, err := dateutil.ParseDate(*req.Date)
		if err != nil {
			return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
		}
		fields["date"] = day
	}
	if req.CheckIn != nil {
		fields["check_in"] = req.CheckIn.UTC()
	}
	if req.CheckOut != nil {
		fields["check_out"] = req.CheckOut.UTC()
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	rec, err := s.repo.Update(ctx, aid, fields)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*rec), nil
}

func (s *service) Delete(ctx context.Context, actor rbac.Actor, id string) (AttendanceResponse, error) {
	return s.transition(ctx, actor, id, events.EventSoftDeleted, func(repo Repository, aid uuid.UUID) (*Attendance, error) {
		return repo.MarkDeleted(ctx, aid, actor.ID())
	})
}

func (s *service) Restore(ctx context.Context, actor rbac.Actor, id string) (AttendanceResponse, error) {
	return s.transition(ctx, actor, id, events.EventRestored, func(repo Repository, aid uuid.UUID) (*Attendance, error) {
		return repo.Restore(ctx, aid)
	})
}

func (s *service) PermanentlyDelete(ctx context.Context, actor rbac.Actor, id string) (AttendanceResponse, error) {
	return s.transition(ctx, actor, id, events.EventPurged, func(repo Repository, aid uuid.UUID) (*Attendance, error) {
		return repo.PermanentlyDelete(ctx, aid)
	})
}

func (s *service) transition(
	ctx context.Context,
	actor rbac.Actor,
	id string,
	eventType string,
	op func(repo Repository, id uuid.UUID) (*Attendance, error),
) (AttendanceResponse, error) {
	aid, err := uuid.Parse(id)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}

	rec, err := lifecycle.Apply(ctx, s.recorder, eventType, events.EntityAttendance, aid, actor.ID(),
		func(tx *sql.Tx) (*Attendance, error) {
			return op(s.repo.WithTx(tx), aid)
		})
	if err != nil {
		s.logger.Warn("attendance lifecycle operation failed",
			zap.String("event_type", eventType),
			zap.String("attendance_id", id),
			zap.Error(err),
		)
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*rec), nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Date:       a.Date.UTC().Format(dateutil.Layout),
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		Status:     a.Status,
		Notes:      a.Notes,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
		Envelope:   a.Envelope,
	}
	if a.Employee != nil {
		resp.Employee = &EmployeeSummary{
			ID:        a.Employee.ID.String(),
			FirstName: a.Employee.FirstName,
			LastName:  a.Employee.LastName,
			Position:  a.Employee.Position,
		}
	}
	return resp
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
