package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hrms-backend/internal/events"
	leaveerrors "hrms-backend/internal/leave/errors"
	"hrms-backend/internal/lifecycle"
	"hrms-backend/internal/rbac"
	"hrms-backend/internal/shared/contextutil"
	"hrms-backend/internal/shared/dateutil"
	"hrms-backend/internal/softdelete"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	GetPending(ctx context.Context) ([]LeaveResponse, error)
	GetByStatus(ctx context.Context, status string) ([]LeaveResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	GetByDateRange(ctx context.Context, q DateRangeQuery) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, actor rbac.Actor, id string, req DecisionRequest) (LeaveResponse, error)
	Reject(ctx context.Context, actor rbac.Actor, id string, req DecisionRequest) (LeaveResponse, error)
	Delete(ctx context.Context, actor rbac.Actor, id string) (LeaveResponse, error)
	GetDeleted(ctx context.Context) ([]LeaveResponse, error)
	GetWithDeleted(ctx context.Context) ([]LeaveResponse, error)
	Restore(ctx context.Context, actor rbac.Actor, id string) (LeaveResponse, error)
	PermanentlyDelete(ctx context.Context, actor rbac.Actor, id string) (LeaveResponse, error)
}

type service struct {
	repo     Repository
	recorder *lifecycle.Recorder
	logger   *zap.Logger
}

func NewService(repo Repository, recorder *lifecycle.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{repo: repo, recorder: recorder, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	eid, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}

	ok, err := s.repo.EmployeeExists(ctx, eid)
	if err != nil {
		s.logger.Error("create leave employee lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if !ok {
		return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
	}

	l := &LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: eid,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     StatusPending,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)
	return mapToResponse(*l), nil
}

func parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := dateutil.ParseDate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := dateutil.ParseDate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return start, end, nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	return s.list(s.repo.FindAll(ctx, softdelete.Visible))
}

func (s *service) GetDeleted(ctx context.Context) ([]LeaveResponse, error) {
	return s.list(s.repo.FindAll(ctx, softdelete.DeletedOnly))
}

func (s *service) GetWithDeleted(ctx context.Context) ([]LeaveResponse, error) {
	return s.list(s.repo.FindAll(ctx, softdelete.IncludeDeleted))
}

func (s *service) GetPending(ctx context.Context) ([]LeaveResponse, error) {
	return s.list(s.repo.FindByStatus(ctx, StatusPending))
}

func (s *service) GetByStatus(ctx context.Context, status string) ([]LeaveResponse, error) {
	if !ValidStatus(status) {
		return nil, leaveerrors.ErrInvalidStatus
	}
	return s.list(s.repo.FindByStatus(ctx, status))
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}
	return s.list(s.repo.FindByEmployee(ctx, eid))
}

// GetByDateRange falls back to GetAll unless both bounds are present.
func (s *service) GetByDateRange(ctx context.Context, q DateRangeQuery) ([]LeaveResponse, error) {
	if q.StartDate == "" || q.EndDate == "" {
		return s.GetAll(ctx)
	}
	start, end, err := parseRange(q.StartDate, q.EndDate)
	if err != nil {
		return nil, err
	}
	return s.list(s.repo.FindByDateRange(ctx, start, end))
}

func (s *service) list(rows []LeaveRequest, err error) ([]LeaveResponse, error) {
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	res := make([]LeaveResponse, len(rows))
	for i, l := range rows {
		res[i] = mapToResponse(l)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	lid, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.repo.FindByID(ctx, lid)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*l), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveResponse, error) {
	lid, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	fields := map[string]any{}
	if req.LeaveType != nil {
		fields["leave_type"] = *req.LeaveType
	}
	if req.Reason != nil {
		fields["reason"] = *req.Reason
	}

	if req.StartDate != nil || req.EndDate != nil {
		current, err := s.repo.FindByID(ctx, lid)
		if err != nil {
			return LeaveResponse{}, mapRepositoryError(err)
		}
		startStr := current.StartDate.Format(dateutil.Layout)
		endStr := current.EndDate.Format(dateutil.Layout)
		if req.StartDate != nil {
			startStr = *req.StartDate
		}
		if req.EndDate != nil {
			endStr = *req.EndDate
		}
		start, end, err := parseRange(startStr, endStr)
		if err != nil {
			return LeaveResponse{}, err
		}
		fields["start_date"] = start
		fields["end_date"] = end
	}

	l, err := s.repo.Update(ctx, lid, fields)
	if err != nil {
		s.logger.Warn("update leave failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*l), nil
}

func (s *service) Approve(ctx context.Context, actor rbac.Actor, id string, req DecisionRequest) (LeaveResponse, error) {
	return s.decide(ctx, actor, id, req, StatusApproved, events.EventApproved)
}

func (s *service) Reject(ctx context.Context, actor rbac.Actor, id string, req DecisionRequest) (LeaveResponse, error) {
	return s.decide(ctx, actor, id, req, StatusRejected, events.EventRejected)
}

// decide sets status and approved_by in one update. Moving between approved
// and rejected is allowed.
func (s *service) decide(
	ctx context.Context,
	actor rbac.Actor,
	id string,
	req DecisionRequest,
	status, eventType string,
) (LeaveResponse, error) {
	lid, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	if _, err := s.repo.FindByID(ctx, lid); err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}

	approver, err := s.resolveApprover(ctx, actor, req.ApprovedBy)
	if err != nil {
		return LeaveResponse{}, err
	}

	l, err := lifecycle.Apply(ctx, s.recorder, eventType, events.EntityLeaveRequest, lid, actor.ID(),
		func(tx *sql.Tx) (*LeaveRequest, error) {
			return s.repo.WithTx(tx).Update(ctx, lid, map[string]any{
				"status":      status,
				"approved_by": approver,
			})
		})
	if err != nil {
		s.logger.Warn("leave decision failed",
			zap.String("leave_id", id),
			zap.String("status", status),
			zap.Error(err),
		)
		return LeaveResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("leave decision recorded",
		zap.String("leave_id", id),
		zap.String("status", status),
		zap.String("approved_by", approver.String()),
	)
	return mapToResponse(*l), nil
}

func (s *service) resolveApprover(ctx context.Context, actor rbac.Actor, approvedBy string) (uuid.UUID, error) {
	if approvedBy != "" {
		id, err := uuid.Parse(approvedBy)
		if err != nil {
			return uuid.Nil, leaveerrors.ErrInvalidApprover
		}
		return id, nil
	}

	id, err := s.repo.FindEmployeeIDByUserID(ctx, actor.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, leaveerrors.ErrApproverRequired
	}
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s *service) Delete(ctx context.Context, actor rbac.Actor, id string) (LeaveResponse, error) {
	return s.transition(ctx, actor, id, events.EventSoftDeleted, func(repo Repository, lid uuid.UUID) (*LeaveRequest, error) {
		return repo.MarkDeleted(ctx, lid, actor.ID())
	})
}

func (s *service) Restore(ctx context.Context, actor rbac.Actor, id string) (LeaveResponse, error) {
	return s.transition(ctx, actor, id, events.EventRestored, func(repo Repository, lid uuid.UUID) (*LeaveRequest, error) {
		return repo.Restore(ctx, lid)
	})
}

func (s *service) PermanentlyDelete(ctx context.Context, actor rbac.Actor, id string) (LeaveResponse, error) {
	return s.transition(ctx, actor, id, events.EventPurged, func(repo Repository, lid uuid.UUID) (*LeaveRequest, error) {
		return repo.PermanentlyDelete(ctx, lid)
	})
}

func (s *service) transition(
	ctx context.Context,
	actor rbac.Actor,
	id string,
	eventType string,
	op func(repo Repository, id uuid.UUID) (*LeaveRequest, error),
) (LeaveResponse, error) {
	lid, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	l, err := lifecycle.Apply(ctx, s.recorder, eventType, events.EntityLeaveRequest, lid, actor.ID(),
		func(tx *sql.Tx) (*LeaveRequest, error) {
			return op(s.repo.WithTx(tx), lid)
		})
	if err != nil {
		s.logger.Warn("leave lifecycle operation failed",
			zap.String("event_type", eventType),
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*l), nil
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.UTC().Format(dateutil.Layout),
		EndDate:    l.EndDate.UTC().Format(dateutil.Layout),
		Reason:     l.Reason,
		Status:     l.Status,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
		Envelope:   l.Envelope,
		Employee:   summarize(l.Employee),
		Approver:   summarize(l.Approver),
	}
	if l.ApprovedBy != nil {
		resp.ApprovedBy = l.ApprovedBy.String()
	}
	return resp
}

func summarize(ref *EmployeeRef) *EmployeeSummary {
	if ref == nil {
		return nil
	}
	return &EmployeeSummary{
		ID:        ref.ID.String(),
		FirstName: ref.FirstName,
		LastName:  ref.LastName,
		Position:  ref.Position,
	}
}
