package employee

import (
	"context"
	"database/sql"
	"strings"

	employeeerrors "hrms-backend/internal/employee/errors"
	"hrms-backend/internal/events"
	"hrms-backend/internal/lifecycle"
	"hrms-backend/internal/rbac"
	"hrms-backend/internal/shared/contextutil"
	"hrms-backend/internal/shared/dateutil"
	"hrms-backend/internal/softdelete"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, actor rbac.Actor, id string) (EmployeeResponse, error)
	GetDeleted(ctx context.Context) ([]EmployeeResponse, error)
	GetWithDeleted(ctx context.Context) ([]EmployeeResponse, error)
	Restore(ctx context.Context, actor rbac.Actor, id string) (EmployeeResponse, error)
	PermanentlyDelete(ctx context.Context, actor rbac.Actor, id string) (EmployeeResponse, error)
}

type service struct {
	repo     Repository
	recorder *lifecycle.Recorder
	logger   *zap.Logger
}

func NewService(repo Repository, recorder *lifecycle.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, recorder: recorder, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("user_id", req.UserID),
	)

	dob, err := dateutil.ParseOptionalDate(req.DateOfBirth)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDate
	}
	hireDate, err := dateutil.ParseOptionalDate(req.HireDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDate
	}

	empl := &Employee{
		ID:             uuid.New(),
		UserID:         uuid.MustParse(req.UserID),
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		DateOfBirth:    dob,
		Gender:         req.Gender,
		ContactNumber:  req.ContactNumber,
		Address:        req.Address,
		HireDate:       hireDate,
		DepartmentID:   uuidPtr(req.DepartmentID),
		Position:       req.Position,
		Salary:         req.Salary,
		EmploymentType: req.EmploymentType,
		LeaveBalance:   LeaveBalance{Annual: DefaultAnnualLeave, Sick: DefaultSickLeave},
	}
	if lb := req.LeaveBalance; lb != nil {
		if lb.Annual != nil {
			empl.LeaveBalance.Annual = *lb.Annual
		}
		if lb.Sick != nil {
			empl.LeaveBalance.Sick = *lb.Sick
		}
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	created, err := s.repo.FindByID(ctx, empl.ID)
	if err != nil {
		s.logger.Warn("create employee reload failed", zap.String("employee_id", empl.ID.String()), zap.Error(err))
		created = empl
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)
	return mapToResponse(*created), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	return s.list(ctx, softdelete.Visible)
}

func (s *service) GetDeleted(ctx context.Context) ([]EmployeeResponse, error) {
	return s.list(ctx, softdelete.DeletedOnly)
}

func (s *service) GetWithDeleted(ctx context.Context) ([]EmployeeResponse, error) {
	return s.list(ctx, softdelete.IncludeDeleted)
}

func (s *service) list(ctx context.Context, mode softdelete.Mode) ([]EmployeeResponse, error) {
	s.logger.Debug("list employees requested", zap.Stringer("mode", mode))
	empls, err := s.repo.FindAll(ctx, mode)
	if err != nil {
		s.logger.Error("list employees failed", zap.Stringer("mode", mode), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	eid, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, eid)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	eid, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	fields, err := updateFields(req)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl, err := s.repo.Update(ctx, eid, fields)
	if err != nil {
		s.logger.Warn("update employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

func updateFields(req UpdateEmployeeRequest) (map[string]any, error) {
	fields := map[string]any{}
	if req.FirstName != nil {
		fields["first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		fields["last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.DateOfBirth != nil {
		d, err := dateutil.ParseOptionalDate(*req.DateOfBirth)
		if err != nil {
			return nil, employeeerrors.ErrInvalidDate
		}
		fields["date_of_birth"] = d
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.ContactNumber != nil {
		fields["contact_number"] = *req.ContactNumber
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.HireDate != nil {
		d, err := dateutil.ParseOptionalDate(*req.HireDate)
		if err != nil {
			return nil, employeeerrors.ErrInvalidDate
		}
		fields["hire_date"] = d
	}
	if req.DepartmentID != nil {
		fields["department_id"] = uuidPtr(*req.DepartmentID)
	}
	if req.Position != nil {
		fields["position"] = *req.Position
	}
	if req.Salary != nil {
		fields["salary"] = *req.Salary
	}
	if req.EmploymentType != nil {
		fields["employment_type"] = *req.EmploymentType
	}
	if lb := req.LeaveBalance; lb != nil {
		if lb.Annual != nil {
			fields["leave_balance_annual"] = *lb.Annual
		}
		if lb.Sick != nil {
			fields["leave_balance_sick"] = *lb.Sick
		}
	}
	return fields, nil
}

func (s *service) Delete(ctx context.Context, actor rbac.Actor, id string) (EmployeeResponse, error) {
	return s.transition(ctx, actor, id, events.EventSoftDeleted, func(repo Repository, eid uuid.UUID) (*Employee, error) {
		return repo.MarkDeleted(ctx, eid, actor.ID())
	})
}

func (s *service) Restore(ctx context.Context, actor rbac.Actor, id string) (EmployeeResponse, error) {
	return s.transition(ctx, actor, id, events.EventRestored, func(repo Repository, eid uuid.UUID) (*Employee, error) {
		return repo.Restore(ctx, eid)
	})
}

func (s *service) PermanentlyDelete(ctx context.Context, actor rbac.Actor, id string) (EmployeeResponse, error) {
	return s.transition(ctx, actor, id, events.EventPurged, func(repo Repository, eid uuid.UUID) (*Employee, error) {
		return repo.PermanentlyDelete(ctx, eid)
	})
}

func (s *service) transition(
	ctx context.Context,
	actor rbac.Actor,
	id string,
	eventType string,
	op func(repo Repository, id uuid.UUID) (*Employee, error),
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	eid, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := lifecycle.Apply(ctx, s.recorder, eventType, events.EntityEmployee, eid, actor.ID(),
		func(tx *sql.Tx) (*Employee, error) {
			return op(s.repo.WithTx(tx), eid)
		})
	if err != nil {
		s.logger.Warn("employee lifecycle operation failed",
			zap.String("request_id", rid),
			zap.String("event_type", eventType),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("employee lifecycle operation success",
		zap.String("request_id", rid),
		zap.String("event_type", eventType),
		zap.String("employee_id", id),
	)
	return mapToResponse(*empl), nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             empl.ID.String(),
		UserID:         empl.UserID.String(),
		FirstName:      empl.FirstName,
		LastName:       empl.LastName,
		DateOfBirth:    dateutil.FormatDate(empl.DateOfBirth),
		Gender:         empl.Gender,
		ContactNumber:  empl.ContactNumber,
		Address:        empl.Address,
		HireDate:       dateutil.FormatDate(empl.HireDate),
		DepartmentID:   uuidToString(empl.DepartmentID),
		Position:       empl.Position,
		Salary:         empl.Salary,
		EmploymentType: empl.EmploymentType,
		LeaveBalance: LeaveBalanceResponse{
			Annual: empl.LeaveBalance.Annual,
			Sick:   empl.LeaveBalance.Sick,
		},
		CreatedAt: empl.CreatedAt,
		UpdatedAt: empl.UpdatedAt,
		Envelope:  empl.Envelope,
	}
	if empl.User != nil {
		resp.User = &EmployeeUserResponse{
			ID:       empl.User.ID.String(),
			Username: empl.User.Username,
			Email:    empl.User.Email,
			Role:     empl.User.Role,
		}
	}
	if empl.Department != nil {
		resp.Department = &EmployeeDepartmentResponse{
			ID:   empl.Department.ID.String(),
			Name: empl.Department.Name,
		}
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		resp[i] = mapToResponse(e)
	}
	return resp
}

func uuidPtr(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

func uuidToString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
