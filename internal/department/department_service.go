package department

import (
	"context"
	"database/sql"
	"strings"

	departmenterrors "hrms-backend/internal/department/errors"
	"hrms-backend/internal/events"
	"hrms-backend/internal/lifecycle"
	"hrms-backend/internal/rbac"
	"hrms-backend/internal/shared/apperror"
	"hrms-backend/internal/shared/contextutil"
	"hrms-backend/internal/softdelete"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, actor rbac.Actor, id string) (DepartmentResponse, error)
	GetDeleted(ctx context.Context) ([]DepartmentResponse, error)
	GetWithDeleted(ctx context.Context) ([]DepartmentResponse, error)
	Restore(ctx context.Context, actor rbac.Actor, id string) (DepartmentResponse, error)
	PermanentlyDelete(ctx context.Context, actor rbac.Actor, id string) (DepartmentResponse, error)
}

type service struct {
	repo     Repository
	recorder *lifecycle.Recorder
	logger   *zap.Logger
}

func NewService(repo Repository, recorder *lifecycle.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, recorder: recorder, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return DepartmentResponse{}, apperror.RequiredField("Name")
	}

	dept := &Department{
		ID:          uuid.New(),
		Name:        name,
		Description: req.Description,
		ManagerID:   parseOptionalID(req.ManagerID),
	}

	if err := s.repo.Create(ctx, dept); err != nil {
		s.logger.Warn("create department failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("name", name),
			zap.Error(err),
		)
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create department success", zap.String("department_id", dept.ID.String()))
	return mapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	return s.list(ctx, softdelete.Visible)
}

func (s *service) GetDeleted(ctx context.Context) ([]DepartmentResponse, error) {
	return s.list(ctx, softdelete.DeletedOnly)
}

func (s *service) GetWithDeleted(ctx context.Context) ([]DepartmentResponse, error) {
	return s.list(ctx, softdelete.IncludeDeleted)
}

func (s *service) list(ctx context.Context, mode softdelete.Mode) ([]DepartmentResponse, error) {
	depts, err := s.repo.FindAll(ctx, mode)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(depts), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	did, err := uuid.Parse(id)
	if err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	dept, err := s.repo.FindByID(ctx, did)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	did, err := uuid.Parse(id)
	if err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	fields := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return DepartmentResponse{}, apperror.RequiredField("Name")
		}
		fields["name"] = name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ManagerID != nil {
		fields["manager_id"] = parseOptionalID(*req.ManagerID)
	}

	dept, err := s.repo.Update(ctx, did, fields)
	if err != nil {
		s.logger.Warn("update department failed", zap.String("department_id", id), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*dept), nil
}

func (s *service) Delete(ctx context.Context, actor rbac.Actor, id string) (DepartmentResponse, error) {
	return s.transition(ctx, actor, id, events.EventSoftDeleted, func(repo Repository, did uuid.UUID) (*Department, error) {
		return repo.MarkDeleted(ctx, did, actor.ID())
	})
}

func (s *service) Restore(ctx context.Context, actor rbac.Actor, id string) (DepartmentResponse, error) {
	return s.transition(ctx, actor, id, events.EventRestored, func(repo Repository, did uuid.UUID) (*Department, error) {
		return repo.Restore(ctx, did)
	})
}

func (s *service) PermanentlyDelete(ctx context.Context, actor rbac.Actor, id string) (DepartmentResponse, error) {
	return s.transition(ctx, actor, id, events.EventPurged, func(repo Repository, did uuid.UUID) (*Department, error) {
		return repo.PermanentlyDelete(ctx, did)
	})
}

func (s *service) transition(
	ctx context.Context,
	actor rbac.Actor,
	id string,
	eventType string,
	op func(repo Repository, id uuid.UUID) (*Department, error),
) (DepartmentResponse, error) {
	did, err := uuid.Parse(id)
	if err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	dept, err := lifecycle.Apply(ctx, s.recorder, eventType, events.EntityDepartment, did, actor.ID(),
		func(tx *sql.Tx) (*Department, error) {
			return op(s.repo.WithTx(tx), did)
		})
	if err != nil {
		s.logger.Warn("department lifecycle operation failed",
			zap.String("event_type", eventType),
			zap.String("department_id", id),
			zap.Error(err),
		)
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("department lifecycle operation success",
		zap.String("event_type", eventType),
		zap.String("department_id", id),
	)
	return mapToResponse(*dept), nil
}

func mapToResponse(d Department) DepartmentResponse {
	resp := DepartmentResponse{
		ID:          d.ID.String(),
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		Envelope:    d.Envelope,
	}
	if d.ManagerID != nil {
		resp.ManagerID = d.ManagerID.String()
	}
	if d.Manager != nil {
		resp.Manager = &ManagerResponse{
			ID:        d.Manager.ID.String(),
			FirstName: d.Manager.FirstName,
			LastName:  d.Manager.LastName,
			Position:  d.Manager.Position,
		}
	}
	return resp
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, 0, len(depts))
	for _, d := range depts {
		res = append(res, mapToResponse(d))
	}
	return res
}

// parseOptionalID returns nil for an empty or malformed id. Request binding
// has already rejected malformed values.
func parseOptionalID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}
