package rbac

import (
	"sort"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req EnforceRequest) (bool, error)
	Policies() []PolicyRule
}

type service struct {
	enforcer *casbin.Enforcer
	policy   map[Permission]RoleSet
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, policy map[Permission]RoleSet, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{enforcer: enforcer, policy: policy, logger: l}
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(string(req.Role), req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", string(req.Role)),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", string(req.Role)),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// Policies lists the loaded rules sorted by resource then action.
func (s *service) Policies() []PolicyRule {
	rules := make([]PolicyRule, 0, len(s.policy))
	for perm, roles := range s.policy {
		rules = append(rules, PolicyRule{Resource: perm.Resource, Action: perm.Action, Roles: roles.Strings()})
	}
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Resource != rules[j].Resource {
			return rules[i].Resource < rules[j].Resource
		}
		return rules[i].Action < rules[j].Action
	})
	return rules
}

// RequiredRoles returns the roles allowed for (resource, action).
func RequiredRoles(resource, action string) RoleSet {
	return Policy[Permission{Resource: resource, Action: action}]
}
