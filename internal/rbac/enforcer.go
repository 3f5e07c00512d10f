package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// modelText has no role_definition section: a role never inherits another
// role's permissions.
const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// NewEnforcer builds a casbin enforcer loaded with policy.
func NewEnforcer(policy map[Permission]RoleSet) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	rules := make([][]string, 0, len(policy)*2)
	for perm, roles := range policy {
		for _, role := range roles {
			rules = append(rules, []string{string(role), perm.Resource, perm.Action})
		}
	}
	if len(rules) > 0 {
		if _, err := e.AddPolicies(rules); err != nil {
			return nil, err
		}
	}

	return e, nil
}
