package rbac

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// RoleSet is the closed list of roles allowed to perform an operation.
// There is no hierarchy: admin passes only when listed.
type RoleSet []Role

func Roles(rs ...Role) RoleSet { return RoleSet(rs) }

func (s RoleSet) Contains(r Role) bool {
	for _, x := range s {
		if x == r {
			return true
		}
	}
	return false
}

func (s RoleSet) Strings() []string {
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = string(r)
	}
	return out
}

var (
	AnyRole        = Roles(RoleAdmin, RoleManager, RoleEmployee)
	AdminOrManager = Roles(RoleAdmin, RoleManager)
	AdminOnly      = Roles(RoleAdmin)
)

// Actor is the verified identity behind a request.
type Actor struct {
	UserID   uuid.UUID
	Username string
	Email    string
	Role     Role
}

// ID returns a pointer suitable for deleted_by / approved_by style columns.
func (a Actor) ID() *uuid.UUID {
	if a.UserID == uuid.Nil {
		return nil
	}
	id := a.UserID
	return &id
}
