package rbac

import (
	"hrms-backend/internal/shared/apperror"
)

// Authorize allows actual only when it is a member of required.
func Authorize(required RoleSet, actual Role) error {
	if required.Contains(actual) {
		return nil
	}
	return forbidden(required, actual)
}

// AuthorizeOwnershipOrRole allows an actor acting on their own record, or
// any actor whose role is in required.
func AuthorizeOwnershipOrRole(requestedID, actorID string, actorRole Role, required RoleSet) error {
	if requestedID != "" && requestedID == actorID {
		return nil
	}
	return Authorize(required, actorRole)
}

func forbidden(required RoleSet, actual Role) error {
	return apperror.ErrForbidden.WithDetails(map[string]any{
		"required": required.Strings(),
		"current":  string(actual),
	})
}
