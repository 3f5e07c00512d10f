package middleware

import (
	"context"
	"strings"

	autherrors "hrms-backend/internal/auth/errors"
	"hrms-backend/internal/rbac"
	"hrms-backend/internal/shared/apperror"
	"hrms-backend/internal/shared/contextutil"
	"hrms-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	ContextActor     = "actor"
	ContextUserID    = "user_id"
	ContextRole      = "role"
	ContextRequestID = "request_id"

	AccessTokenCookie = "access_token"
)

// TokenVerifier turns a bearer token into the actor it was issued to.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (rbac.Actor, error)
}

// Authenticate reads the token from the Authorization header or the
// access_token cookie and stores the verified actor on the context.
func Authenticate(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			token = ""
		}
		if token == "" {
			if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
				token = cookie
			}
		}

		if strings.TrimSpace(token) == "" {
			abortWithError(c, autherrors.ErrAccessTokenRequired)
			return
		}

		actor, err := verifier.VerifyToken(c.Request.Context(), token)
		if err != nil {
			abortWithError(c, err)
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

// SetActor stores actor on both the gin and the request context.
func SetActor(c *gin.Context, actor rbac.Actor) {
	c.Set(ContextActor, actor)
	c.Set(ContextUserID, actor.UserID.String())
	c.Set(ContextRole, string(actor.Role))

	ctx := contextutil.WithPrincipal(c.Request.Context(), contextutil.Principal{
		UserID: actor.UserID.String(),
		Role:   string(actor.Role),
	})
	c.Request = c.Request.WithContext(ctx)
}

func ActorFrom(c *gin.Context) (rbac.Actor, bool) {
	v, ok := c.Get(ContextActor)
	if !ok {
		return rbac.Actor{}, false
	}
	actor, ok := v.(rbac.Actor)
	return actor, ok
}

// RequireOwnershipOrRoles lets an actor through when the path parameter
// names their own user id, otherwise falls back to the role check.
func RequireOwnershipOrRoles(param string, allowed rbac.RoleSet) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			abortWithError(c, apperror.ErrUnauthorized)
			return
		}
		if err := rbac.AuthorizeOwnershipOrRole(c.Param(param), actor.UserID.String(), actor.Role, allowed); err != nil {
			abortWithError(c, err)
			return
		}
		c.Next()
	}
}

func abortWithError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
	c.Abort()
}
