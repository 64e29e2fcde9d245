package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/modules/serializer"
)

const (
	ctxUserID   = "user_id"
	ctxUserRole = "user_role"
)

// TokenParser is satisfied by *tokens.Manager.
type TokenParser interface {
	Parse(raw string) (uuid.UUID, string, error)
}

// AccessChecker decides whether a user may touch a project.
type AccessChecker interface {
	CanAccess(ctx context.Context, projectID, userID uuid.UUID, role string) (bool, error)
}

func forbid(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, serializer.AuthErr("Forbidden"))
}

// JWTAuth validates the bearer token and stores the caller's id and role in the context.
// It also sets the user_id attribute on the current span.
func JWTAuth(tp TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			forbid(c)
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

		id, role, err := tp.Parse(raw)
		if err != nil {
			forbid(c)
			return
		}

		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			span.SetAttributes(attribute.String("user_id", id.String()), attribute.String("user_role", role))
		}

		c.Set(ctxUserID, id)
		c.Set(ctxUserRole, role)
		c.Next()
	}
}

// RequireRoles lets the request through only for the listed roles.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := UserRole(c)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		forbid(c)
	}
}

func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(model.RoleAdmin)
}

func RequireSupervisor() gin.HandlerFunc {
	return RequireRoles(model.RoleAdmin, model.RoleManager)
}

// RequireAuthenticated guards the centros catalog reads, which agents do not use.
func RequireAuthenticated() gin.HandlerFunc {
	return RequireRoles(model.RoleAdmin, model.RoleManager)
}

// ProjectAccess admits supervisors, and agents assigned to the project named by the route param.
func ProjectAccess(param string, checker AccessChecker, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := UserRole(c)
		switch role {
		case model.RoleAdmin, model.RoleManager:
			c.Next()
			return
		case model.RoleUser:
		default:
			forbid(c)
			return
		}

		projectID, err := uuid.Parse(c.Param(param))
		if err != nil {
			forbid(c)
			return
		}
		ok, err := checker.CanAccess(c.Request.Context(), projectID, UserID(c), role)
		if err != nil {
			log.Sugar().Errorw("check project access", "project_id", projectID, "err", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.ServerErr())
			return
		}
		if !ok {
			forbid(c)
			return
		}
		c.Next()
	}
}

func UserID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(ctxUserID); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

func UserRole(c *gin.Context) string {
	return c.GetString(ctxUserRole)
}
