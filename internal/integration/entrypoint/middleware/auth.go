// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
	"github.com/sendhur-chits/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// EmployeeIDKey is the context key for the authenticated employee's ID.
	EmployeeIDKey ContextKey = "employee_id"
	// EmployeeCodeKey is the context key for the authenticated employee's code (e.g. EMP007).
	EmployeeCodeKey ContextKey = "employee_code"
	// EmployeeRoleKey is the context key for the authenticated employee's role.
	EmployeeRoleKey ContextKey = "employee_role"
)

// AuthMiddleware provides JWT authentication middleware.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Token is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		c.Set(string(EmployeeIDKey), claims.EmployeeID)
		c.Set(string(EmployeeCodeKey), claims.EmployeeCode)
		c.Set(string(EmployeeRoleKey), claims.Role)

		c.Next()
	}
}

// RequireAdmin returns a Gin middleware handler that rejects non-admin employees.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetEmployeeRoleFromContext(c)
		if !ok || role != entity.EmployeeRoleAdmin {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "Admin role required",
				Code:  string(domainerror.ErrCodeAdminRequired),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetEmployeeIDFromContext extracts the employee ID from the Gin context.
func GetEmployeeIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	employeeID, exists := c.Get(string(EmployeeIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := employeeID.(uuid.UUID)
	return id, ok
}

// GetEmployeeRoleFromContext extracts the employee role from the Gin context.
func GetEmployeeRoleFromContext(c *gin.Context) (entity.EmployeeRole, bool) {
	role, exists := c.Get(string(EmployeeRoleKey))
	if !exists {
		return "", false
	}
	r, ok := role.(entity.EmployeeRole)
	return r, ok
}
