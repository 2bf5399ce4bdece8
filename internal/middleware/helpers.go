// internal/middleware/helpers.go
package middleware

import "github.com/gin-gonic/gin"

// GetAdminID gets the admin ID from context
func GetAdminID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("admin_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// MustGetAdminID gets the admin ID from context or panics
func MustGetAdminID(c *gin.Context) int64 {
	id, exists := GetAdminID(c)
	if !exists {
		panic("admin_id not found in context")
	}
	return id
}

// GetJTI gets the token ID from context
func GetJTI(c *gin.Context) (string, bool) {
	v, exists := c.Get("jti")
	if !exists {
		return "", false
	}
	jti, ok := v.(string)
	return jti, ok
}

// MustGetJTI gets the token ID from context or panics
func MustGetJTI(c *gin.Context) string {
	jti, exists := GetJTI(c)
	if !exists {
		panic("jti not found in context")
	}
	return jti
}

// GetRoles gets the admin roles from context
func GetRoles(c *gin.Context) []string {
	v, exists := c.Get("roles")
	if !exists {
		return []string{}
	}

	roles, ok := v.([]string)
	if !ok {
		return []string{}
	}
	return roles
}
