package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// StaffKey is the gin context key holding the acting front-desk user.
const StaffKey = "staffName"

// StaffIdentity records the X-Staff-Name header so handlers can stamp
// invoices and payments with who processed them. There is no authentication
// behind it; the value is whatever the desk client passes in.
func StaffIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimSpace(c.GetHeader("X-Staff-Name"))
		if name == "" {
			name = "front-desk"
		}
		c.Set(StaffKey, name)
		c.Next()
	}
}

// StaffName reads the acting user recorded by StaffIdentity.
func StaffName(c *gin.Context) string {
	if v, ok := c.Get(StaffKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return "front-desk"
}
