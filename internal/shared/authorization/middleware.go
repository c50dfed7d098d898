package authorization

import (
	"github.com/gin-gonic/gin"
)

// RequireCertifier guards certifier-only actions (complete, reject,
// reactivate, manual slot corrections). Ownership is not re-checked for
// certifiers; the role itself grants access to every requester's tasks.
func RequireCertifier() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("user_role")
		if userRole != string(RoleCertifier) {
			c.JSON(403, gin.H{
				"error": "certifier access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanAccessTaskByOwner reports whether a caller may mutate a task owned by
// resourceOwnerID. Certifiers may always; requesters only their own.
func CanAccessTaskByOwner(requesterID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsCertifier() {
		return true
	}
	return requesterID == resourceOwnerID
}
