package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/ledgerworks/voucher_disbursement_app/internal/core/domain"
)

// userIDKey is the key used to store the authenticated user's ID in the context.
// Using a custom type prevents collisions.
const userIDKey = contextKey("userID")

// roleKey is the key used to store the authenticated user's role in the context.
const roleKey = contextKey("role")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		userIDVal := c.Request.Context().Value(userIDKey)
		if userIDVal != nil {
			return userIDVal.(string), true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}

// GetActorFromContext retrieves the authenticated actor (user ID plus role)
// from the Gin context. It returns the actor and a boolean indicating if both
// parts were found.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return domain.Actor{}, false
	}

	roleVal := c.Request.Context().Value(roleKey)
	if roleVal == nil {
		if v, exists := c.Get(string(roleKey)); exists {
			roleVal = v
		}
	}
	role, ok := roleVal.(domain.Role)
	if !ok {
		return domain.Actor{}, false
	}

	return domain.Actor{UserID: userID, Role: role}, true
}
