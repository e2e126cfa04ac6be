package utils

import (
	"github.com/gin-gonic/gin"
)

// UserClaims is the identity extracted from a bearer token. Username is the
// token's subject; the matching User row is loaded per-request by whichever
// handler or middleware needs it.
type UserClaims struct {
	Username string `json:"username"`
}

type contextKey string

const UserContextKey contextKey = "user"

func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}
