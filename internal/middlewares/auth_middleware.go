package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"starwars_api/internal/responses"
	"starwars_api/internal/utils"
)

const UserIDKey = "userId"

// Authenticate verifies the bearer access token and stores the user id in the
// gin context under UserIDKey.
func Authenticate(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Abort(c, http.StatusUnauthorized, nil, "Missing Authorization header")
			return
		}

		// Expected format: "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			responses.Abort(c, http.StatusUnauthorized, nil, "Invalid Authorization format")
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			responses.Abort(c, http.StatusUnauthorized, err, "Invalid or expired token")
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

var errNoUser = errors.New("no authenticated user")

// CurrentUserID returns the id stored by Authenticate.
func CurrentUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, errNoUser
	}
	id, ok := v.(int64)
	if !ok || id <= 0 {
		return 0, errNoUser
	}
	return id, nil
}
