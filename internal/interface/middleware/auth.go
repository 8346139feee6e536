package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/expoconf/conference-portal/internal/domain/entity"
	"github.com/expoconf/conference-portal/pkg/helpers"
	"github.com/expoconf/conference-portal/pkg/response"
)

const CtxIdentityKey = "identity"

// CallerFrom returns the resolved caller identity, or nil when the request
// carries no session. Handlers pass this explicitly into every service
// operation; there is no ambient session lookup below this point.
func CallerFrom(c *gin.Context) *entity.Identity {
	if v, ok := c.Get(CtxIdentityKey); ok {
		if id, ok := v.(*entity.Identity); ok {
			return id
		}
	}
	return nil
}

func resolveIdentity(c *gin.Context, rdb *redis.Client, jwt *helpers.JWTManager) *entity.Identity {
	token, err := c.Cookie("access_token")
	if err != nil || token == "" {
		return nil
	}
	claims, err := jwt.ParseAccessToken(token)
	if err != nil {
		return nil
	}

	// Session must still exist server-side.
	key := "user:session:" + claims.UserID
	data, err := rdb.HGetAll(c.Request.Context(), key).Result()
	if err != nil || len(data) == 0 {
		return nil
	}

	return &entity.Identity{
		ID:    claims.UserID,
		Email: data["email"],
		Name:  data["name"],
		Role:  entity.Role(claims.Role),
	}
}

// Identify resolves the caller when a valid session is present and stores it
// in the Gin context. It never rejects: public endpoints use it to
// distinguish anonymous from signed-in callers.
func Identify(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := resolveIdentity(c, rdb, jwt); id != nil {
			c.Set(CtxIdentityKey, id)
		}
		c.Next()
	}
}

// Auth validates the access token and the Redis-backed session, rejecting
// the request when either is missing.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := resolveIdentity(c, rdb, jwt)
		if id == nil {
			response.Error[any](c, http.StatusUnauthorized, entity.ErrNotConnected.Error(), nil)
			c.Abort()
			return
		}
		c.Set(CtxIdentityKey, id)
		c.Next()
	}
}
