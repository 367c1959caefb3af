package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/playkaro/teenpatti-server/internal/domain/error"
	"github.com/playkaro/teenpatti-server/internal/infrastructure/adapter/api/dto"
)

// userIDKey is where the identity middleware stores the caller's user id
const userIDKey = "userID"

// Identity extracts the caller's user id from the X-User-ID header. Full
// authentication sits in front of this service; here a request only needs a
// parseable user id to be attributed.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("X-User-ID")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthenticated),
				Message: "Missing required header: X-User-ID",
			})
			return
		}

		userID, err := strconv.ParseUint(header, 10, 64)
		if err != nil || userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthenticated),
				Message: "Invalid X-User-ID header",
			})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the user id the identity middleware attached to the request
func UserID(c *gin.Context) uint64 {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(uint64); ok {
			return id
		}
	}
	return 0
}
