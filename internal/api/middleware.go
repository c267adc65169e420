package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// AdminPinHeader carries the shared admin secret on curation routes.
const AdminPinHeader = "X-Admin-Pin"

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// CORSMiddleware builds the CORS policy from the configured allowed origins.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With", AdminPinHeader},
		AllowCredentials: true,
	})
}

// AdminPinMiddleware gates a route group behind the shared admin PIN.
// A missing header fails the same way as a wrong one.
func AdminPinMiddleware(adminPin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !pinMatches(c.GetHeader(AdminPinHeader), adminPin) {
			abortWithError(c, http.StatusForbidden, "Invalid Admin PIN")
			return
		}
		c.Next()
	}
}

// pinMatches compares the presented PIN against the configured one in
// constant time. An unconfigured PIN authorizes nothing.
func pinMatches(presented, configured string) bool {
	if configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(configured)) == 1
}
