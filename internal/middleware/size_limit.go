// Package middleware contains the request middleware shared by the routes.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// rough padding for multipart boundaries and part headers
var multipartOverhead = int64(8 * 1024)

// SizeLimit caps the request body at maxBodyBytes plus a small multipart
// overhead. Reading past the cap yields http.MaxBytesError, which the
// submission handler turns into a 413 with a user-facing message.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes+multipartOverhead)
		c.Next()
	}
}
