package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/pagegrade/backend/logging"
)

// Recovery turns handler panics into 500 responses so one bad page can never
// take the service down. Panics abort the request before the stats middleware
// records it, so the failure is counted here instead.
func Recovery(stats *logging.Statistics) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Panic in %s: %v\nStack trace:\n%s", c.Request.URL.Path, err, debug.Stack())

				if stats != nil {
					stats.TrackPanic(c.FullPath())
				}

				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "An unexpected error occurred",
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
