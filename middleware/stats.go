package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pagegrade/backend/logging"
)

// Stats records per-endpoint request counts, processing times, and unique
// visitors. Statistics are flushed to disk asynchronously every 100 requests.
func Stats(stats *logging.Statistics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		stats.TrackVisitor(c.ClientIP())

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}
		loadTime := float64(time.Since(start).Milliseconds())
		stats.TrackRequest(endpoint, loadTime, c.Writer.Status() >= 400)

		if stats.GetStatistics()["totalRequests"].(int)%100 == 0 {
			go stats.Save()
		}
	}
}
