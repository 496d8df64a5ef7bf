package middleware

import (
	"strconv"
	"time"

	"yt-uploader/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per route template.
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		endpoint := ctx.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.RecordHTTPRequest(ctx.Request.Method, endpoint, strconv.Itoa(ctx.Writer.Status()), time.Since(start).Seconds())
	}
}
