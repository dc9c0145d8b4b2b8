package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xiebiao/library/pkg/metrics"
)

// Logger 请求日志中间件
// 设计说明:
// 1. 为每个请求生成唯一请求ID并回写到X-Request-ID响应头,便于排查问题
// 2. 记录方法、路径、状态码、耗时、客户端IP
// 3. 请求耗时同时上报Prometheus直方图,路径取路由模板
//    (/api/v1/books/:isbn)而不是实际URL,避免标签基数爆炸
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 生成请求ID
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		// 2. 处理请求并计时
		startTime := time.Now()
		c.Next()
		latency := time.Since(startTime)

		// 3. 上报指标(FullPath为空表示404,用原始路径会爆标签,统一记为unknown)
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), latency)

		// 4. 输出访问日志
		var errMsg string
		if len(c.Errors) > 0 {
			errMsg = c.Errors.String()
		}

		fmt.Printf("[GIN] %s | %3d | %13v | %15s | %-7s %s | %s %s\n",
			time.Now().Format("2006/01/02 - 15:04:05"),
			c.Writer.Status(),
			latency,
			c.ClientIP(),
			c.Request.Method,
			c.Request.URL.Path,
			requestID,
			errMsg,
		)

		// 慢请求警告
		if latency > 3*time.Second {
			fmt.Printf("[WARN] Slow request: %s %s took %v\n",
				c.Request.Method, c.Request.URL.Path, latency)
		}
	}
}

// GetRequestID 从Context获取当前请求ID
func GetRequestID(c *gin.Context) string {
	if v, ok := c.Get("request_id"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
