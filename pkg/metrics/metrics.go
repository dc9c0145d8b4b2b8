// Package metrics 提供基于Prometheus的业务与HTTP指标
//
// 指标设计：
// - Counter（只增不减）：借出/归还的结果计数、锁冲突重试次数
// - Histogram（分布）：HTTP请求耗时
//
// 采集路径：
// 应用程序在/metrics端点暴露指标,Prometheus Server周期性抓取,
// Grafana连接Prometheus做可视化与告警。
//
// 命名规范：
// - 单位放在指标名末尾（_seconds、_total）
// - result标签只用有限枚举值（success/各业务错误种类）,
//   禁止把ISBN/邮箱等高基数值放进标签
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 借出/归还结果标签值
const (
	ResultSuccess          = "success"
	ResultBookNotFound     = "book_not_found"
	ResultBorrowerNotFound = "borrower_not_found"
	ResultNoAvailableCopy  = "no_available_copy"
	ResultNoActiveLoan     = "no_active_loan"
	ResultError            = "error"
)

var (
	// checkoutTotal 借出结果计数
	checkoutTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "library",
		Subsystem: "circulation",
		Name:      "checkout_total",
		Help:      "借出请求结果计数",
	}, []string{"result"})

	// returnTotal 归还结果计数
	returnTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "library",
		Subsystem: "circulation",
		Name:      "return_total",
		Help:      "归还请求结果计数",
	}, []string{"result"})

	// lockConflictRetries 借出事务锁冲突透明重试次数
	// 持续增长说明同一热门图书上的并发竞争激烈
	lockConflictRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "library",
		Subsystem: "circulation",
		Name:      "lock_conflict_retries_total",
		Help:      "借出事务因锁冲突透明重试的次数",
	})

	// httpRequestDuration HTTP请求耗时分布
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "library",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP请求耗时(秒)",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})
)

// RecordCheckout 记录一次借出结果
func RecordCheckout(result string) {
	checkoutTotal.WithLabelValues(result).Inc()
}

// RecordReturn 记录一次归还结果
func RecordReturn(result string) {
	returnTotal.WithLabelValues(result).Inc()
}

// RecordLockConflictRetry 记录一次锁冲突重试
func RecordLockConflictRetry() {
	lockConflictRetries.Inc()
}

// ObserveHTTPRequest 记录一次HTTP请求耗时
// path使用路由模板(如/api/v1/books/:isbn)而非实际URL,控制标签基数
func ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequestDuration.
		WithLabelValues(method, path, strconv.Itoa(status)).
		Observe(duration.Seconds())
}

// Handler 返回/metrics端点的gin处理器
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
