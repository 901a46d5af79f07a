// Package metrics 提供基于Prometheus的指标收集
//
// 指标分三类：
//   - HTTP指标：请求总数、耗时分布、处理中的请求数
//   - 业务指标：商品创建、审核、评价、联系卖家、邮件通知
//   - 基础设施指标：熔断器状态、消息发布
//
// 使用方式：
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	metrics.IncCounterVec(metrics.ReviewsTotal, map[string]string{"action": "add"})
//
// 所有辅助函数在指标未初始化时直接返回，领域层单元测试无需初始化。
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	initOnce sync.Once

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、path（路由模板，避免高基数）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// ProductsCreatedTotal 商品创建总数
	ProductsCreatedTotal prometheus.Counter

	// ProductModerationsTotal 商品审核/上下架操作数
	// 标签：action（approve/unapprove/activate/deactivate）
	ProductModerationsTotal *prometheus.CounterVec

	// ReviewsTotal 评价操作数
	// 标签：action（add/edit/delete）
	ReviewsTotal *prometheus.CounterVec

	// ContactMessagesTotal 联系卖家消息总数
	ContactMessagesTotal prometheus.Counter

	// MailNotificationsTotal 邮件通知结果
	// 标签：result（sent/failed/rejected）
	MailNotificationsTotal *prometheus.CounterVec

	// CircuitBreakerState 熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）
	CircuitBreakerState *prometheus.GaugeVec

	// CircuitBreakerRequests 熔断器请求总数
	// 标签：name、result（success/failure/rejected）
	CircuitBreakerRequests *prometheus.CounterVec

	// MessagesPublishedTotal 消息发布总数
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 注册所有指标到默认Registry，重复调用无副作用
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		ProductsCreatedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "marketplace_products_created_total",
				Help: "商品创建总数",
			},
		)

		ProductModerationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketplace_product_moderations_total",
				Help: "商品审核与上下架操作总数",
			},
			[]string{"action"},
		)

		ReviewsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketplace_reviews_total",
				Help: "评价操作总数",
			},
			[]string{"action"},
		)

		ContactMessagesTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "marketplace_contact_messages_total",
				Help: "联系卖家消息总数",
			},
		)

		MailNotificationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketplace_mail_notifications_total",
				Help: "邮件通知发送结果",
			},
			[]string{"result"},
		)

		CircuitBreakerState = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
			},
			[]string{"name"},
		)

		CircuitBreakerRequests = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "circuit_breaker_requests_total",
				Help: "熔断器请求总数",
			},
			[]string{"name", "result"},
		)

		MessagesPublishedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "messages_published_total",
				Help: "消息发布总数",
			},
			[]string{"exchange", "routing_key"},
		)
	})
}

// IncCounter 递增Counter
func IncCounter(counter prometheus.Counter) {
	if counter == nil {
		return
	}
	counter.Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter == nil {
		return
	}
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Dec()
}

// SetGaugeVec 设置GaugeVec值（带标签）
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	if gauge == nil {
		return
	}
	gauge.With(labels).Set(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram == nil {
		return
	}
	histogram.With(labels).Observe(value)
}
