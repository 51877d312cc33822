// Package metrics 基于Prometheus的指标收集
//
// 指标命名规范：
// - Counter以_total结尾（http_requests_total、orders_created_total）
// - Histogram以单位结尾（http_request_duration_seconds）
// - 标签只用低基数维度（method、path、status），不要用user_id等高基数值
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册panic）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method（GET/POST）、path（路由模板）、status（业务码归类）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// 业务指标

	// OrdersCreatedTotal 成功结算的订单总数
	OrdersCreatedTotal prometheus.Counter

	// OrdersFailedTotal 结算校验失败总数
	OrdersFailedTotal prometheus.Counter

	// CartMutationsTotal 购物车变更操作总数
	// 标签：op（add/remove/change_qty）、result（ok/error）
	CartMutationsTotal *prometheus.CounterVec
)

// InitMetrics 初始化并注册所有指标
// 必须在记录任何指标前调用一次（main中）
func InitMetrics() {
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pizzeria_http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pizzeria_http_request_duration_seconds",
			Help:    "HTTP请求耗时分布",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "path"},
	)

	OrdersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pizzeria_orders_created_total",
			Help: "成功结算的订单总数",
		},
	)

	OrdersFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pizzeria_orders_failed_total",
			Help: "结算失败（校验未通过）总数",
		},
	)

	CartMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pizzeria_cart_mutations_total",
			Help: "购物车变更操作总数",
		},
		[]string{"op", "result"},
	)
}
