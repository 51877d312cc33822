package order

import (
	"os"
	"testing"

	"github.com/xiebiao/pizzeria/pkg/metrics"
)

// TestMain 注册指标,Execute记录指标前必须初始化(与main保持一致)
func TestMain(m *testing.M) {
	metrics.InitMetrics()
	os.Exit(m.Run())
}
