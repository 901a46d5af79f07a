package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics() // 重复调用不应panic（重复注册）

	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInProgress)
	assert.NotNil(t, ReviewsTotal)
	assert.NotNil(t, MailNotificationsTotal)
}

// TestCounter 测试Counter指标
func TestCounter(t *testing.T) {
	InitMetrics()

	before := getCounterValue(t, ContactMessagesTotal)
	IncCounter(ContactMessagesTotal)
	IncCounter(ContactMessagesTotal)
	IncCounter(ContactMessagesTotal)

	assert.Equal(t, before+3, getCounterValue(t, ContactMessagesTotal))
}

// TestCounterVec 测试带标签的Counter
func TestCounterVec(t *testing.T) {
	InitMetrics()

	add := map[string]string{"action": "add"}
	del := map[string]string{"action": "delete"}

	beforeAdd := getCounterValue(t, ReviewsTotal.With(add))
	beforeDel := getCounterValue(t, ReviewsTotal.With(del))

	IncCounterVec(ReviewsTotal, add)
	IncCounterVec(ReviewsTotal, add)
	IncCounterVec(ReviewsTotal, del)

	assert.Equal(t, beforeAdd+2, getCounterValue(t, ReviewsTotal.With(add)))
	assert.Equal(t, beforeDel+1, getCounterValue(t, ReviewsTotal.With(del)))
}

// TestGauge 测试Gauge指标
func TestGauge(t *testing.T) {
	InitMetrics()

	before := getGaugeValue(t, HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	DecGauge(HTTPRequestsInProgress)
	assert.Equal(t, before+1, getGaugeValue(t, HTTPRequestsInProgress))

	SetGaugeVec(CircuitBreakerState, map[string]string{"name": "mailer"}, 1)
	assert.Equal(t, float64(1), getGaugeValue(t, CircuitBreakerState.With(map[string]string{"name": "mailer"})))
}

// TestHelpers_Nil 未初始化的指标不应panic
func TestHelpers_Nil(t *testing.T) {
	assert.NotPanics(t, func() {
		IncCounter(nil)
		IncCounterVec(nil, map[string]string{"action": "add"})
		IncGauge(nil)
		DecGauge(nil)
		SetGaugeVec(nil, nil, 1)
		ObserveHistogramVec(nil, nil, 0.1)
	})
}

func getCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func getGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}
