package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWithoutAgentLogsMetrics(t *testing.T) {
	req := require.New(t)
	m := New("test").(*Metrics)
	req.IsType(&LogClient{}, cli)

	req.Equal("test.request.time", m.key("request.time"))
	tags := m.tags([]string{"method", "GET", "dangling"})
	req.Contains(tags, "method:GET")
	req.NotContains(tags, "dangling")

	m.BumpSum("count", 1, "a", "b")
	m.BumpHistogram("size", 10)
	m.BumpTime("latency").End()
}
