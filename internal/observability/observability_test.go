package observability

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/riskibarqy/cricket-insights/internal/config"
	"github.com/riskibarqy/cricket-insights/internal/platform/logging"
)

func TestStart_AllDisabled(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	stack, err := Start(config.Config{}, logging.FromZap(zap.New(core)))
	require.NoError(t, err)

	assert.Empty(t, stack.PprofAddr())
	assert.Equal(t, 1, logs.FilterMessage("tracing disabled").Len())
	assert.Equal(t, 1, logs.FilterMessage("continuous profiling disabled").Len())
	assert.NoError(t, stack.Shutdown(context.Background()))
}

func TestStart_TracingWithoutDSNIsNoop(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	stack, err := Start(config.Config{UptraceEnabled: true, ServiceName: "cricket-insights-api"}, logging.FromZap(zap.New(core)))
	require.NoError(t, err)

	entries := logs.FilterMessage("tracing disabled").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "UPTRACE_DSN empty", entries[0].ContextMap()["reason"])
	assert.NoError(t, stack.Shutdown(context.Background()))
}

func TestStart_PprofServesAndStops(t *testing.T) {
	stack, err := Start(config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}, logging.NewNop())
	require.NoError(t, err)
	addr := stack.PprofAddr()
	require.NotEmpty(t, addr)

	resp, err := http.Get("http://" + addr + "/debug/pprof/cmdline")
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, stack.Shutdown(context.Background()))
	_, err = http.Get("http://" + addr + "/debug/pprof/cmdline")
	assert.Error(t, err)
}

func TestStart_PprofBadAddrFails(t *testing.T) {
	_, err := Start(config.Config{PprofEnabled: true, PprofAddr: "not-an-addr"}, logging.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen pprof on not-an-addr")
}

func TestShutdown_NilStack(t *testing.T) {
	var stack *Stack
	assert.NoError(t, stack.Shutdown(context.Background()))
}
