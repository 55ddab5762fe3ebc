package observability

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/pprof"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/grafana/pyroscope-go"
	"github.com/uptrace/uptrace-go/uptrace"

	"github.com/riskibarqy/cricket-insights/internal/config"
	"github.com/riskibarqy/cricket-insights/internal/platform/logging"
)

// Stack holds the process-wide tracing and profiling hooks started for the
// API. Each part is optional and controlled by config.
type Stack struct {
	logger        *logging.Logger
	flushTraces   func(context.Context) error
	stopProfiler  func() error
	pprofServer   *http.Server
	pprofListener net.Listener
}

// Start brings up tracing, continuous profiling and the pprof listener in that
// order. On error the parts already started are shut down.
func Start(cfg config.Config, logger *logging.Logger) (*Stack, error) {
	if logger == nil {
		logger = logging.Default()
	}
	s := &Stack{logger: logger.Named("observability")}

	s.startTracing(cfg)
	if err := s.startProfiler(cfg); err != nil {
		return nil, crerr.CombineErrors(err, s.Shutdown(context.Background()))
	}
	if err := s.startPprof(cfg); err != nil {
		return nil, crerr.CombineErrors(err, s.Shutdown(context.Background()))
	}
	return s, nil
}

func (s *Stack) startTracing(cfg config.Config) {
	switch {
	case !cfg.UptraceEnabled:
		s.logger.Info("tracing disabled", "reason", "UPTRACE_ENABLED=false")
		return
	case strings.TrimSpace(cfg.UptraceDSN) == "":
		s.logger.Info("tracing disabled", "reason", "UPTRACE_DSN empty")
		return
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
	)
	s.flushTraces = uptrace.Shutdown
	s.logger.Info("tracing enabled", "exporter", "uptrace", "service_version", cfg.ServiceVersion)
}

func (s *Stack) startProfiler(cfg config.Config) error {
	if !cfg.PyroscopeEnabled {
		s.logger.Info("continuous profiling disabled", "reason", "PYROSCOPE_ENABLED=false")
		return nil
	}

	// Snapshot queries are CPU and allocation bound; lock profiles add nothing.
	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags:              map[string]string{"env": cfg.AppEnv, "service": cfg.ServiceName},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
	})
	if err != nil {
		return crerr.Wrapf(err, "start pyroscope (server %s)", cfg.PyroscopeServerAddress)
	}
	s.stopProfiler = profiler.Stop
	s.logger.Info("continuous profiling enabled", "server_address", cfg.PyroscopeServerAddress)
	return nil
}

func (s *Stack) startPprof(cfg config.Config) error {
	if !cfg.PprofEnabled {
		return nil
	}

	ln, err := net.Listen("tcp", cfg.PprofAddr)
	if err != nil {
		return crerr.Wrapf(err, "listen pprof on %s", cfg.PprofAddr)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	s.pprofListener = ln
	s.pprofServer = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := s.pprofServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("pprof server failed", "error", err)
		}
	}()
	s.logger.Info("pprof listening", "addr", ln.Addr().String())
	return nil
}

// PprofAddr is the bound pprof address, or "" when pprof is off.
func (s *Stack) PprofAddr() string {
	if s == nil || s.pprofListener == nil {
		return ""
	}
	return s.pprofListener.Addr().String()
}

// Shutdown stops pprof, then the profiler, then flushes pending spans. It
// keeps going past failures and returns them combined.
func (s *Stack) Shutdown(ctx context.Context) error {
	if s == nil {
		return nil
	}

	var err error
	if s.pprofServer != nil {
		err = crerr.CombineErrors(err, crerr.Wrap(s.pprofServer.Shutdown(ctx), "stop pprof"))
		s.pprofServer = nil
	}
	if s.stopProfiler != nil {
		err = crerr.CombineErrors(err, crerr.Wrap(s.stopProfiler(), "stop pyroscope"))
		s.stopProfiler = nil
	}
	if s.flushTraces != nil {
		err = crerr.CombineErrors(err, crerr.Wrap(s.flushTraces(ctx), "flush traces"))
		s.flushTraces = nil
	}
	return err
}
