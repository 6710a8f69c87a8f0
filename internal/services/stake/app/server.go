package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	stakev1 "github.com/louisbranch/stakeledger/api/stake/v1"
	"github.com/louisbranch/stakeledger/internal/platform/telemetry/metrics"
	"github.com/louisbranch/stakeledger/internal/platform/timeouts"
	"github.com/louisbranch/stakeledger/internal/services/stake/api/grpc/interceptors"
	grpcmeta "github.com/louisbranch/stakeledger/internal/services/stake/api/grpc/metadata"
	stakeservice "github.com/louisbranch/stakeledger/internal/services/stake/api/grpc/stake"
	"github.com/louisbranch/stakeledger/internal/services/stake/auth"
	"github.com/louisbranch/stakeledger/internal/services/stake/domain"
	"github.com/louisbranch/stakeledger/internal/services/stake/ledger"
	stakesqlite "github.com/louisbranch/stakeledger/internal/services/stake/storage/sqlite"
	"github.com/louisbranch/stakeledger/internal/services/stake/unit"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Config holds everything the server needs to start.
type Config struct {
	// Addr is the gRPC listen address.
	Addr string
	// MetricsAddr is the Prometheus listen address; empty disables it.
	MetricsAddr string
	DBPath      string
	Admin1      string
	Custody     string
	// Units lists the in-process value units to host.
	Units    []string
	Breaker  unit.BreakerConfig
	Identity auth.TokenConfig
}

// Server hosts the stake ledger gRPC API and storage lifecycle.
type Server struct {
	listener        net.Listener
	grpcServer      *grpc.Server
	health          *health.Server
	store           *stakesqlite.Store
	metricsListener net.Listener
	metricsServer   *http.Server
}

// New creates a configured stake ledger server.
func New(ctx context.Context, cfg Config) (*Server, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(cfg.Admin1) == "" {
		return nil, errors.New("admin1 identity is required")
	}
	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}
	store, err := openStakeStore(cfg.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	registry := metrics.New()
	directory, err := hostUnits(cfg.Units, cfg.Breaker, registry)
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, err
	}

	core, err := ledger.New(ctx, ledger.Config{
		Store:    store,
		Units:    directory,
		Admin1:   domain.ParseIdentity(cfg.Admin1),
		Custody:  domain.ParseIdentity(cfg.Custody),
		Recorder: registry,
	})
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, err
	}

	var verify grpcmeta.TokenVerifier
	if cfg.Identity.Enabled() {
		identityCfg := cfg.Identity
		verify = func(token string) (string, error) {
			claims, err := auth.VerifyToken(identityCfg, token)
			if err != nil {
				return "", err
			}
			return claims.Identity, nil
		}
	} else {
		log.Printf("identity tokens disabled: trusting %s header", grpcmeta.IdentityHeader)
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpcmeta.UnaryServerInterceptor(nil),
			registry.UnaryServerInterceptor(),
			grpcmeta.IdentityUnaryServerInterceptor(verify),
			interceptors.AuditInterceptor(nil),
		),
	)
	healthServer := health.NewServer()
	stakev1.RegisterStakeLedgerServiceServer(grpcServer, stakeservice.NewLedgerService(core))
	stakev1.RegisterUnitServiceServer(grpcServer, stakeservice.NewUnitService(core, directory))
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(stakev1.StakeLedgerService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(stakev1.UnitService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	server := &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
	}
	if addr := strings.TrimSpace(cfg.MetricsAddr); addr != "" {
		metricsListener, err := net.Listen("tcp", addr)
		if err != nil {
			server.Close()
			return nil, fmt.Errorf("listen metrics on %s: %w", addr, err)
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", registry.Handler())
		server.metricsListener = metricsListener
		server.metricsServer = &http.Server{Handler: mux, ReadHeaderTimeout: timeouts.ReadHeader}
	}
	return server, nil
}

// Addr returns the gRPC listener address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// MetricsAddr returns the metrics listener address, or "" when disabled.
func (s *Server) MetricsAddr() string {
	if s == nil || s.metricsListener == nil {
		return ""
	}
	return s.metricsListener.Addr().String()
}

// Run creates and serves a stake ledger server until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC and metrics servers until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	if metricsServer, metricsListener := s.metricsServer, s.metricsListener; metricsServer != nil {
		log.Printf("stake metrics listening at %v", metricsListener.Addr())
		go func() {
			if err := metricsServer.Serve(metricsListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("serve metrics: %v", err)
			}
		}()
	}

	log.Printf("stake server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.shutdownMetrics()
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Close releases server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.shutdownMetrics()
	if s.metricsListener != nil {
		_ = s.metricsListener.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close stake store: %v", err)
		}
	}
}

func (s *Server) shutdownMetrics() {
	if s.metricsServer == nil {
		return
	}
	metricsServer := s.metricsServer
	s.metricsServer = nil
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()
	if err := metricsServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown metrics server: %v", err)
	}
}

func openStakeStore(path string) (*stakesqlite.Store, error) {
	if strings.TrimSpace(path) == "" {
		path = filepath.Join("data", "stake.db")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := stakesqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stake sqlite store: %w", err)
	}
	return store, nil
}

// hostUnits registers one breaker-guarded in-process unit per address.
func hostUnits(addresses []string, breaker unit.BreakerConfig, registry *metrics.Registry) (*unit.Directory, error) {
	directory := unit.NewDirectory()
	breaker.OnStateChange = func(address domain.Address, from, to gobreaker.State) {
		log.Printf("unit %s breaker %s -> %s", address, from, to)
		registry.SetBreakerState(address.String(), int(to))
	}
	for _, raw := range addresses {
		address := domain.ParseAddress(raw)
		if address.IsZero() {
			continue
		}
		if err := directory.Register(address, unit.Guard(address, unit.NewMemory(address), breaker)); err != nil {
			return nil, fmt.Errorf("host unit %s: %w", address, err)
		}
		registry.SetBreakerState(address.String(), int(gobreaker.StateClosed))
	}
	if len(directory.Addresses()) > 0 {
		log.Printf("hosting value units %v", directory.Addresses())
	}
	return directory, nil
}
