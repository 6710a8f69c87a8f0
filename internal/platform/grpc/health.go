package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

const (
	healthCheckTimeout = time.Second
	healthPollStart    = 200 * time.Millisecond
	healthPollMax      = time.Second
)

// ErrHealthServiceUnknown reports that the server does not register a health
// status for the requested service, so waiting cannot succeed.
var ErrHealthServiceUnknown = errors.New("health service not registered")

// WaitForHealth polls the health status of service until it is SERVING or ctx
// ends. An empty service checks the server as a whole. A service the server
// does not know fails immediately with ErrHealthServiceUnknown.
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logf func(string, ...any)) error {
	if conn == nil {
		return fmt.Errorf("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}
	target := healthTarget(service)

	healthClient := grpc_health_v1.NewHealthClient(conn)
	backoff := healthPollStart
	for {
		callCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		response, err := healthClient.Check(callCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
		cancel()
		switch {
		case status.Code(err) == codes.NotFound:
			return fmt.Errorf("wait for %s: %w", target, ErrHealthServiceUnknown)
		case err != nil:
			logf("[HEALTH] waiting for %s: %v", target, err)
		case response.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING:
			logf("[HEALTH] %s is SERVING", target)
			return nil
		default:
			logf("[HEALTH] waiting for %s: status %s", target, response.GetStatus())
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for %s: %w", target, ctx.Err())
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, healthPollMax)
	}
}

func healthTarget(service string) string {
	if service == "" {
		return "server health"
	}
	return service + " health"
}
