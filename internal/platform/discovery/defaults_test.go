package discovery

import "testing"

func TestDefaultGRPCAddr(t *testing.T) {
	t.Parallel()

	if got := DefaultGRPCAddr(ServiceStake); got != "stake:8095" {
		t.Fatalf("DefaultGRPCAddr(stake) = %q, want stake:8095", got)
	}
	if got := DefaultGRPCAddr("unknown"); got != "" {
		t.Fatalf("expected empty addr for unknown service, got %q", got)
	}
	if got := DefaultGRPCPort(" stake "); got != 8095 {
		t.Fatalf("DefaultGRPCPort(stake) = %d, want 8095", got)
	}
}

func TestOrDefaultGRPCAddr(t *testing.T) {
	t.Parallel()

	if got := OrDefaultGRPCAddr(" custom:9000 ", ServiceStake); got != "custom:9000" {
		t.Fatalf("expected explicit grpc addr to win, got %q", got)
	}
	if got := OrDefaultGRPCAddr("", ServiceStake); got != "stake:8095" {
		t.Fatalf("expected default grpc addr, got %q", got)
	}
}
