// Package discovery centralizes internal service-discovery conventions.
package discovery

import (
	"strconv"
	"strings"
)

// ServiceStake is the stake ledger gRPC service identity.
const ServiceStake = "stake"

var grpcPorts = map[string]int{
	ServiceStake: 8095,
}

// DefaultGRPCPort returns the conventional gRPC port for a service, or 0.
func DefaultGRPCPort(service string) int {
	return grpcPorts[strings.TrimSpace(service)]
}

// DefaultGRPCAddr returns the canonical in-network gRPC address for a service.
func DefaultGRPCAddr(service string) string {
	return defaultAddr(strings.TrimSpace(service), grpcPorts)
}

// OrDefaultGRPCAddr returns value when set, otherwise the service convention.
func OrDefaultGRPCAddr(value, service string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	return DefaultGRPCAddr(service)
}

func defaultAddr(service string, ports map[string]int) string {
	port, ok := ports[service]
	if !ok || port <= 0 {
		return ""
	}
	return service + ":" + strconv.Itoa(port)
}
