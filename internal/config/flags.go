package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-metrics-address prometheus listener address in format [host]:[port]
//	-health-path liveness route
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-c/-config json file path with configs
//	-service-name service name reported in traces and metrics
//	-env deployment environment
//	-log-level zerolog level name
//	-exporter span exporter (console, otlp-grpc, otlp-http, none)
//	-otlp-endpoint collector host:port
//	-otlp-insecure disable TLS towards the collector
//	-sample-ratio fraction of sampled traces
//	-probe-url base URL checked by the healthcheck binary
//	-probe-timeout single probe timeout
//	-probe-attempts probe attempts before giving up
//	-probe-interval pause between probe attempts
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress, metricsAddress NetAddress
	var healthPath string
	var requestTimeout, shutdownTimeout time.Duration
	var jsonConfigPath string
	var serviceName, environment, logLevel string
	var exporter, otlpEndpoint string
	var otlpInsecure bool
	var sampleRatio float64
	var probeURL string
	var probeTimeout, probeInterval time.Duration
	var probeAttempts int

	fs := flag.NewFlagSet("go-health-server", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.Var(&metricsAddress, "metrics-address", "Net metrics server address host:port")
	fs.StringVar(&healthPath, "health-path", "", "Health check route")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&serviceName, "service-name", "", "Service name")
	fs.StringVar(&environment, "env", "", "Deployment environment")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&exporter, "exporter", "", "Span exporter: console, otlp-grpc, otlp-http, none")
	fs.StringVar(&otlpEndpoint, "otlp-endpoint", "", "OTLP collector host:port")
	fs.BoolVar(&otlpInsecure, "otlp-insecure", false, "Disable TLS towards the OTLP collector")
	fs.Float64Var(&sampleRatio, "sample-ratio", 0, "Fraction of sampled traces")
	fs.StringVar(&probeURL, "probe-url", "", "Base URL checked by the healthcheck binary")
	fs.DurationVar(&probeTimeout, "probe-timeout", 0, "Single probe timeout")
	fs.IntVar(&probeAttempts, "probe-attempts", 0, "Probe attempts before giving up")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Pause between probe attempts")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			ServiceName: serviceName,
			Environment: environment,
			LogLevel:    logLevel,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			GRPCAddress:     grpcServerAddress.String(),
			MetricsAddress:  metricsAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
			HealthPath:      healthPath,
		},
		Telemetry: Telemetry{
			Exporter:     exporter,
			OTLPEndpoint: otlpEndpoint,
			OTLPInsecure: otlpInsecure,
			SampleRatio:  sampleRatio,
		},
		Probe: Probe{
			URL:      probeURL,
			Timeout:  probeTimeout,
			Attempts: probeAttempts,
			Interval: probeInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
