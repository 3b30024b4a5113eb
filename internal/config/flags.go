package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all server configuration flags from os.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-version application version
//	-log-level log level (debug, info, warn, error)
//	-log-file rotating log file path
//	-cipher-key 16-byte AES key
//	-cipher-iv 16-byte initialization vector
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-allowed-origins comma-separated CORS origins
//	-metrics-path metrics endpoint route
//	-metrics-namespace prefix of exported series
//	-memory-sample-interval pause between memory samples (e.g., "10s")
//	-memory-source "process" or "system"
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var jsonConfigPath string
	var version, logLevel, logFile string
	var cipherKey, cipherIV string
	var requestTimeout time.Duration
	var allowedOrigins string
	var metricsPath, metricsNamespace string
	var memorySampleInterval time.Duration
	var memorySource string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&version, "version", "", "Application version")
	flag.StringVar(&logLevel, "log-level", "", "Log level")
	flag.StringVar(&logFile, "log-file", "", "Rotating log file path")
	flag.StringVar(&cipherKey, "cipher-key", "", "16-byte AES key")
	flag.StringVar(&cipherIV, "cipher-iv", "", "16-byte initialization vector")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&allowedOrigins, "allowed-origins", "", "Comma-separated CORS origins")
	flag.StringVar(&metricsPath, "metrics-path", "", "Metrics endpoint route")
	flag.StringVar(&metricsNamespace, "metrics-namespace", "", "Metrics namespace")
	flag.DurationVar(&memorySampleInterval, "memory-sample-interval", 0, "Memory sample interval (e.g., 10s)")
	flag.StringVar(&memorySource, "memory-source", "", "Memory source: process or system")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Version:  version,
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Cipher: Cipher{
			Key: cipherKey,
			IV:  cipherIV,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigins: splitList(allowedOrigins),
		},
		Metrics: Metrics{
			Path:      metricsPath,
			Namespace: metricsNamespace,
		},
		Workers: Workers{
			MemorySampleInterval: memorySampleInterval,
			MemorySource:         memorySource,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the
// address does not override other sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
