package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/MKhiriev/smscli/internal/validators"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-connect relay address in format [host]:[port], connected on start
//	-c/-config json or yaml file path with configs
//	-connect-timeout connection timeout (e.g., "15s")
//	-max-chunk maximum characters per sent message
//	-chunk-delay pause between chunks (e.g., "200ms")
//	-max-views maximum number of open conversation views
//	-no-notify disable desktop notifications
//	-log log file path
//
// A -h / -help argument returns an error wrapping [flag.ErrHelp].
func ParseFlags(args []string) (*StructuredConfig, error) {
	var connectAddress NetAddress
	var configPath string
	var connectTimeout time.Duration
	var maxChunkSize int
	var chunkDelay time.Duration
	var maxViews int
	var noNotify bool
	var logFile string

	fs := flag.NewFlagSet("smscli", flag.ContinueOnError)
	fs.Var(&connectAddress, "connect", "Relay address host:port to connect to on start")
	fs.StringVar(&configPath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.DurationVar(&connectTimeout, "connect-timeout", 0, "Connection timeout (e.g., 15s)")
	fs.IntVar(&maxChunkSize, "max-chunk", 0, "Maximum characters per sent message")
	fs.DurationVar(&chunkDelay, "chunk-delay", 0, "Pause between chunks of one text (e.g., 200ms)")
	fs.IntVar(&maxViews, "max-views", 0, "Maximum number of open conversation views")
	fs.BoolVar(&noNotify, "no-notify", false, "Disable desktop notifications")
	fs.StringVar(&logFile, "log", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Session: Session{
			ConnectTimeout: connectTimeout,
			MaxChunkSize:   maxChunkSize,
			ChunkDelay:     chunkDelay,
			Connect:        connectAddress.String(),
		},
		UI: UI{
			MaxViews:             maxViews,
			DisableNotifications: noNotify,
		},
		Log: Log{
			File: logFile,
		},
		FilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host must be an IP address or a hostname and the port must be in the
// range 1..65535.
func (a *NetAddress) Set(s string) error {
	host, port, err := validators.SplitAddress(s)
	if err != nil {
		return err
	}

	a.Host = host
	a.Port = port
	return nil
}
