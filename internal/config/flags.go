package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"time"
)

var (
	errPortOutOfRange = errors.New("port number must be between 1 and 65535")
	errNotAnIP        = errors.New("host must be localhost or an IP address")
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

func commandLineArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}

// ParseFlags parses the process command line. See parseFlags for the list of
// recognised flags.
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(commandLineArgs())
}

// parseFlags parses args into a fresh flag set so it can be called more than
// once per process.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-env-file dotenv file path
//	-log-level zerolog level name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-frontend-running-on local|cloud
//	-backend-running-on local|cloud
//	-backend-url-local backend base URL used when running locally
//	-backend-url-cloud backend base URL used when running in cloud
//	-backend-timeout timeout of a single backend call
//	-identity-api-key identity provider web API key
//	-session-cache-ttl who-am-i cache TTL, 0 disables caching
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("auth-bridge", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var jsonConfigPath string
	var dotEnvPath string
	var logLevel string
	var requestTimeout time.Duration
	var frontendRunningOn string
	var backendRunningOn string
	var backendURLLocal string
	var backendURLCloud string
	var backendTimeout time.Duration
	var identityAPIKey string
	var sessionCacheTTL time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&dotEnvPath, "env-file", "", "Dotenv file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&frontendRunningOn, "frontend-running-on", "", "Where this service runs: local or cloud")
	fs.StringVar(&backendRunningOn, "backend-running-on", "", "Where the auth backend runs: local or cloud")
	fs.StringVar(&backendURLLocal, "backend-url-local", "", "Auth backend URL when running locally")
	fs.StringVar(&backendURLCloud, "backend-url-cloud", "", "Auth backend URL when running in cloud")
	fs.DurationVar(&backendTimeout, "backend-timeout", 0, "Timeout of a single backend call")
	fs.StringVar(&identityAPIKey, "identity-api-key", "", "Identity provider web API key")
	fs.DurationVar(&sessionCacheTTL, "session-cache-ttl", 0, "Who-am-i cache TTL (0 disables)")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Frontend: Frontend{
			RunningOn: frontendRunningOn,
		},
		Backend: Backend{
			RunningOn:      backendRunningOn,
			URLLocal:       backendURLLocal,
			URLCloud:       backendURLCloud,
			RequestTimeout: backendTimeout,
		},
		Identity: Identity{
			APIKey: identityAPIKey,
		},
		Session: Session{
			CacheTTL: sessionCacheTTL,
		},
		DotEnvPath:   dotEnvPath,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the address in host:port form, bracketing IPv6 hosts.
// The zero NetAddress renders as an empty string so an unset -a flag does not
// shadow lower-priority sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host must be empty, "localhost" or an IP literal.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errPortOutOfRange
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: %q", errNotAnIP, host)
	}

	a.Host, a.Port = host, port
	return nil
}
