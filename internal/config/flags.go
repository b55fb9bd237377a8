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

// parseFlags parses the client flags from args (without the program name).
//
// Flags:
//
//	-u api base url
//	-a control API listen address in format [host]:[port]
//	-d local database DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g. "30s")
//	-sync-interval periodic sync interval (e.g. "30s")
//	-concurrency max in-flight requests per pass
//	-max-attempts failed attempts before dead-lettering
//	-headless run without the status screen
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("repair-minder-sync", flag.ContinueOnError)

	var controlAddress NetAddress
	var apiURL, dsn, jsonConfigPath, logLevel string
	var requestTimeout, syncInterval time.Duration
	var concurrency, maxAttempts int
	var headless bool

	fs.StringVar(&apiURL, "u", "", "API base URL")
	fs.Var(&controlAddress, "a", "Control API address host:port")
	fs.StringVar(&dsn, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 30s)")
	fs.IntVar(&concurrency, "concurrency", 0, "Max in-flight requests per sync pass")
	fs.IntVar(&maxAttempts, "max-attempts", 0, "Failed attempts before a change is dead-lettered")
	fs.BoolVar(&headless, "headless", false, "Run without the status screen")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Headless: headless,
			LogLevel: logLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    apiURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{DB: DB{DSN: dsn}},
		Workers: Workers{
			SyncInterval:   syncInterval,
			MaxConcurrency: concurrency,
			MaxAttempts:    maxAttempts,
		},
		Server:       Server{HTTPAddress: controlAddress.String()},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
