package config

import (
	"errors"
	"flag"
	"io"
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

// stringList is a comma separated flag value.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = splitList(v)
	return nil
}

// ParseFlags parses all configuration flags from args (without the program
// name). A fresh flag set is used on every call.
//
// Flags:
//
//	-a local control endpoint address in format [host]:[port]
//	-server package server base address
//	-d database DSN
//	-c/-config json file path with configs
//	-regions comma separated region codes
//	-revoked comma separated revoked eTags
//	-public-key package signing public key path (PEM)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval download job interval (e.g., "1h")
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("trace-warnings", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var regions, revoked stringList
	var adapterAddress string
	var databaseDSN string
	var jsonConfigPath string
	var publicKeyPath string
	var requestTimeout time.Duration
	var syncInterval time.Duration

	fs.Var(&serverAddress, "a", "Local control endpoint host:port")
	fs.StringVar(&adapterAddress, "server", "", "Package server base address")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.Var(&regions, "regions", "Comma separated region codes")
	fs.Var(&revoked, "revoked", "Comma separated revoked package eTags")
	fs.StringVar(&publicKeyPath, "public-key", "", "Package signing public key (PEM) path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Download job interval (e.g., 1h)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Warnings: Warnings{
			Regions:       regions,
			RevokedETags:  revoked,
			PublicKeyPath: publicKeyPath,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Workers:      Workers{SyncInterval: syncInterval},
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
