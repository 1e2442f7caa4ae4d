// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
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

// parseFlags parses configuration flags from args into a fresh flag set.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-driver database driver (sqlite3 | pgx)
//	-d database DSN
//	-c/-config json file path with configs
//	-adapter-address document service address used by the client
//	-adapter-timeout client request timeout
//	-service-path service root path (e.g., "/odata/v4/students")
//	-entity-set document collection name
//	-action-namespace namespace of bound actions
//	-draft-ttl age after which drafts are discarded
//	-janitor-interval draft janitor period
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	var serverAddress NetAddress
	var (
		requestTimeout  time.Duration
		dbDriver        string
		databaseDSN     string
		jsonConfigPath  string
		adapterAddress  string
		adapterTimeout  time.Duration
		servicePath     string
		entitySet       string
		actionNamespace string
		draftTTL        time.Duration
		janitorInterval time.Duration
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&dbDriver, "driver", "", "Database driver (sqlite3, pgx)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&adapterAddress, "adapter-address", "", "Document service address")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.StringVar(&servicePath, "service-path", "", "Service root path")
	fs.StringVar(&entitySet, "entity-set", "", "Document collection name")
	fs.StringVar(&actionNamespace, "action-namespace", "", "Namespace of bound actions")
	fs.DurationVar(&draftTTL, "draft-ttl", 0, "Draft time to live (e.g., 24h)")
	fs.DurationVar(&janitorInterval, "janitor-interval", 0, "Draft janitor interval (e.g., 10m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				Driver: dbDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:     adapterAddress,
			RequestTimeout:  adapterTimeout,
			ServicePath:     servicePath,
			EntitySet:       entitySet,
			ActionNamespace: actionNamespace,
		},
		Workers: Workers{
			DraftTTL:        draftTTL,
			JanitorInterval: janitorInterval,
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
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(rawPort, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
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
