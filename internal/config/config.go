package config

import (
	"fmt"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/xvzc/dnscheck/version"
)

// Config holds the run configuration derived from command line arguments.
// It is built once by ParseArgs and read-only for the rest of the run.
type Config struct {
	Input    string
	Output   string
	Verbose  bool
	DNSAddr  string
	DNSPort  uint16
	Timeout  time.Duration
	LogLevel string
}

// ParseArgs parses argv into a Config. The returned error covers both flag
// errors and invalid flag values, such as a DNS server that is not an IPv4
// address.
func ParseArgs(argv []string) (*Config, error) {
	app := kingpin.New(
		"dnscheck",
		"Perform DNS lookups and save results to a file.",
	)
	app.Version(version.String())

	cfg := new(Config)
	app.Flag("input", "Input hostname or file containing hostnames (one per line)").
		Short('i').Required().StringVar(&cfg.Input)
	app.Flag("output", "Output file to save results").
		Short('o').Required().StringVar(&cfg.Output)
	app.Flag("verbose", "Print results to console as well as file").
		Short('v').BoolVar(&cfg.Verbose)
	app.Flag("dns", "Custom DNS server IP address (e.g., 8.8.8.8, 1.1.1.1)").
		Short('d').PlaceHolder("DNS_IP").StringVar(&cfg.DNSAddr)
	app.Flag("dns-port", "Port number for the custom DNS server").
		Default("53").Uint16Var(&cfg.DNSPort)
	app.Flag("timeout", "Timeout for a single DNS query").
		Default("5s").DurationVar(&cfg.Timeout)
	app.Flag("log.level", "Only log messages with the given severity or above").
		Default("info").StringVar(&cfg.LogLevel)

	if _, err := app.Parse(argv); err != nil {
		return nil, err
	}

	if cfg.DNSAddr != "" {
		if err := validateIPv4Addr(cfg.DNSAddr); err != nil {
			return nil, fmt.Errorf("invalid DNS server IP address %q: %w", cfg.DNSAddr, err)
		}
	}

	return cfg, nil
}
