package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	log "github.com/sirupsen/logrus"

	"github.com/xvzc/dnscheck/internal/config"
	"github.com/xvzc/dnscheck/internal/dns"
	"github.com/xvzc/dnscheck/internal/hostlist"
	"github.com/xvzc/dnscheck/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(argv []string, stdout io.Writer) int {
	cfg, err := config.ParseArgs(argv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dnscheck: error: %s\n", err)
		return 1
	}

	setLogLevel(cfg.LogLevel)
	printBanner(cfg)

	log.Infof("reading hostnames from %s", cfg.Input)

	hosts, err := hostlist.Read(cfg.Input)
	if err != nil {
		log.Error(err)
		return 1
	}

	if len(hosts) == 0 {
		log.Error("no hostnames found to look up")
		return 1
	}

	log.Infof("performing DNS lookups for %d hostname(s) against %s", len(hosts), serverLabel(cfg))

	lookup := newLookup(cfg)

	results := make([]dns.Result, 0, len(hosts))
	failed := 0

	for _, host := range hosts {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		result := lookup.Resolve(ctx, host)
		cancel()

		results = append(results, result)

		if result.OK {
			pterm.FgGreen.Println("✓ " + host)
		} else {
			failed++
			pterm.FgRed.Println("✗ " + host)
		}
	}

	var echo io.Writer
	if cfg.Verbose {
		echo = stdout
	}

	if err := report.Write(results, cfg.Output, serverLabel(cfg), echo); err != nil {
		log.Error(err)
		return 1
	}

	fmt.Fprintf(stdout, "\nResults written to: %s\n", cfg.Output)

	if failed > 0 {
		return 1
	}

	return 0
}

func newLookup(cfg *config.Config) *dns.Lookup {
	var custom dns.Resolver
	if cfg.DNSAddr != "" {
		custom = dns.NewPlainResolver(net.ParseIP(cfg.DNSAddr), cfg.DNSPort)
	}

	return dns.NewLookup(dns.NewSysResolver(), custom, cfg.DNSAddr)
}

func serverLabel(cfg *config.Config) string {
	if cfg.DNSAddr != "" {
		return cfg.DNSAddr
	}

	return report.SystemDefault
}

func setLogLevel(level string) {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("unknown log level %q, defaulting to info", level)
		parsed = log.InfoLevel
	}

	log.SetLevel(parsed)
}

func printBanner(cfg *config.Config) {
	cyan := putils.LettersFromStringWithStyle("dns", pterm.NewStyle(pterm.FgCyan))
	purple := putils.LettersFromStringWithStyle("check", pterm.NewStyle(pterm.FgLightMagenta))
	_ = pterm.DefaultBigText.WithLetters(cyan, purple).Render()

	_ = pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
		{Level: 0, Text: "INPUT   : " + cfg.Input},
		{Level: 0, Text: "OUTPUT  : " + cfg.Output},
		{Level: 0, Text: "DNS     : " + serverLabel(cfg)},
		{Level: 0, Text: "TIMEOUT : " + cfg.Timeout.String()},
	}).Render()
}
