// Package report renders lookup results into the output file.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/xvzc/dnscheck/internal/dns"
)

// SystemDefault is the server label used when no override is configured.
const SystemDefault = "System Default"

var divider = strings.Repeat("=", 70)

// Write renders results into the file at path. server names the DNS server
// used for the run. When echo is non-nil, each result line is echoed to it
// as it is written.
func Write(results []dns.Result, path string, server string, echo io.Writer) error {
	var buf bytes.Buffer
	render(&buf, results, server, time.Now(), echo)

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing to output file: %w", err)
	}

	return nil
}

func render(w io.Writer, results []dns.Result, server string, now time.Time, echo io.Writer) {
	fmt.Fprintf(w, "DNS Lookup Results - %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "DNS Server: %s\n", server)
	fmt.Fprintf(w, "%s\n\n", divider)

	succeeded := 0
	for _, result := range results {
		line := fmt.Sprintf("%s / %s", result.Hostname, result.Value)
		fmt.Fprintln(w, line)

		if echo != nil {
			fmt.Fprintln(echo, line)
		}

		if result.OK {
			succeeded++
		}
	}

	fmt.Fprintf(w, "\n%s\n", divider)
	fmt.Fprintf(w, "Total lookups: %d\n", len(results))
	fmt.Fprintf(w, "Successful: %d\n", succeeded)
	fmt.Fprintf(w, "Failed: %d\n", len(results)-succeeded)
}
