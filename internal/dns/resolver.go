// Package dns performs forward address lookups through either the system
// resolver or an explicitly configured DNS server.
package dns

import (
	"context"
	"errors"
)

// Resolver performs a forward address lookup for a single hostname and
// returns the first IPv4 address in dotted-decimal form.
type Resolver interface {
	Resolve(ctx context.Context, host string) (string, error)
}

// Classified lookup failures. Anything else is reported verbatim.
var (
	ErrNameNotFound = errors.New("domain does not exist")
	ErrNoAddress    = errors.New("no A record found")
	ErrTimeout      = errors.New("query timed out")
)
