package dns

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Result records the outcome of a single lookup. Value holds either a
// dotted-decimal IPv4 address or a human-readable error message.
type Result struct {
	Hostname string
	Value    string
	OK       bool
}

// Lookup resolves hostnames through the system resolver or, when a server
// override is configured, through the custom resolver. Every failure comes
// back as a populated Result; Resolve never returns an error to its caller.
type Lookup struct {
	system Resolver
	custom Resolver
	server string
	logger *log.Entry
}

// NewLookup wires the two resolution paths. custom may be nil when
// custom-server queries are not available; lookups against server then fail
// per host instead of silently falling back to the system path.
func NewLookup(system, custom Resolver, server string) *Lookup {
	return &Lookup{
		system: system,
		custom: custom,
		server: server,
		logger: log.WithField("scope", "LOOKUP"),
	}
}

func (l *Lookup) Resolve(ctx context.Context, host string) Result {
	if l.server != "" {
		return l.resolveCustom(ctx, host)
	}

	return l.resolveSystem(ctx, host)
}

func (l *Lookup) resolveCustom(ctx context.Context, host string) Result {
	if l.custom == nil {
		return Result{
			Hostname: host,
			Value:    "Error: custom DNS lookups are not supported",
		}
	}

	addr, err := l.custom.Resolve(ctx, host)
	if err != nil {
		l.logger.Debugf("lookup for %s via %s failed: %s", host, l.server, err)

		switch {
		case errors.Is(err, ErrNameNotFound):
			return Result{Hostname: host, Value: "Error: Domain does not exist"}
		case errors.Is(err, ErrNoAddress):
			return Result{Hostname: host, Value: "Error: No A record found"}
		case errors.Is(err, ErrTimeout):
			return Result{Hostname: host, Value: "Error: DNS query timeout"}
		default:
			return Result{Hostname: host, Value: fmt.Sprintf("Unexpected error: %s", err)}
		}
	}

	return Result{Hostname: host, Value: addr, OK: true}
}

func (l *Lookup) resolveSystem(ctx context.Context, host string) Result {
	addr, err := l.system.Resolve(ctx, host)
	if err != nil {
		l.logger.Debugf("lookup for %s failed: %s", host, err)

		return Result{Hostname: host, Value: fmt.Sprintf("Error: %s", err)}
	}

	return Result{Hostname: host, Value: addr, OK: true}
}
