package dns

import (
	"context"
	"errors"
	"net"
	"strconv"

	"github.com/miekg/dns"
	log "github.com/sirupsen/logrus"
)

var _ Resolver = (*PlainResolver)(nil)

// PlainResolver issues plain-UDP A queries against a specific upstream
// server.
type PlainResolver struct {
	upstream string
	client   *dns.Client
	logger   *log.Entry
}

func NewPlainResolver(server net.IP, port uint16) *PlainResolver {
	return &PlainResolver{
		client:   &dns.Client{},
		upstream: net.JoinHostPort(server.String(), strconv.Itoa(int(port))),
		logger:   log.WithField("scope", "DNS(PLAIN)"),
	}
}

func (pr *PlainResolver) Resolve(ctx context.Context, host string) (string, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(host), dns.TypeA)

	resp, rtt, err := pr.client.ExchangeContext(ctx, msg, pr.upstream)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) ||
			(errors.As(err, &netErr) && netErr.Timeout()) {
			return "", ErrTimeout
		}

		return "", err
	}

	pr.logger.Debugf("%s answered for %s in %s", pr.upstream, host, rtt)

	return parseResponse(resp)
}

// parseResponse extracts the first A record from a response, mapping
// NXDOMAIN and empty answers to their error kinds.
func parseResponse(resp *dns.Msg) (string, error) {
	if resp.Rcode == dns.RcodeNameError {
		return "", ErrNameNotFound
	}

	for _, record := range resp.Answer {
		if a, ok := record.(*dns.A); ok {
			return a.A.String(), nil
		}
	}

	return "", ErrNoAddress
}
