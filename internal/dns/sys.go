package dns

import (
	"context"
	"net"

	log "github.com/sirupsen/logrus"
)

var _ Resolver = (*SysResolver)(nil)

// SysResolver resolves through the operating system's default mechanism.
type SysResolver struct {
	*net.Resolver
	logger *log.Entry
}

func NewSysResolver() *SysResolver {
	return &SysResolver{
		Resolver: &net.Resolver{PreferGo: true},
		logger:   log.WithField("scope", "DNS(SYS)"),
	}
}

func (sr *SysResolver) Resolve(ctx context.Context, host string) (string, error) {
	addrs, err := sr.LookupIPAddr(ctx, host)
	if err != nil {
		return "", err
	}

	sr.logger.Debugf("system resolver returned %d address(es) for %s", len(addrs), host)

	addr, ok := firstIPv4(addrs)
	if !ok {
		return "", ErrNoAddress
	}

	return addr, nil
}

func firstIPv4(addrs []net.IPAddr) (string, bool) {
	for _, addr := range addrs {
		if v4 := addr.IP.To4(); v4 != nil {
			return v4.String(), true
		}
	}

	return "", false
}
