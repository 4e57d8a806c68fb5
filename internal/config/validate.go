package config

import (
	"fmt"
	"net"
)

func validateIPv4Addr(v string) error {
	ip := net.ParseIP(v)
	if ip == nil || ip.To4() == nil {
		return fmt.Errorf("wrong format")
	}

	return nil
}
