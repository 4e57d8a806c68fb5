package version

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var VERSION string

// String returns the release version with surrounding whitespace removed.
func String() string {
	return strings.TrimSpace(VERSION)
}
