// Package hostlist reads lookup targets from a file or a literal argument.
package hostlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Read returns the hostnames contained in inputSource, one per line in file
// order, with surrounding whitespace trimmed and blank lines skipped. When
// inputSource does not name an existing file it is taken to be a single
// literal hostname.
func Read(inputSource string) ([]string, error) {
	f, err := os.Open(inputSource)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{inputSource}, nil
		}

		return nil, fmt.Errorf("reading input: %w", err)
	}
	defer f.Close()

	var hosts []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		hosts = append(hosts, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return hosts, nil
}
