package dns

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	addr string
	err  error
}

func (f *fakeResolver) Resolve(ctx context.Context, host string) (string, error) {
	return f.addr, f.err
}

func TestLookupResolveCustom(t *testing.T) {
	tcs := []struct {
		name      string
		resolver  Resolver
		wantValue string
		wantOK    bool
	}{
		{
			name:      "success",
			resolver:  &fakeResolver{addr: "93.184.216.34"},
			wantValue: "93.184.216.34",
			wantOK:    true,
		},
		{
			name:      "nxdomain",
			resolver:  &fakeResolver{err: ErrNameNotFound},
			wantValue: "Error: Domain does not exist",
		},
		{
			name:      "no answer",
			resolver:  &fakeResolver{err: ErrNoAddress},
			wantValue: "Error: No A record found",
		},
		{
			name:      "timeout",
			resolver:  &fakeResolver{err: ErrTimeout},
			wantValue: "Error: DNS query timeout",
		},
		{
			name:      "unexpected error",
			resolver:  &fakeResolver{err: errors.New("connection refused")},
			wantValue: "Unexpected error: connection refused",
		},
		{
			name:      "custom resolver unavailable",
			resolver:  nil,
			wantValue: "Error: custom DNS lookups are not supported",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			lookup := NewLookup(&fakeResolver{addr: "127.0.0.1"}, tc.resolver, "8.8.8.8")

			result := lookup.Resolve(context.Background(), "example.com")
			assert.Equal(t, "example.com", result.Hostname)
			assert.Equal(t, tc.wantValue, result.Value)
			assert.Equal(t, tc.wantOK, result.OK)
		})
	}
}

func TestLookupResolveSystem(t *testing.T) {
	tcs := []struct {
		name      string
		resolver  Resolver
		wantValue string
		wantOK    bool
	}{
		{
			name:      "success",
			resolver:  &fakeResolver{addr: "93.184.216.34"},
			wantValue: "93.184.216.34",
			wantOK:    true,
		},
		{
			name:      "failure is reported verbatim",
			resolver:  &fakeResolver{err: errors.New("lookup example.invalid: no such host")},
			wantValue: "Error: lookup example.invalid: no such host",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			lookup := NewLookup(tc.resolver, nil, "")

			result := lookup.Resolve(context.Background(), "example.invalid")
			assert.Equal(t, tc.wantValue, result.Value)
			assert.Equal(t, tc.wantOK, result.OK)
		})
	}
}

func TestLookupIgnoresCustomResolverWithoutServer(t *testing.T) {
	lookup := NewLookup(
		&fakeResolver{addr: "10.0.0.1"},
		&fakeResolver{err: errors.New("must not be called")},
		"",
	)

	result := lookup.Resolve(context.Background(), "example.com")
	assert.True(t, result.OK)
	assert.Equal(t, "10.0.0.1", result.Value)
}
