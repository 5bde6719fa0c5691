package geoip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name      string
		forwarded string
		remote    string
		want      string
	}{
		{"forwarded first entry", "203.0.113.7, 10.0.0.1", "127.0.0.1:5000", "203.0.113.7"},
		{"remote with port", "", "198.51.100.4:443", "198.51.100.4"},
		{"mapped ipv6 prefix", "::ffff:192.0.2.1", "", "192.0.2.1"},
		{"remote without port", "", "192.0.2.9", "192.0.2.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClientIP(tt.forwarded, tt.remote))
		})
	}
}

func TestOpen_EmptyPathIsNoop(t *testing.T) {
	loc, err := Open("")
	require.NoError(t, err)
	defer loc.Close()

	got, err := loc.Lookup("8.8.8.8")
	require.NoError(t, err)
	assert.Equal(t, Location{}, got)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open("/nonexistent/GeoLite2-City.mmdb")
	assert.Error(t, err)
}
