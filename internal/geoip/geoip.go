package geoip

import (
	"fmt"
	"net"
	"strings"

	"github.com/oschwald/geoip2-golang"
)

// Location result of a lookup. Empty fields mean unknown.
type Location struct {
	Country string
	City    string
}

// Locator resolves an IP address to a location
type Locator interface {
	Lookup(ip string) (Location, error)
	Close() error
}

// Open returns a MaxMind backed Locator, or a no-op Locator when path is empty
func Open(path string) (Locator, error) {
	if path == "" {
		return nopLocator{}, nil
	}
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open geoip database: %w", err)
	}
	return &mmdbLocator{reader: reader}, nil
}

type mmdbLocator struct {
	reader *geoip2.Reader
}

// Lookup unparsable addresses resolve to an empty location
func (l *mmdbLocator) Lookup(ip string) (Location, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return Location{}, nil
	}
	record, err := l.reader.City(parsed)
	if err != nil {
		return Location{}, fmt.Errorf("geoip lookup %s: %w", ip, err)
	}
	return Location{
		Country: record.Country.IsoCode,
		City:    record.City.Names["en"],
	}, nil
}

func (l *mmdbLocator) Close() error {
	return l.reader.Close()
}

type nopLocator struct{}

func (nopLocator) Lookup(string) (Location, error) { return Location{}, nil }
func (nopLocator) Close() error                    { return nil }

// ClientIP first X-Forwarded-For entry, else the remote address without port.
// IPv4-mapped IPv6 prefixes ("::ffff:") are stripped.
func ClientIP(forwardedFor, remoteAddr string) string {
	ip := ""
	if forwardedFor != "" {
		ip = strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
	}
	if ip == "" {
		ip = remoteAddr
		if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
			ip = host
		}
	}
	return strings.TrimPrefix(ip, "::ffff:")
}
