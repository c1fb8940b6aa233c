// Package geoip answers "which country is this IP in" for locale detection.
// Lookups run against a local MaxMind GeoLite2 country database; there is no
// network call on the request path.
package geoip

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/oschwald/geoip2-golang"
)

var ErrUnavailable = errors.New("geoip: database not loaded")

// CountryResolver maps an IP address to an ISO 3166-1 alpha-2 country code.
type CountryResolver interface {
	CountryCode(ip string) (string, error)
}

type Resolver struct {
	db *geoip2.Reader
}

// NewResolver opens the database at path. An empty path means the deployment
// runs without geo detection, which is a supported configuration: the caller
// gets a nil resolver and locale falls back to headers and the default.
func NewResolver(path string) (CountryResolver, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	db, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geoip: open %s: %w", path, err)
	}
	return &Resolver{db: db}, nil
}

func (r *Resolver) CountryCode(ip string) (string, error) {
	if r == nil || r.db == nil {
		return "", ErrUnavailable
	}
	addr := net.ParseIP(strings.TrimSpace(ip))
	if addr == nil {
		return "", fmt.Errorf("geoip: not an ip address: %q", ip)
	}
	rec, err := r.db.Country(addr)
	if err != nil {
		return "", fmt.Errorf("geoip: country lookup: %w", err)
	}
	if rec == nil {
		return "", nil
	}
	return rec.Country.IsoCode, nil
}

func (r *Resolver) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}
