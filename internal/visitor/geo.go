// Package visitor derives click metadata from an incoming request: client
// address, geolocation and device classification.
package visitor

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/oschwald/geoip2-golang"

	"urlpro/internal/types"
)

type Locator interface {
	Locate(ctx context.Context, ip string) types.Location
}

func unknownLocation() types.Location {
	return types.Location{Country: types.Unknown, City: types.Unknown}
}

// GeoIP resolves addresses against a MaxMind City database.
type GeoIP struct {
	reader  *geoip2.Reader
	timeout time.Duration
}

func OpenGeoIP(path string, timeout time.Duration) (*GeoIP, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open geoip database: %w", err)
	}
	if timeout <= 0 {
		timeout = 500 * time.Millisecond
	}
	return &GeoIP{reader: reader, timeout: timeout}, nil
}

// Locate never fails: lookups that error, time out or hit a private
// address yield "Unknown".
func (g *GeoIP) Locate(ctx context.Context, ip string) types.Location {
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() {
		return unknownLocation()
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	result := make(chan types.Location, 1)
	go func() {
		loc := unknownLocation()
		record, err := g.reader.City(parsed)
		if err == nil {
			if name, ok := record.City.Names["en"]; ok && name != "" {
				loc.City = name
			}
			if name, ok := record.Country.Names["en"]; ok && name != "" {
				loc.Country = name
			}
		}
		result <- loc
	}()

	select {
	case loc := <-result:
		return loc
	case <-ctx.Done():
		return unknownLocation()
	}
}

func (g *GeoIP) Close() error {
	return g.reader.Close()
}

// NopLocator is used when no GeoIP database is configured.
type NopLocator struct{}

func (NopLocator) Locate(context.Context, string) types.Location {
	return unknownLocation()
}
