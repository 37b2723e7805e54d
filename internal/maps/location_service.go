package maps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"cruise/internal/types"
)

// GeocodedPlace is a resolved location.
type GeocodedPlace struct {
	Query            string
	FormattedAddress string
	Position         types.Point
}

// LocationService handles geocoding and route estimation via Google Maps.
type LocationService struct {
	client *maps.Client
}

// NewLocationService creates a LocationService with the given API Key.
func NewLocationService(apiKey string) (*LocationService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &LocationService{client: client}, nil
}

// Geocode resolves a free-form place name to coordinates.
func (s *LocationService) Geocode(ctx context.Context, address string) (*GeocodedPlace, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, fmt.Errorf("maps api error: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("could not geocode address: %s", address)
	}

	loc := results[0].Geometry.Location
	return &GeocodedPlace{
		Query:            address,
		FormattedAddress: results[0].FormattedAddress,
		Position:         types.Point{Lat: loc.Lat, Lng: loc.Lng},
	}, nil
}

// TravelEstimate returns the driving duration and distance between two points.
func (s *LocationService) TravelEstimate(ctx context.Context, origin, destination types.Point) (time.Duration, string, error) {
	r := &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", origin.Lat, origin.Lng),
		Destination: fmt.Sprintf("%f,%f", destination.Lat, destination.Lng),
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return 0, "", fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return 0, "", fmt.Errorf("no route found")
	}

	leg := routes[0].Legs[0]
	return leg.Duration, leg.Distance.HumanReadable, nil
}
