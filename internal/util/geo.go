package util

import (
	"math"

	"auditpro/internal/domain"
)

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two points in kilometres.
func HaversineKm(a, b domain.Coordinates) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := lat2 - lat1
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// NearestCandidate returns the index of the candidate closest to origin and
// its distance. Nil candidates are skipped; ok is false when none remain.
// Ties keep the earlier candidate.
func NearestCandidate(origin domain.Coordinates, candidates []*domain.Coordinates) (index int, distanceKm float64, ok bool) {
	index = -1
	for i, c := range candidates {
		if c == nil {
			continue
		}
		d := HaversineKm(origin, *c)
		if index == -1 || d < distanceKm {
			index, distanceKm = i, d
		}
	}
	return index, distanceKm, index != -1
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
