package geo

import (
	"math"

	"github.com/paulmach/orb"
)

//*******************************************
// great-circle distance
//*******************************************

// radius of the earth in meters
const EARTH_RADIUS = 6371000.0

// Returns the great-circle distance between two points in meters using the
// haversine formula (https://www.movable-type.co.uk/scripts/latlong.html).
func HaversineDistance(a orb.Point, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180

	delta_lat := (b.Lat() - a.Lat()) * math.Pi / 180
	delta_lon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(delta_lat/2)*math.Sin(delta_lat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(delta_lon/2)*math.Sin(delta_lon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EARTH_RADIUS * c
}
