package routing

import (
	"github.com/ttpr0/go-tripplanner/geo"
	"github.com/ttpr0/go-tripplanner/graph"
	"github.com/ttpr0/go-tripplanner/poi"
	. "github.com/ttpr0/go-tripplanner/util"
)

//**********************************************************
// nearest station
//**********************************************************

// Returns the transit station that best serves the given point.
//
// A station directly adjacent to the point in the city graph wins immediately,
// any of them if there are several. Otherwise a greedy hill-climb over the
// transit graph is run from an arbitrary seed station: move to whichever
// unvisited neighbour is closest to the point as long as that improves on the
// current station, stop at the first local optimum. The result is a heuristic,
// not a guaranteed global nearest station.
//
// Returns None if the transit graph has no stations at all.
func NearestStation(point *poi.Entity, city *graph.CityGraph, transit *graph.TransitGraph) Optional[*poi.Entity] {
	for _, neighbour := range city.Neighbours(point.Name) {
		if neighbour.Kind == poi.TRANSIT_STATION {
			return Some(neighbour)
		}
	}

	stations := transit.Entities()
	if stations.Length() == 0 {
		return None[*poi.Entity]()
	}
	seed := stations[0]

	visited := NewDict[string, bool](10)
	current := seed
	current_dist := geo.HaversineDistance(point.Loc, current.Loc)
	for {
		visited.Set(current.Name, true)

		closest := current
		closest_dist := current_dist
		for _, neighbour := range transit.Neighbours(current.Name) {
			if visited.ContainsKey(neighbour.Name) {
				continue
			}
			d := geo.HaversineDistance(point.Loc, neighbour.Loc)
			if d < closest_dist {
				closest = neighbour
				closest_dist = d
			}
		}

		// no neighbour improves on the current station
		if closest == current {
			return Some(current)
		}
		current = closest
		current_dist = closest_dist
	}
}
