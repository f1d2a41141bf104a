package routing

import (
	"errors"

	"github.com/ttpr0/go-tripplanner/graph"
	"github.com/ttpr0/go-tripplanner/poi"
	. "github.com/ttpr0/go-tripplanner/util"
)

//**********************************************************
// route builder
//**********************************************************

var ErrNoLodging = errors.New("city graph has no current lodging")

// Builds the full route for a day of sightseeing.
//
// The route starts at the lodging, visits the requested stops in the given
// order and returns to the lodging. Consecutive points within walking distance
// become a direct hop; everything else is bridged over the transit network by
// finding the station nearest to either endpoint and splicing in the shortest
// station path between them.
//
// The visiting order is taken as-is, nothing is reordered. A failed station
// path search aborts the whole route since the transit network is assumed to
// be connected.
func BuildRoute(stops List[*poi.Entity], city *graph.CityGraph, transit *graph.TransitGraph) (List[*poi.Entity], error) {
	lodging := city.Lodging()
	if lodging == nil {
		return nil, ErrNoLodging
	}

	route := NewList[*poi.Entity](stops.Length() + 2)
	route.Add(lodging)
	prev := lodging

	for i := 0; i <= stops.Length(); i++ {
		// the final stop is the return to the lodging
		var stop *poi.Entity
		if i < stops.Length() {
			stop = stops[i]
		} else {
			stop = lodging
		}

		if city.Adjacent(prev, stop) {
			route.Add(stop)
			prev = stop
			continue
		}

		from := NearestStation(prev, city, transit)
		to := NearestStation(stop, city, transit)
		if !from.HasValue() || !to.HasValue() {
			return nil, ErrNoPath
		}
		segment, err := ShortestStationPath(from.Value, to.Value, transit)
		if err != nil {
			return nil, err
		}
		for _, station := range segment {
			route.Add(station)
		}
		route.Add(stop)
		prev = stop
	}

	return route, nil
}
