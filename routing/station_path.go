package routing

import (
	"errors"

	"github.com/ttpr0/go-tripplanner/graph"
	"github.com/ttpr0/go-tripplanner/poi"
	. "github.com/ttpr0/go-tripplanner/util"
	"golang.org/x/exp/slices"
)

//**********************************************************
// shortest station path
//**********************************************************

// Returned when the transit graph component containing the start station does
// not reach the end station. A connected transit network never produces this,
// so callers treat it as a fatal precondition violation.
var ErrNoPath = errors.New("no transit path between the given stations")

// One level of the depth-first search: the station entered at this level and
// the neighbours still left to try, sorted descending by known distance so the
// nearest candidate pops off the tail first.
type search_frame struct {
	station    *poi.Entity
	candidates List[*poi.Entity]
}

// Returns the shortest sequence of stations from start to end inclusive,
// shortest by edge count over the transit graph.
//
// Depth-first search guided by a greedy distance heuristic with full
// backtracking. Known edge-count distances from the start are relaxed whenever
// a station is expanded and shared across the whole search, while the
// path-prefix set is unwound on backtrack, so each invocation owns all of its
// state and concurrent searches never interfere.
//
// ShortestStationPath(s, s) returns [s]. Returns ErrNoPath when end is
// unreachable and graph.ErrUnknownVertex if either station is not a vertex.
func ShortestStationPath(start *poi.Entity, end *poi.Entity, transit *graph.TransitGraph) (List[*poi.Entity], error) {
	if !transit.HasVertex(start.Name) || !transit.HasVertex(end.Name) {
		return nil, graph.ErrUnknownVertex
	}

	// known shortest distances from start, in edge count
	distances := NewDict[string, int](transit.VertexCount())
	distances.Set(start.Name, 0)
	// stations on the current path prefix
	on_path := NewDict[string, bool](10)

	stack := NewList[search_frame](10)

	enter := func(station *poi.Entity) {
		on_path.Set(station.Name, true)

		candidates := NewList[*poi.Entity](4)
		for _, neighbour := range transit.Neighbours(station.Name) {
			if on_path.ContainsKey(neighbour.Name) {
				continue
			}
			// standard relaxation
			d := distances[station.Name] + 1
			if !distances.ContainsKey(neighbour.Name) || d < distances[neighbour.Name] {
				distances.Set(neighbour.Name, d)
			}
			candidates.Add(neighbour)
		}
		slices.SortFunc(candidates, func(a, b *poi.Entity) int {
			return distances[b.Name] - distances[a.Name]
		})
		stack.Add(search_frame{station: station, candidates: candidates})
	}

	enter(start)
	for stack.Length() > 0 {
		top := &stack[stack.Length()-1]

		if top.station.Name == end.Name {
			path := NewList[*poi.Entity](stack.Length())
			for _, frame := range stack {
				path.Add(frame.station)
			}
			return path, nil
		}

		if top.candidates.Length() == 0 {
			// every neighbour exhausted without reaching the end, backtrack
			on_path.Delete(top.station.Name)
			stack.Pop()
			continue
		}

		enter(top.candidates.Pop())
	}

	return nil, ErrNoPath
}
