package graph

import (
	"errors"
	"fmt"

	"github.com/ttpr0/go-tripplanner/poi"
	. "github.com/ttpr0/go-tripplanner/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// transit graph
//*******************************************

var ErrNotStation = errors.New("transit graph vertices must be stations")

// Two stations that are consecutive stops on the same transit line.
type Connection struct {
	StationA string
	StationB string
	Line     string
}

// Graph over the city's transit stations. Edges are purely topological: two
// stations are adjacent when a line serves them as consecutive stops. No
// distance is involved.
type TransitGraph struct {
	Graph
}

// Builds the transit graph from the station list and the declared
// line-adjacency pairs.
//
// Returns ErrNotStation if an entity of another kind sneaks into the station
// list and ErrUnknownVertex if a connection names an unknown station.
func BuildTransitGraph(stations List[*poi.Entity], connections List[Connection]) (*TransitGraph, error) {
	g := &TransitGraph{
		Graph: NewGraph(),
	}

	for _, station := range stations {
		if station.Kind != poi.TRANSIT_STATION {
			return nil, ErrNotStation
		}
		g.AddVertex(station)
	}

	for _, conn := range connections {
		a := g.GetEntity(conn.StationA)
		b := g.GetEntity(conn.StationB)
		if !a.HasValue() || !b.HasValue() {
			return nil, ErrUnknownVertex
		}
		if err := g.AddEdge(a.Value, b.Value); err != nil {
			return nil, err
		}
	}
	slog.Info(fmt.Sprintf("transit graph: %v stations, %v connections", g.VertexCount(), connections.Length()))

	return g, nil
}
