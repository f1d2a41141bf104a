package graph

import (
	"fmt"

	"github.com/ttpr0/go-tripplanner/geo"
	"github.com/ttpr0/go-tripplanner/poi"
	. "github.com/ttpr0/go-tripplanner/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// city proximity graph
//*******************************************

// Proximity graph over every point of interest in the city, transit stations
// and the current lodging included. Two entities are adjacent when they are
// within walking distance of each other.
type CityGraph struct {
	Graph

	lodging *poi.Entity
}

// The lodging the trip starts and ends at.
func (self *CityGraph) Lodging() *poi.Entity {
	return self.lodging
}

func (self *CityGraph) EntitiesOfKind(kind poi.Kind) List[*poi.Entity] {
	entities := NewList[*poi.Entity](10)
	for _, v := range self.vertices {
		if v.entity.Kind == kind {
			entities.Add(v.entity)
		}
	}
	return entities
}

// Builds the proximity graph from the full set of loaded entities.
//
// Every unordered pair of vertices within threshold meters of each other gets
// an edge. The pass is O(n^2), fine for a single city's dataset. The lodging
// vertex is the entity marked as current residence.
func BuildCityGraph(entities List[*poi.Entity], threshold float64) *CityGraph {
	g := &CityGraph{
		Graph: NewGraph(),
	}

	for _, entity := range entities {
		g.AddVertex(entity)
		if entity.Kind == poi.LODGING && entity.Residence {
			g.lodging = entity
		}
	}

	slog.Info("Adding edges by geographical proximity")
	vertices := g.Entities()
	edge_count := 0
	for i := 0; i < vertices.Length(); i++ {
		for j := i + 1; j < vertices.Length(); j++ {
			d := geo.HaversineDistance(vertices[i].Loc, vertices[j].Loc)
			if d <= threshold {
				g.AddEdge(vertices[i], vertices[j])
				edge_count += 1
			}
		}
	}
	slog.Info(fmt.Sprintf("city graph: %v vertices, %v edges", g.VertexCount(), edge_count))

	return g
}
