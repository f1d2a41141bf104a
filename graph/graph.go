package graph

import (
	"errors"

	"github.com/ttpr0/go-tripplanner/poi"
	. "github.com/ttpr0/go-tripplanner/util"
)

//*******************************************
// graph base
//*******************************************

// Returned when an edge is requested between entities that have not been added
// as vertices. This always signals a bug in graph construction.
var ErrUnknownVertex = errors.New("entity is not a vertex of this graph")

type vertex struct {
	entity     *poi.Entity
	neighbours Dict[string, *vertex]
}

func new_vertex(entity *poi.Entity) *vertex {
	return &vertex{
		entity:     entity,
		neighbours: NewDict[string, *vertex](4),
	}
}

// An undirected graph over points of interest, vertices keyed by entity name.
//
// Graphs are built once at load time and read-only during routing. Adjacency is
// kept symmetric and self-loops are never stored.
type Graph struct {
	vertices Dict[string, *vertex]
}

func NewGraph() Graph {
	return Graph{
		vertices: NewDict[string, *vertex](100),
	}
}

// Adds the entity as a vertex without any neighbours.
//
// Does nothing if a vertex with the same name is already present.
func (self *Graph) AddVertex(entity *poi.Entity) {
	if !self.vertices.ContainsKey(entity.Name) {
		self.vertices.Set(entity.Name, new_vertex(entity))
	}
}

func (self *Graph) HasVertex(name string) bool {
	return self.vertices.ContainsKey(name)
}

func (self *Graph) GetEntity(name string) Optional[*poi.Entity] {
	if v, ok := self.vertices[name]; ok {
		return Some(v.entity)
	}
	return None[*poi.Entity]()
}

// Adds an undirected edge between two entities already present as vertices.
//
// Returns ErrUnknownVertex if either is missing. Edges between an entity and
// itself are ignored.
func (self *Graph) AddEdge(a *poi.Entity, b *poi.Entity) error {
	v1, ok1 := self.vertices[a.Name]
	v2, ok2 := self.vertices[b.Name]
	if !ok1 || !ok2 {
		return ErrUnknownVertex
	}
	if a.Name == b.Name {
		return nil
	}
	v1.neighbours.Set(v2.entity.Name, v2)
	v2.neighbours.Set(v1.entity.Name, v1)
	return nil
}

// Returns whether the two entities are connected by an edge.
//
// Entities missing from the graph are adjacent to nothing.
func (self *Graph) Adjacent(a *poi.Entity, b *poi.Entity) bool {
	v, ok := self.vertices[a.Name]
	if !ok {
		return false
	}
	return v.neighbours.ContainsKey(b.Name)
}

func (self *Graph) Neighbours(name string) List[*poi.Entity] {
	v, ok := self.vertices[name]
	if !ok {
		return NewList[*poi.Entity](0)
	}
	neighbours := NewList[*poi.Entity](v.neighbours.Length())
	for _, n := range v.neighbours {
		neighbours.Add(n.entity)
	}
	return neighbours
}

func (self *Graph) Entities() List[*poi.Entity] {
	entities := NewList[*poi.Entity](self.vertices.Length())
	for _, v := range self.vertices {
		entities.Add(v.entity)
	}
	return entities
}

func (self *Graph) VertexCount() int {
	return self.vertices.Length()
}
