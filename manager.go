package main

import (
	"errors"
	"fmt"

	"github.com/patrickmn/go-cache"
	"github.com/paulmach/orb"
	"github.com/ttpr0/go-tripplanner/graph"
	"github.com/ttpr0/go-tripplanner/parser"
	"github.com/ttpr0/go-tripplanner/poi"
	"github.com/ttpr0/go-tripplanner/routing"
	"github.com/ttpr0/go-tripplanner/schedule"
	. "github.com/ttpr0/go-tripplanner/util"
	"golang.org/x/exp/slog"
)

var ErrUnknownEntity = errors.New("no entity with that name")

//**********************************************************
// trip manager
//**********************************************************

// Owns the loaded entities and both graphs and serves all queries. Graphs are
// built once here and never mutated afterwards, so concurrent requests need no
// locking. Only nearest-station lookups are cached, computed routes are not.
type TripManager struct {
	config  Config
	city    *graph.CityGraph
	transit *graph.TransitGraph

	nearest_cache *cache.Cache
}

// Loads all entities from the configured source and builds both graphs.
//
// Data problems at startup are unrecoverable and panic, the same way a broken
// config does.
func NewTripManager(config Config) *TripManager {
	seen := NewDict[string, bool](500)
	entities := NewList[*poi.Entity](500)

	lodging := poi.NewLodging(config.Lodging.Name, orb.Point{config.Lodging.Lon, config.Lodging.Lat}, true)
	seen.Set(lodging.Name, true)
	entities.Add(lodging)

	switch config.Source.Format {
	case SOURCE_CSV:
		landmarks, err := parser.LoadLandmarks(config.Source.Landmarks, seen)
		if err != nil {
			slog.Error("failed to load landmarks: " + err.Error())
			panic(err)
		}
		restaurants, err := parser.LoadRestaurants(config.Source.Restaurants, seen)
		if err != nil {
			slog.Error("failed to load restaurants: " + err.Error())
			panic(err)
		}
		for _, e := range landmarks {
			entities.Add(e)
		}
		for _, e := range restaurants {
			entities.Add(e)
		}
	case SOURCE_OSM:
		imported, err := parser.LoadOSMEntities(config.Source.OSM, seen)
		if err != nil {
			slog.Error("failed to import osm extract: " + err.Error())
			panic(err)
		}
		skipped := 0
		for _, e := range imported {
			// stations carry no line topology in a plain extract, the
			// transit network always comes from the station/line files
			if e.Kind == poi.TRANSIT_STATION {
				skipped += 1
				continue
			}
			entities.Add(e)
		}
		if skipped > 0 {
			slog.Info(fmt.Sprintf("skipped %v osm stations without line topology", skipped))
		}
	}

	stations, ids, err := parser.LoadStations(config.Source.Stations, seen)
	if err != nil {
		slog.Error("failed to load stations: " + err.Error())
		panic(err)
	}
	connections, err := parser.LoadConnections(config.Source.Lines, ids)
	if err != nil {
		slog.Error("failed to load lines: " + err.Error())
		panic(err)
	}
	for _, e := range stations {
		entities.Add(e)
	}

	city := graph.BuildCityGraph(entities, config.Routing.ThresholdM)
	transit, err := graph.BuildTransitGraph(stations, connections)
	if err != nil {
		slog.Error("failed to build transit graph: " + err.Error())
		panic(err)
	}

	return &TripManager{
		config:        config,
		city:          city,
		transit:       transit,
		nearest_cache: cache.New(config.CacheTTL(), 2*config.CacheTTL()),
	}
}

func (self *TripManager) GetEntity(name string) (*poi.Entity, error) {
	e := self.city.GetEntity(name)
	if !e.HasValue() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownEntity, name)
	}
	return e.Value, nil
}

func (self *TripManager) Entities(kind Optional[poi.Kind]) List[*poi.Entity] {
	if kind.HasValue() {
		return self.city.EntitiesOfKind(kind.Value)
	}
	return self.city.Entities()
}

// Nearest transit station to the named entity, cached per entity name.
func (self *TripManager) NearestStation(name string) (*poi.Entity, error) {
	entity, err := self.GetEntity(name)
	if err != nil {
		return nil, err
	}
	if cached, ok := self.nearest_cache.Get(name); ok {
		return cached.(*poi.Entity), nil
	}
	nearest := routing.NearestStation(entity, self.city, self.transit)
	if !nearest.HasValue() {
		return nil, routing.ErrNoPath
	}
	self.nearest_cache.Set(name, nearest.Value, cache.DefaultExpiration)
	return nearest.Value, nil
}

// Computes the full route over the named stops. Routes are computed fresh on
// every call.
func (self *TripManager) Route(names []string) (List[*poi.Entity], error) {
	stops := NewList[*poi.Entity](len(names))
	for _, name := range names {
		entity, err := self.GetEntity(name)
		if err != nil {
			return nil, err
		}
		stops.Add(entity)
	}
	return routing.BuildRoute(stops, self.city, self.transit)
}

func (self *TripManager) Schedule(names []string, day poi.Weekday, start poi.DayTime) (List[schedule.TimeBlock], error) {
	route, err := self.Route(names)
	if err != nil {
		return nil, err
	}
	opts := schedule.Options{
		Day:          day,
		Start:        start,
		WalkingSpeed: self.config.Schedule.WalkingSpeedKmh,
		HopTime:      self.config.HopTime(),
	}
	return schedule.BuildSchedule(route, opts), nil
}
