package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/paulmach/orb"
	"github.com/ttpr0/go-tripplanner/graph"
	"github.com/ttpr0/go-tripplanner/poi"
	. "github.com/ttpr0/go-tripplanner/util"
)

func testManager(t *testing.T) *TripManager {
	t.Helper()
	var hours poi.OpeningHours
	hours[poi.SATURDAY] = Some(poi.TimeRange{Open: 9 * 60, Close: 18 * 60})

	lodging := poi.NewLodging("Hotel", orb.Point{0, 0}, true)
	museum := poi.NewLandmark("Museum", orb.Point{0, 0.012}, hours, 4.5)
	cafe := poi.NewRestaurant("Cafe", orb.Point{0, -0.012}, hours, 4.0)
	x := poi.NewStation("X", orb.Point{0, 0.014})
	y := poi.NewStation("Y", orb.Point{0, -0.014})
	m := poi.NewStation("M", orb.Point{0.03, 0})

	entities := NewList[*poi.Entity](6)
	for _, e := range []*poi.Entity{lodging, museum, cafe, x, y, m} {
		entities.Add(e)
	}
	stations := NewList[*poi.Entity](3)
	for _, s := range []*poi.Entity{x, y, m} {
		stations.Add(s)
	}
	conns := NewList[graph.Connection](2)
	conns.Add(graph.Connection{StationA: "X", StationB: "M", Line: "U1"})
	conns.Add(graph.Connection{StationA: "M", StationB: "Y", Line: "U1"})

	city := graph.BuildCityGraph(entities, 1500.0)
	transit, err := graph.BuildTransitGraph(stations, conns)
	if err != nil {
		t.Fatalf("BuildTransitGraph failed: %v", err)
	}

	config := Config{}
	config.fill_defaults()
	return &TripManager{
		config:        config,
		city:          city,
		transit:       transit,
		nearest_cache: cache.New(time.Minute, time.Minute),
	}
}

func TestHandleRouteRequest(t *testing.T) {
	MANAGER = testManager(t)

	res := HandleRouteRequest(RouteRequest{Stops: []string{"Museum", "Cafe"}})
	if res.status != http.StatusOK {
		t.Fatalf("status = %v; want 200 (%v)", res.status, res.result)
	}
	resp := res.result.(RouteResponse)
	want := []string{"Hotel", "Museum", "X", "M", "Y", "Cafe", "Hotel"}
	if len(resp.Stops) != len(want) {
		t.Fatalf("route has %v stops; want %v", len(resp.Stops), len(want))
	}
	for i := range want {
		if resp.Stops[i].Name != want[i] {
			t.Errorf("stop %v = %v; want %v", i, resp.Stops[i].Name, want[i])
		}
	}
	// one point feature per stop plus the connecting line
	if len(resp.Geometry.Features) != len(want)+1 {
		t.Errorf("geometry has %v features; want %v", len(resp.Geometry.Features), len(want)+1)
	}
}

func TestHandleRouteRequestUnknownStop(t *testing.T) {
	MANAGER = testManager(t)

	res := HandleRouteRequest(RouteRequest{Stops: []string{"Nowhere"}})
	if res.status != http.StatusNotFound {
		t.Errorf("status = %v; want 404", res.status)
	}
}

func TestHandleNearestRequest(t *testing.T) {
	MANAGER = testManager(t)

	res := HandleNearestRequest(NearestRequest{Name: "Museum"})
	if res.status != http.StatusOK {
		t.Fatalf("status = %v; want 200 (%v)", res.status, res.result)
	}
	stop := res.result.(StopInfo)
	if stop.Name != "X" {
		t.Errorf("nearest = %v; want X", stop.Name)
	}

	// second lookup is served from the cache
	res = HandleNearestRequest(NearestRequest{Name: "Museum"})
	if res.status != http.StatusOK || res.result.(StopInfo).Name != "X" {
		t.Errorf("cached lookup differs: %v", res.result)
	}
}

func TestHandleEntitiesRequest(t *testing.T) {
	MANAGER = testManager(t)

	res := HandleEntitiesRequest(EntitiesRequest{Kind: "station"})
	if res.status != http.StatusOK {
		t.Fatalf("status = %v; want 200", res.status)
	}
	resp := res.result.(EntitiesResponse)
	if len(resp.Entities) != 3 {
		t.Errorf("found %v stations; want 3", len(resp.Entities))
	}

	res = HandleEntitiesRequest(EntitiesRequest{Kind: "castle"})
	if res.status != http.StatusBadRequest {
		t.Errorf("status = %v; want 400", res.status)
	}
}

func TestHandleScheduleRequest(t *testing.T) {
	MANAGER = testManager(t)

	res := HandleScheduleRequest(ScheduleRequest{
		Stops: []string{"Museum"},
		Day:   "Saturday",
		Start: "0900",
	})
	if res.status != http.StatusOK {
		t.Fatalf("status = %v; want 200 (%v)", res.status, res.result)
	}
	resp := res.result.(ScheduleResponse)
	if len(resp.Blocks) == 0 {
		t.Fatalf("empty schedule")
	}
	if resp.Blocks[0].Name != "Hotel" || resp.Blocks[0].Arrival != "09:00" {
		t.Errorf("first block = %v", resp.Blocks[0])
	}
	if !resp.Blocks[1].Open {
		t.Errorf("museum should be open at arrival")
	}

	res = HandleScheduleRequest(ScheduleRequest{Stops: []string{"Museum"}, Day: "Caturday", Start: "0900"})
	if res.status != http.StatusBadRequest {
		t.Errorf("status = %v; want 400", res.status)
	}
}
