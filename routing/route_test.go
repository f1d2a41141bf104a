package routing

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/ttpr0/go-tripplanner/geo"
	"github.com/ttpr0/go-tripplanner/graph"
	"github.com/ttpr0/go-tripplanner/poi"
	. "github.com/ttpr0/go-tripplanner/util"
)

const testThreshold = 1500.0

func entityList(entities ...*poi.Entity) List[*poi.Entity] {
	l := NewList[*poi.Entity](len(entities))
	for _, e := range entities {
		l.Add(e)
	}
	return l
}

func TestNearestStationAdjacent(t *testing.T) {
	var hours poi.OpeningHours
	museum := poi.NewLandmark("Museum", orb.Point{0, 0}, hours, 4.5)
	central := poi.NewStation("Central", orb.Point{0, 0.005})
	far := poi.NewStation("Far", orb.Point{0, 0.1})

	city := graph.BuildCityGraph(entityList(museum, central, far), testThreshold)
	transit := buildTransit(t, stationList(central, far), connList(
		graph.Connection{StationA: "Central", StationB: "Far", Line: "U1"},
	))

	nearest := NearestStation(museum, city, transit)
	if !nearest.HasValue() || nearest.Value != central {
		t.Errorf("NearestStation = %v; want Central", nearest.Value)
	}
}

func TestNearestStationHillClimb(t *testing.T) {
	var hours poi.OpeningHours
	// no station is within walking distance, the hill-climb walks the chain
	// towards the point and must terminate at its end
	point := poi.NewLandmark("Viewpoint", orb.Point{0.12, 0}, hours, 4.0)
	s1 := poi.NewStation("S1", orb.Point{0, 0})
	s2 := poi.NewStation("S2", orb.Point{0.05, 0})
	s3 := poi.NewStation("S3", orb.Point{0.10, 0})

	city := graph.BuildCityGraph(entityList(point, s1, s2, s3), testThreshold)
	transit := buildTransit(t, stationList(s1, s2, s3), connList(
		graph.Connection{StationA: "S1", StationB: "S2", Line: "U1"},
		graph.Connection{StationA: "S2", StationB: "S3", Line: "U1"},
	))

	nearest := NearestStation(point, city, transit)
	if !nearest.HasValue() {
		t.Fatalf("NearestStation returned no station")
	}
	if nearest.Value != s3 {
		t.Errorf("NearestStation = %v; want S3", nearest.Value.Name)
	}
	// monotonic improvement over any possible seed
	d := geo.HaversineDistance(point.Loc, nearest.Value.Loc)
	for _, seed := range []*poi.Entity{s1, s2, s3} {
		if d > geo.HaversineDistance(point.Loc, seed.Loc) {
			t.Errorf("result is farther from the point than seed %v", seed.Name)
		}
	}
}

func TestNearestStationEmptyNetwork(t *testing.T) {
	var hours poi.OpeningHours
	museum := poi.NewLandmark("Museum", orb.Point{0, 0}, hours, 4.5)
	city := graph.BuildCityGraph(entityList(museum), testThreshold)
	transit := buildTransit(t, stationList(), connList())

	if nearest := NearestStation(museum, city, transit); nearest.HasValue() {
		t.Errorf("NearestStation = %v; want none", nearest.Value)
	}
}

// Geometry (all at the equator, 0.01 degrees is roughly 1113 m):
//
//	lodging L at lat 0, stop A at lat 0.012, stop B at lat -0.012
//	station X at lat 0.014 (adjacent to A only)
//	station Y at lat -0.014 (adjacent to B only)
//	station M far east at lon 0.03, linked X-M-Y
//
// L-A and B-L are walking hops, A-B needs the transit segment [X, M, Y].
func TestBuildRouteEndToEnd(t *testing.T) {
	var hours poi.OpeningHours
	lodging := poi.NewLodging("L", orb.Point{0, 0}, true)
	a := poi.NewLandmark("A", orb.Point{0, 0.012}, hours, 4.5)
	b := poi.NewLandmark("B", orb.Point{0, -0.012}, hours, 4.0)
	x := poi.NewStation("X", orb.Point{0, 0.014})
	y := poi.NewStation("Y", orb.Point{0, -0.014})
	m := poi.NewStation("M", orb.Point{0.03, 0})

	city := graph.BuildCityGraph(entityList(lodging, a, b, x, y, m), testThreshold)
	transit := buildTransit(t, stationList(x, y, m), connList(
		graph.Connection{StationA: "X", StationB: "M", Line: "U1"},
		graph.Connection{StationA: "M", StationB: "Y", Line: "U1"},
	))

	route, err := BuildRoute(entityList(a, b), city, transit)
	if err != nil {
		t.Fatalf("BuildRoute failed: %v", err)
	}
	want := []string{"L", "A", "X", "M", "Y", "B", "L"}
	got := pathNames(route)
	if len(got) != len(want) {
		t.Fatalf("route = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("route = %v; want %v", got, want)
			break
		}
	}
}

func TestBuildRouteDisconnected(t *testing.T) {
	var hours poi.OpeningHours
	lodging := poi.NewLodging("L", orb.Point{0, 0}, true)
	a := poi.NewLandmark("A", orb.Point{0, 0.05}, hours, 4.5)
	x := poi.NewStation("X", orb.Point{0, 0.001})
	y := poi.NewStation("Y", orb.Point{0, 0.049})

	city := graph.BuildCityGraph(entityList(lodging, a, x, y), testThreshold)
	// two stations, no line between them
	transit := buildTransit(t, stationList(x, y), connList())

	_, err := BuildRoute(entityList(a), city, transit)
	if !errors.Is(err, ErrNoPath) {
		t.Errorf("BuildRoute = %v; want ErrNoPath", err)
	}
}

func TestBuildRouteNoLodging(t *testing.T) {
	var hours poi.OpeningHours
	a := poi.NewLandmark("A", orb.Point{0, 0}, hours, 4.5)
	city := graph.BuildCityGraph(entityList(a), testThreshold)
	transit := buildTransit(t, stationList(), connList())

	_, err := BuildRoute(entityList(a), city, transit)
	if !errors.Is(err, ErrNoLodging) {
		t.Errorf("BuildRoute = %v; want ErrNoLodging", err)
	}
}
