package schedule

import (
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/ttpr0/go-tripplanner/poi"
	. "github.com/ttpr0/go-tripplanner/util"
)

func TestBuildScheduleWalking(t *testing.T) {
	var hours poi.OpeningHours
	hours[poi.SATURDAY] = Some(poi.TimeRange{Open: 9 * 60, Close: 18 * 60})

	lodging := poi.NewLodging("Hotel", orb.Point{0, 0}, true)
	// ~1113 m north, 14 minutes at 5 km/h (rounded up)
	museum := poi.NewLandmark("Museum", orb.Point{0, 0.01}, hours, 4.5)

	route := NewList[*poi.Entity](2)
	route.Add(lodging)
	route.Add(museum)

	opts := DefaultOptions()
	blocks := BuildSchedule(route, opts)

	if blocks.Length() != 2 {
		t.Fatalf("blocks = %v; want 2", blocks.Length())
	}
	if blocks[0].Arrival != 9*60 || blocks[0].Departure != 9*60 {
		t.Errorf("lodging block = %v-%v; want 09:00-09:00", blocks[0].Arrival, blocks[0].Departure)
	}
	arrival := blocks[1].Arrival
	if arrival != 9*60+14 {
		t.Errorf("museum arrival = %v; want 09:14", arrival.String())
	}
	if blocks[1].Departure != arrival+120 {
		t.Errorf("museum departure = %v; want two hours after arrival", blocks[1].Departure.String())
	}
	if !blocks[1].Open {
		t.Errorf("museum should be open at arrival")
	}
}

func TestBuildScheduleTransitHop(t *testing.T) {
	x := poi.NewStation("X", orb.Point{0, 0})
	y := poi.NewStation("Y", orb.Point{0.5, 0})

	route := NewList[*poi.Entity](2)
	route.Add(x)
	route.Add(y)

	opts := DefaultOptions()
	opts.HopTime = 3 * time.Minute
	blocks := BuildSchedule(route, opts)

	// the stations are far apart but the hop takes the fixed ride time
	if blocks[1].Arrival != blocks[0].Departure+3 {
		t.Errorf("arrival = %v; want 3 minutes after departure %v", blocks[1].Arrival, blocks[0].Departure)
	}
	if blocks[1].Departure != blocks[1].Arrival+5 {
		t.Errorf("station dwell = %v; want 5 minutes", blocks[1].Departure-blocks[1].Arrival)
	}
}

func TestBuildScheduleClosed(t *testing.T) {
	var hours poi.OpeningHours
	hours[poi.MONDAY] = Some(poi.TimeRange{Open: 9 * 60, Close: 12 * 60})

	cafe := poi.NewRestaurant("Cafe", orb.Point{0, 0}, hours, 4.0)
	route := NewList[*poi.Entity](1)
	route.Add(cafe)

	opts := DefaultOptions()
	opts.Day = poi.MONDAY
	opts.Start = 13 * 60
	blocks := BuildSchedule(route, opts)

	if blocks[0].Open {
		t.Errorf("cafe should be closed at 13:00")
	}
}
