package schedule

import (
	"math"
	"time"

	"github.com/ttpr0/go-tripplanner/geo"
	"github.com/ttpr0/go-tripplanner/poi"
	. "github.com/ttpr0/go-tripplanner/util"
)

//**********************************************************
// day schedule
//**********************************************************

// One entry of the day plan: the visitor arrives at the entity, stays for its
// typical visit duration and leaves again.
type TimeBlock struct {
	Entity    *poi.Entity `json:"entity"`
	Arrival   poi.DayTime `json:"arrival"`
	Departure poi.DayTime `json:"departure"`
	// whether the place is open when the visitor arrives
	Open bool `json:"open"`
}

type Options struct {
	Day   poi.Weekday
	Start poi.DayTime
	// walking speed in km/h
	WalkingSpeed float64
	// fixed ride time per transit hop
	HopTime time.Duration
}

func DefaultOptions() Options {
	return Options{
		Day:          poi.SATURDAY,
		Start:        9 * 60,
		WalkingSpeed: 5.0,
		HopTime:      3 * time.Minute,
	}
}

// Derives the time schedule for a computed route.
//
// Hops between two transit stations take the fixed ride time, every other hop
// is walked at the configured speed over the great-circle distance. Each block
// records whether the place is open at arrival; the schedule is derived
// regardless so the caller can surface closed stops.
func BuildSchedule(route List[*poi.Entity], opts Options) List[TimeBlock] {
	blocks := NewList[TimeBlock](route.Length())
	if route.Length() == 0 {
		return blocks
	}

	now := opts.Start
	first := route[0]
	blocks.Add(TimeBlock{
		Entity:    first,
		Arrival:   now,
		Departure: now,
		Open:      first.OpenAt(opts.Day, now),
	})

	prev := first
	for i := 1; i < route.Length(); i++ {
		entity := route[i]

		now = add_minutes(now, travel_time(prev, entity, opts))
		arrival := now
		now = add_minutes(now, entity.StayDuration())

		blocks.Add(TimeBlock{
			Entity:    entity,
			Arrival:   arrival,
			Departure: now,
			Open:      entity.OpenAt(opts.Day, arrival),
		})
		prev = entity
	}

	return blocks
}

func travel_time(from *poi.Entity, to *poi.Entity, opts Options) time.Duration {
	if from.Kind == poi.TRANSIT_STATION && to.Kind == poi.TRANSIT_STATION {
		return opts.HopTime
	}
	meters := geo.HaversineDistance(from.Loc, to.Loc)
	hours := meters / 1000.0 / opts.WalkingSpeed
	return time.Duration(hours * float64(time.Hour))
}

func add_minutes(t poi.DayTime, d time.Duration) poi.DayTime {
	return t + poi.DayTime(math.Ceil(d.Minutes()))
}
