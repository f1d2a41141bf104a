package poi

import (
	"time"

	"github.com/paulmach/orb"
	. "github.com/ttpr0/go-tripplanner/util"
)

//**********************************************************
// points of interest
//**********************************************************

// How long a visitor typically stays at a place of the given kind.
const (
	LANDMARK_STAY   = 2 * time.Hour
	RESTAURANT_STAY = 1 * time.Hour
	STATION_DWELL   = 5 * time.Minute
)

// Everything a visit needs to know about a landmark or restaurant.
type VisitInfo struct {
	Hours  OpeningHours  `json:"hours"`
	Rating float64       `json:"rating"`
	Stay   time.Duration `json:"stay"`
}

// A named point of interest somewhere in the city.
//
// The name is the identity: graphs key their vertices by it. Entities are
// immutable once constructed, coordinates are (lon, lat) and expected to be
// validated by the loader.
type Entity struct {
	Name string    `json:"name"`
	Loc  orb.Point `json:"location"`
	Kind Kind      `json:"kind"`

	// kind-specific payload
	Visit     Optional[VisitInfo] `json:"visit,omitempty"`
	Residence bool                `json:"residence,omitempty"`
}

func NewLandmark(name string, loc orb.Point, hours OpeningHours, rating float64) *Entity {
	return &Entity{
		Name: name,
		Loc:  loc,
		Kind: LANDMARK,
		Visit: Some(VisitInfo{
			Hours:  hours,
			Rating: rating,
			Stay:   LANDMARK_STAY,
		}),
	}
}

func NewRestaurant(name string, loc orb.Point, hours OpeningHours, rating float64) *Entity {
	return &Entity{
		Name: name,
		Loc:  loc,
		Kind: RESTAURANT,
		Visit: Some(VisitInfo{
			Hours:  hours,
			Rating: rating,
			Stay:   RESTAURANT_STAY,
		}),
	}
}

func NewStation(name string, loc orb.Point) *Entity {
	return &Entity{
		Name: name,
		Loc:  loc,
		Kind: TRANSIT_STATION,
	}
}

func NewLodging(name string, loc orb.Point, residence bool) *Entity {
	return &Entity{
		Name:      name,
		Loc:       loc,
		Kind:      LODGING,
		Residence: residence,
	}
}

// How long the schedule blocks out for a stop at this entity.
func (self *Entity) StayDuration() time.Duration {
	switch self.Kind {
	case LANDMARK, RESTAURANT:
		return self.Visit.Value.Stay
	case TRANSIT_STATION:
		return STATION_DWELL
	default:
		return 0
	}
}

// Whether the entity welcomes a visitor arriving at the given time.
//
// Stations and lodging have no opening hours and are always open.
func (self *Entity) OpenAt(day Weekday, at DayTime) bool {
	switch self.Kind {
	case LANDMARK, RESTAURANT:
		return self.Visit.Value.Hours.OpenAt(day, at)
	default:
		return true
	}
}
