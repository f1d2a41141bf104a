package parser

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/ttpr0/go-tripplanner/graph"
	"github.com/ttpr0/go-tripplanner/poi"
	. "github.com/ttpr0/go-tripplanner/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// flat-file ingestion
//*******************************************

var ErrInvalidCoordinate = errors.New("coordinate out of range")
var ErrDuplicateName = errors.New("duplicate entity name")
var ErrUnknownStationID = errors.New("line references an unknown station id")

// A landmark or restaurant row. Opening hours come as one "HHMM" pair per
// weekday, "N/A" on days the place is closed.
type place_row struct {
	Name     string  `csv:"name"`
	Lat      float64 `csv:"lat"`
	Lon      float64 `csv:"lon"`
	Rating   float64 `csv:"rating"`
	SunOpen  string  `csv:"sun_open"`
	SunClose string  `csv:"sun_close"`
	MonOpen  string  `csv:"mon_open"`
	MonClose string  `csv:"mon_close"`
	TueOpen  string  `csv:"tue_open"`
	TueClose string  `csv:"tue_close"`
	WedOpen  string  `csv:"wed_open"`
	WedClose string  `csv:"wed_close"`
	ThuOpen  string  `csv:"thu_open"`
	ThuClose string  `csv:"thu_close"`
	FriOpen  string  `csv:"fri_open"`
	FriClose string  `csv:"fri_close"`
	SatOpen  string  `csv:"sat_open"`
	SatClose string  `csv:"sat_close"`
}

type station_row struct {
	ID   int     `csv:"id"`
	Name string  `csv:"name"`
	Lat  float64 `csv:"lat"`
	Lon  float64 `csv:"lon"`
}

type line_row struct {
	Line     string `csv:"line"`
	StationA int    `csv:"station_a"`
	StationB int    `csv:"station_b"`
}

func (self *place_row) hour_pairs() [7][2]string {
	return [7][2]string{
		{self.SunOpen, self.SunClose},
		{self.MonOpen, self.MonClose},
		{self.TueOpen, self.TueClose},
		{self.WedOpen, self.WedClose},
		{self.ThuOpen, self.ThuClose},
		{self.FriOpen, self.FriClose},
		{self.SatOpen, self.SatClose},
	}
}

func parse_opening_hours(pairs [7][2]string) (poi.OpeningHours, error) {
	var hours poi.OpeningHours
	for day := 0; day < 7; day++ {
		open_str := pairs[day][0]
		close_str := pairs[day][1]
		if open_str == "N/A" || open_str == "" {
			continue
		}
		open, err := poi.ParseDayTime(open_str)
		if err != nil {
			return hours, err
		}
		close, err := poi.ParseDayTime(close_str)
		if err != nil {
			return hours, err
		}
		hours[day] = Some(poi.TimeRange{Open: open, Close: close})
	}
	return hours, nil
}

func validate(name string, loc orb.Point, seen Dict[string, bool]) error {
	if loc.Lat() < -90 || loc.Lat() > 90 || loc.Lon() < -180 || loc.Lon() > 180 {
		return fmt.Errorf("%w: %v", ErrInvalidCoordinate, name)
	}
	if seen.ContainsKey(name) {
		return fmt.Errorf("%w: %v", ErrDuplicateName, name)
	}
	seen.Set(name, true)
	return nil
}

func load_places(file string, seen Dict[string, bool], construct func(string, orb.Point, poi.OpeningHours, float64) *poi.Entity) (List[*poi.Entity], error) {
	entities := NewList[*poi.Entity](100)
	var row_err error
	for row := range ReadCSVFromFile[place_row](file, ';') {
		loc := orb.Point{row.Lon, row.Lat}
		if err := validate(row.Name, loc, seen); err != nil {
			row_err = err
			break
		}
		hours, err := parse_opening_hours(row.hour_pairs())
		if err != nil {
			row_err = fmt.Errorf("%v: %w", row.Name, err)
			break
		}
		entities.Add(construct(row.Name, loc, hours, row.Rating))
	}
	if row_err != nil {
		return nil, row_err
	}
	return entities, nil
}

func LoadLandmarks(file string, seen Dict[string, bool]) (List[*poi.Entity], error) {
	return load_places(file, seen, poi.NewLandmark)
}

func LoadRestaurants(file string, seen Dict[string, bool]) (List[*poi.Entity], error) {
	return load_places(file, seen, poi.NewRestaurant)
}

// Loads the station file and returns the stations plus the id-to-name mapping
// the line file refers to.
func LoadStations(file string, seen Dict[string, bool]) (List[*poi.Entity], Dict[int, string], error) {
	stations := NewList[*poi.Entity](100)
	ids := NewDict[int, string](100)
	var row_err error
	for row := range ReadCSVFromFile[station_row](file, ';') {
		loc := orb.Point{row.Lon, row.Lat}
		if err := validate(row.Name, loc, seen); err != nil {
			row_err = err
			break
		}
		stations.Add(poi.NewStation(row.Name, loc))
		ids.Set(row.ID, row.Name)
	}
	if row_err != nil {
		return nil, nil, row_err
	}
	return stations, ids, nil
}

// Loads the line-adjacency file. Every row declares two station ids that are
// consecutive stops on the named line.
func LoadConnections(file string, ids Dict[int, string]) (List[graph.Connection], error) {
	connections := NewList[graph.Connection](100)
	var row_err error
	for row := range ReadCSVFromFile[line_row](file, ';') {
		if !ids.ContainsKey(row.StationA) || !ids.ContainsKey(row.StationB) {
			row_err = fmt.Errorf("%w: %v/%v", ErrUnknownStationID, row.StationA, row.StationB)
			break
		}
		connections.Add(graph.Connection{
			StationA: ids[row.StationA],
			StationB: ids[row.StationB],
			Line:     row.Line,
		})
	}
	if row_err != nil {
		return nil, row_err
	}
	slog.Info(fmt.Sprintf("loaded %v line connections", connections.Length()))
	return connections, nil
}
