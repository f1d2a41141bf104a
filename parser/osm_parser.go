package parser

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/ttpr0/go-tripplanner/poi"
	. "github.com/ttpr0/go-tripplanner/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// osm import
//*******************************************

// Imports points of interest from an OSM XML extract as an alternative to the
// csv files. Nodes map by tag: tourism=attraction becomes a landmark,
// amenity=restaurant a restaurant and railway=station a transit station.
// Unnamed nodes are skipped, places get round-the-clock opening hours since
// the extract carries none.
//
// Line adjacencies still come from the csv line file, an extract of plain
// nodes has no usable topology.
func LoadOSMEntities(file string, seen Dict[string, bool]) (List[*poi.Entity], error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	o := &osm.OSM{}
	if err := xml.Unmarshal(data, o); err != nil {
		return nil, err
	}

	entities := NewList[*poi.Entity](len(o.Nodes))
	for _, node := range o.Nodes {
		name := node.Tags.Find("name")
		if name == "" {
			continue
		}
		loc := orb.Point{node.Lon, node.Lat}

		var entity *poi.Entity
		switch {
		case node.Tags.Find("tourism") == "attraction":
			entity = poi.NewLandmark(name, loc, poi.AllDayHours(), 0)
		case node.Tags.Find("amenity") == "restaurant":
			entity = poi.NewRestaurant(name, loc, poi.AllDayHours(), 0)
		case node.Tags.Find("railway") == "station":
			entity = poi.NewStation(name, loc)
		default:
			continue
		}

		if err := validate(entity.Name, entity.Loc, seen); err != nil {
			return nil, err
		}
		entities.Add(entity)
	}
	slog.Info(fmt.Sprintf("imported %v entities from osm extract", entities.Length()))

	return entities, nil
}
