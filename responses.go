package main

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/ttpr0/go-tripplanner/poi"
	"github.com/ttpr0/go-tripplanner/schedule"
	. "github.com/ttpr0/go-tripplanner/util"
)

//**********************************************************
// response payloads
//**********************************************************

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

type StopInfo struct {
	Name string   `json:"name"`
	Kind poi.Kind `json:"kind"`
	Lat  float64  `json:"lat"`
	Lon  float64  `json:"lon"`
}

func NewStopInfo(entity *poi.Entity) StopInfo {
	return StopInfo{
		Name: entity.Name,
		Kind: entity.Kind,
		Lat:  entity.Loc.Lat(),
		Lon:  entity.Loc.Lon(),
	}
}

type EntitiesResponse struct {
	Entities []StopInfo `json:"entities"`
}

func NewEntitiesResponse(entities List[*poi.Entity]) EntitiesResponse {
	stops := make([]StopInfo, 0, entities.Length())
	for _, e := range entities {
		stops = append(stops, NewStopInfo(e))
	}
	return EntitiesResponse{Entities: stops}
}

type RouteResponse struct {
	Stops    []StopInfo                 `json:"stops"`
	Geometry *geojson.FeatureCollection `json:"geometry"`
}

// Renders the route as an ordered stop list plus a GeoJSON feature collection
// (one point per stop and the connecting line) for the presentation side.
func NewRouteResponse(route List[*poi.Entity]) RouteResponse {
	stops := make([]StopInfo, 0, route.Length())
	line := make(orb.LineString, 0, route.Length())
	collection := geojson.NewFeatureCollection()

	for _, e := range route {
		stops = append(stops, NewStopInfo(e))
		line = append(line, e.Loc)

		feature := geojson.NewFeature(e.Loc)
		feature.Properties["name"] = e.Name
		feature.Properties["kind"] = e.Kind.String()
		collection.Append(feature)
	}
	path := geojson.NewFeature(line)
	path.Properties["stops"] = len(stops)
	collection.Append(path)

	return RouteResponse{
		Stops:    stops,
		Geometry: collection,
	}
}

type TimeBlockInfo struct {
	Name      string `json:"name"`
	Arrival   string `json:"arrival"`
	Departure string `json:"departure"`
	Open      bool   `json:"open"`
}

type ScheduleResponse struct {
	Blocks []TimeBlockInfo `json:"blocks"`
}

func NewScheduleResponse(blocks List[schedule.TimeBlock]) ScheduleResponse {
	infos := make([]TimeBlockInfo, 0, blocks.Length())
	for _, block := range blocks {
		infos = append(infos, TimeBlockInfo{
			Name:      block.Entity.Name,
			Arrival:   block.Arrival.String(),
			Departure: block.Departure.String(),
			Open:      block.Open,
		})
	}
	return ScheduleResponse{Blocks: infos}
}
