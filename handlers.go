package main

import (
	"errors"

	"github.com/ttpr0/go-tripplanner/poi"
	"github.com/ttpr0/go-tripplanner/routing"
	. "github.com/ttpr0/go-tripplanner/util"
)

//**********************************************************
// request handlers
//**********************************************************

func HandleEntitiesRequest(req EntitiesRequest) Result {
	kind := None[poi.Kind]()
	if req.Kind != "" {
		k, err := poi.KindFromString(req.Kind)
		if err != nil {
			return BadRequest("Invalid entity kind")
		}
		kind = Some(k)
	}
	return OK(NewEntitiesResponse(MANAGER.Entities(kind)))
}

func HandleNearestRequest(req NearestRequest) Result {
	if req.Name == "" {
		return BadRequest("Missing entity name")
	}
	station, err := MANAGER.NearestStation(req.Name)
	if err != nil {
		if errors.Is(err, ErrUnknownEntity) {
			return NotFound(err.Error())
		}
		return ServerError(err.Error())
	}
	return OK(NewStopInfo(station))
}

func HandleRouteRequest(req RouteRequest) Result {
	if len(req.Stops) == 0 {
		return BadRequest("No stops requested")
	}
	route, err := MANAGER.Route(req.Stops)
	if err != nil {
		return route_error(err)
	}
	return OK(NewRouteResponse(route))
}

func HandleScheduleRequest(req ScheduleRequest) Result {
	if len(req.Stops) == 0 {
		return BadRequest("No stops requested")
	}
	day, err := poi.WeekdayFromString(req.Day)
	if err != nil {
		return BadRequest("Invalid weekday")
	}
	start, err := poi.ParseDayTime(req.Start)
	if err != nil {
		return BadRequest("Invalid start time")
	}
	blocks, err := MANAGER.Schedule(req.Stops, day, start)
	if err != nil {
		return route_error(err)
	}
	return OK(NewScheduleResponse(blocks))
}

// A disconnected transit network is a data problem, not a caller problem.
func route_error(err error) Result {
	if errors.Is(err, ErrUnknownEntity) {
		return NotFound(err.Error())
	}
	if errors.Is(err, routing.ErrNoPath) {
		return ServerError(err.Error())
	}
	return BadRequest(err.Error())
}
