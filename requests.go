package main

//**********************************************************
// request payloads
//**********************************************************

type EntitiesRequest struct {
	Kind string `json:"kind"`
}

type NearestRequest struct {
	Name string `json:"name"`
}

type RouteRequest struct {
	Stops []string `json:"stops"`
}

type ScheduleRequest struct {
	Stops []string `json:"stops"`
	// weekday name, e.g. "Saturday"
	Day string `json:"day"`
	// departure from the lodging as "HHMM"
	Start string `json:"start"`
}
