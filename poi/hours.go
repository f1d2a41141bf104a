package poi

import (
	"errors"
	"strconv"

	. "github.com/ttpr0/go-tripplanner/util"
)

//**********************************************************
// opening hours
//**********************************************************

type Weekday byte

const (
	SUNDAY    Weekday = 0
	MONDAY    Weekday = 1
	TUESDAY   Weekday = 2
	WEDNESDAY Weekday = 3
	THURSDAY  Weekday = 4
	FRIDAY    Weekday = 5
	SATURDAY  Weekday = 6
)

func (self Weekday) String() string {
	switch self {
	case SUNDAY:
		return "Sunday"
	case MONDAY:
		return "Monday"
	case TUESDAY:
		return "Tuesday"
	case WEDNESDAY:
		return "Wednesday"
	case THURSDAY:
		return "Thursday"
	case FRIDAY:
		return "Friday"
	case SATURDAY:
		return "Saturday"
	default:
		panic("unknown weekday")
	}
}

func WeekdayFromString(s string) (Weekday, error) {
	switch s {
	case "Sunday":
		return SUNDAY, nil
	case "Monday":
		return MONDAY, nil
	case "Tuesday":
		return TUESDAY, nil
	case "Wednesday":
		return WEDNESDAY, nil
	case "Thursday":
		return THURSDAY, nil
	case "Friday":
		return FRIDAY, nil
	case "Saturday":
		return SATURDAY, nil
	default:
		return SUNDAY, errors.New("unknown weekday")
	}
}

// A time of day in minutes since midnight.
type DayTime int32

func (self DayTime) Hour() int {
	return int(self) / 60
}
func (self DayTime) Minute() int {
	return int(self) % 60
}
func (self DayTime) String() string {
	h := strconv.Itoa(self.Hour())
	if len(h) < 2 {
		h = "0" + h
	}
	m := strconv.Itoa(self.Minute())
	if len(m) < 2 {
		m = "0" + m
	}
	return h + ":" + m
}

// Parses a "HHMM" clock value as found in the flat files.
func ParseDayTime(s string) (DayTime, error) {
	if len(s) != 4 {
		return 0, errors.New("invalid clock value: " + s)
	}
	hour, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, err
	}
	minute, err := strconv.Atoi(s[2:])
	if err != nil {
		return 0, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, errors.New("invalid clock value: " + s)
	}
	return DayTime(hour*60 + minute), nil
}

type TimeRange struct {
	Open  DayTime `json:"open"`
	Close DayTime `json:"close"`
}

// Per-weekday opening intervals. Days without an entry are closed.
type OpeningHours [7]Optional[TimeRange]

// Open around the clock, used for places without known opening hours.
func AllDayHours() OpeningHours {
	var hours OpeningHours
	for day := 0; day < 7; day++ {
		hours[day] = Some(TimeRange{Open: 0, Close: 24*60 - 1})
	}
	return hours
}

func (self OpeningHours) OpenAt(day Weekday, at DayTime) bool {
	r := self[day]
	if !r.HasValue() {
		return false
	}
	return at >= r.Value.Open && at <= r.Value.Close
}
