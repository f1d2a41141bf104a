package poi

import (
	"encoding/json"
	"errors"
)

//**********************************************************
// entity kinds
//**********************************************************

type Kind byte

const (
	LANDMARK        Kind = 0
	RESTAURANT      Kind = 1
	TRANSIT_STATION Kind = 2
	LODGING         Kind = 3
)

func (self Kind) String() string {
	switch self {
	case LANDMARK:
		return "landmark"
	case RESTAURANT:
		return "restaurant"
	case TRANSIT_STATION:
		return "station"
	case LODGING:
		return "lodging"
	default:
		panic("unknown entity kind")
	}
}
func (self Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *Kind) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	kind, err := KindFromString(typ)
	*self = kind
	return err
}

func KindFromString(s string) (Kind, error) {
	switch s {
	case "landmark":
		return LANDMARK, nil
	case "restaurant":
		return RESTAURANT, nil
	case "station":
		return TRANSIT_STATION, nil
	case "lodging":
		return LODGING, nil
	default:
		return LANDMARK, errors.New("unknown entity kind")
	}
}
