package main

import (
	"errors"
	"os"
	"time"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		slog.Error("failed to parse config file: " + err.Error())
		panic(err)
	}
	config.fill_defaults()
	return config
}

type Config struct {
	Source   SourceOptions   `yaml:"source"`
	Lodging  LodgingOptions  `yaml:"lodging"`
	Routing  RoutingOptions  `yaml:"routing"`
	Schedule ScheduleOptions `yaml:"schedule"`
	Server   ServerOptions   `yaml:"server"`
}

type SourceOptions struct {
	Format      SourceFormat `yaml:"format"`
	Landmarks   string       `yaml:"landmarks"`
	Restaurants string       `yaml:"restaurants"`
	Stations    string       `yaml:"stations"`
	Lines       string       `yaml:"lines"`
	OSM         string       `yaml:"osm"`
}

type LodgingOptions struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
}

type RoutingOptions struct {
	// proximity-edge threshold in meters
	ThresholdM float64 `yaml:"threshold-m"`
	// how long nearest-station lookups stay cached
	CacheTTLMin int `yaml:"cache-ttl-min"`
}

type ScheduleOptions struct {
	WalkingSpeedKmh float64 `yaml:"walking-speed-kmh"`
	HopTimeMin      int     `yaml:"hop-time-min"`
}

type ServerOptions struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed-origins"`
}

func (self *Config) fill_defaults() {
	if self.Routing.ThresholdM == 0 {
		self.Routing.ThresholdM = 1500
	}
	if self.Routing.CacheTTLMin == 0 {
		self.Routing.CacheTTLMin = 10
	}
	if self.Schedule.WalkingSpeedKmh == 0 {
		self.Schedule.WalkingSpeedKmh = 5.0
	}
	if self.Schedule.HopTimeMin == 0 {
		self.Schedule.HopTimeMin = 3
	}
	if self.Server.Addr == "" {
		self.Server.Addr = ":5002"
	}
}

func (self *Config) CacheTTL() time.Duration {
	return time.Duration(self.Routing.CacheTTLMin) * time.Minute
}

func (self *Config) HopTime() time.Duration {
	return time.Duration(self.Schedule.HopTimeMin) * time.Minute
}

//**********************************************************
// enums
//**********************************************************

type SourceFormat byte

const (
	SOURCE_CSV SourceFormat = 0
	SOURCE_OSM SourceFormat = 1
)

func (self SourceFormat) String() string {
	switch self {
	case SOURCE_CSV:
		return "csv"
	case SOURCE_OSM:
		return "osm"
	default:
		panic("unknown source format")
	}
}
func (self SourceFormat) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *SourceFormat) UnmarshalYAML(value *yaml.Node) error {
	typ, err := SourceFormatFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}

func SourceFormatFromString(s string) (SourceFormat, error) {
	switch s {
	case "csv", "":
		return SOURCE_CSV, nil
	case "osm":
		return SOURCE_OSM, nil
	default:
		return SOURCE_CSV, errors.New("unknown source format")
	}
}
