package config

// KMLConfig controls the generated document
type KMLConfig struct {
	DocumentName   string  `yaml:"documentName"`
	AltitudePerSec float64 `yaml:"altitudePerSec" validate:"gte=0"`
	ShowTrips      bool    `yaml:"showTrips"`
	RouteType      *int    `yaml:"routeType" validate:"omitempty,gte=0"`
}

// RealtimeConfig points at an optional GTFS-Realtime snapshot
type RealtimeConfig struct {
	VehiclePositions string `yaml:"vehiclePositions" validate:"omitempty,endswith=.pb"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Feed     string         `yaml:"feed"`
	Output   string         `yaml:"output" validate:"omitempty,endswith=.kml"`
	Snapshot string         `yaml:"snapshot"`
	KML      KMLConfig      `yaml:"kml"`
	Realtime RealtimeConfig `yaml:"realtime"`
}
