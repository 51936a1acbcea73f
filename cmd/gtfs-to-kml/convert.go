package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/gtfs-to-kml/config"
	"github.com/theoremus-urban-solutions/gtfs-to-kml/internal"
	"github.com/theoremus-urban-solutions/gtfs-to-kml/kmlwriter"
	"github.com/theoremus-urban-solutions/gtfs-to-kml/realtime"
	"github.com/theoremus-urban-solutions/gtfs-to-kml/schedule"
)

var (
	configPath       string
	feedPath         string
	outPath          string
	snapshotPath     string
	vehiclePositions string
	documentName     string
	altitudePerSec   float64
	showTrips        bool
	routeType        int
	verbose          bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [feed]",
	Short: "Convert a GTFS feed to KML",
	Long: `Convert a GTFS zip file or directory to KML.

Values not given on the command line are taken from config.yml when present.
With --snapshot the parsed schedule is cached in a gob file and reused on the
next run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := internal.NewLogger(verbose)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		if err := config.LoadAppConfig(configPath); err != nil {
			return err
		}
		cfg := mergeFlags(cmd, config.Config, args)
		return convert(cfg, logger)
	},
}

func init() {
	f := convertCmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "path to config.yml (default: ./config.yml if present)")
	f.StringVarP(&feedPath, "feed", "f", "", "GTFS zip file or directory")
	f.StringVarP(&outPath, "out", "o", "", "output KML file (default: <feed>.kml, - for stdout)")
	f.StringVar(&snapshotPath, "snapshot", "", "gob snapshot of the parsed schedule to read or create")
	f.StringVar(&vehiclePositions, "vehicles", "", "GTFS-Realtime VehiclePositions protobuf file")
	f.StringVar(&documentName, "name", "", "KML document name")
	f.Float64Var(&altitudePerSec, "altitude-per-sec", 0, "meters of altitude per second since a trip's first stop (0 disables)")
	f.BoolVar(&showTrips, "show-trips", false, "add a Trips folder per route")
	f.IntVar(&routeType, "route-type", 0, "only include routes of this GTFS route_type")
	f.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// mergeFlags overlays explicitly set flags and the positional feed argument on cfg.
func mergeFlags(cmd *cobra.Command, cfg config.AppConfig, args []string) config.AppConfig {
	flags := cmd.Flags()
	if len(args) > 0 {
		cfg.Feed = args[0]
	}
	if flags.Changed("feed") {
		cfg.Feed = feedPath
	}
	if flags.Changed("out") {
		cfg.Output = outPath
	}
	if flags.Changed("snapshot") {
		cfg.Snapshot = snapshotPath
	}
	if flags.Changed("vehicles") {
		cfg.Realtime.VehiclePositions = vehiclePositions
	}
	if flags.Changed("name") {
		cfg.KML.DocumentName = documentName
	}
	if flags.Changed("altitude-per-sec") {
		cfg.KML.AltitudePerSec = altitudePerSec
	}
	if flags.Changed("show-trips") {
		cfg.KML.ShowTrips = showTrips
	}
	if flags.Changed("route-type") {
		rt := routeType
		cfg.KML.RouteType = &rt
	}
	if cfg.Output == "" && cfg.Feed != "" {
		cfg.Output = defaultOutput(cfg.Feed)
	}
	return cfg
}

func convert(cfg config.AppConfig, logger *zap.Logger) error {
	check := cfg
	if check.Output == "-" {
		check.Output = ""
	}
	if err := config.Validate(check); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	s, err := loadSchedule(cfg, logger)
	if err != nil {
		return err
	}

	opts := kmlwriter.Options{
		AltitudePerSec: cfg.KML.AltitudePerSec,
		ShowTrips:      cfg.KML.ShowTrips,
		RouteType:      cfg.KML.RouteType,
		DocumentName:   cfg.KML.DocumentName,
	}
	if cfg.Realtime.VehiclePositions != "" {
		feed, err := realtime.ReadFile(cfg.Realtime.VehiclePositions)
		if err != nil {
			return err
		}
		logger.Info("loaded vehicle positions", zap.Int("vehicles", len(feed.Vehicles)))
		opts.Vehicles = feed.Vehicles
	}

	w := kmlwriter.New(opts, logger)
	if cfg.Output == "-" {
		return w.Write(s, os.Stdout)
	}
	return w.WriteFile(s, cfg.Output)
}

// loadSchedule reads the snapshot when it exists, otherwise parses the feed
// and writes the snapshot for the next run.
func loadSchedule(cfg config.AppConfig, logger *zap.Logger) (*schedule.Schedule, error) {
	if cfg.Snapshot != "" {
		s, err := schedule.ReadSnapshotFile(cfg.Snapshot)
		if err == nil {
			logger.Info("loaded schedule snapshot", zap.String("path", cfg.Snapshot))
			return s, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if cfg.Feed == "" {
		return nil, fmt.Errorf("no feed given: pass a feed path or set feed in config.yml")
	}
	logger.Info("loading feed", zap.String("path", cfg.Feed))
	s, err := schedule.Load(cfg.Feed)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded feed",
		zap.Int("stops", len(s.Stops())),
		zap.Int("routes", len(s.Routes())),
		zap.Int("trips", len(s.AllTrips())),
		zap.Int("shapes", len(s.Shapes())))

	if cfg.Snapshot != "" {
		if err := schedule.WriteSnapshotFile(s, cfg.Snapshot); err != nil {
			logger.Warn("could not write snapshot", zap.String("path", cfg.Snapshot), zap.Error(err))
		}
	}
	return s, nil
}

// defaultOutput places the KML next to the feed: feed.zip -> feed.kml.
func defaultOutput(feed string) string {
	return strings.TrimSuffix(filepath.Clean(feed), ".zip") + ".kml"
}
