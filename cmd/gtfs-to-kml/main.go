package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gtfs-to-kml",
	Short: "Render a GTFS feed as KML",
	Long: `gtfs-to-kml converts a GTFS schedule into a KML document with stops, shapes
and route patterns, for viewing in Google Earth or other mapping tools.

Trip lines can be raised by the time since their first stop (--altitude-per-sec)
so that a timetable shows up as stacked lines in 3D viewers.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(convertCmd, inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
