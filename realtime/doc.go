// Package realtime decodes GTFS-Realtime VehiclePositions feeds.
//
// Only the vehicle position entities are read; trip updates and alerts in the
// same message are ignored. The decoded vehicles are plotted by the KML writer
// as an extra folder on top of the static schedule.
package realtime
