// Package utils provides formatting helpers shared by the KML writer and the CLI.
//
// It contains:
//   - Timestamp and duration formatting
//   - Distance formatting
package utils
