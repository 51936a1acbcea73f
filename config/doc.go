// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Every value can be overridden by command line flags; the file only supplies
// defaults for repeated conversions of the same feed.
package config
