// Package internal holds process setup shared by the commands.
package internal
